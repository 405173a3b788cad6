package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
)

type fakeUsers struct {
	services.UserServiceInterface
	mock.Mock
}

func (f *fakeUsers) Create(ctx context.Context, req request_models.CreateUserRequest) (*resp.AccountResponse, error) {
	args := f.Called(ctx, req)
	out, _ := args.Get(0).(*resp.AccountResponse)
	return out, args.Error(1)
}

func TestValidateRequest(t *testing.T) {
	ok := request_models.CreateUserRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1", Role: "admin"}
	assert.NoError(t, validateRequest(ok))

	bad := ok
	bad.Email = "not-an-email"
	err := validateRequest(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email")

	short := ok
	short.Password = "123"
	assert.Error(t, validateRequest(short))
}

func TestCreateAdminPrintsAccount(t *testing.T) {
	req := request_models.CreateUserRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1", Role: "admin"}
	users := new(fakeUsers)
	users.On("Create", mock.Anything, req).Return(&resp.AccountResponse{ID: "u-1", Email: req.Email}, nil)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, createAdmin(context.Background(), users, req, cmd))
	assert.Equal(t, "created admin asha@example.com (u-1)\n", out.String())
	users.AssertExpectations(t)
}

func TestCommandsAreRegistered(t *testing.T) {
	assert.Equal(t, "migrate", newMigrateCmd().Name())
	create := newCreateAdminCmd()
	assert.NotNil(t, create.Flags().Lookup("email"))
	assert.NotNil(t, create.Flags().Lookup("password"))
}
