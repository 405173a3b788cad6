package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/mocks"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	mem "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/memcache"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Name: "Musafir", Timezone: "UTC", Currency: "INR"},
		Auth: config.AuthConfig{RegistrationEnabled: true},
	}
}

func newAccountService(repo *mocks.UserRepo, cfg *config.Config) (*AccountService, *mem.RevokedTokens) {
	revoked := mem.NewRevokedTokens()
	svc := NewAccountService(repo, utils.NewJWTManager("test-secret-0123456789", time.Hour), revoked, cfg, zap.NewNop())
	return svc.(*AccountService), revoked
}

func newUserService(repo *mocks.UserRepo, revoker mem.TokenRevoker) UserServiceInterface {
	cfg := testConfig()
	cfg.Auth.TokenTTL = time.Hour
	return NewUserService(repo, revoker, cfg, zap.NewNop())
}

func adminUser(t *testing.T, password string) *db_models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := &db_models.User{Name: "Asha", Email: "asha@musafir.in", PasswordHash: hash, Role: db_models.RoleAdmin}
	u.ID = uuid.New()
	return u
}

func TestAccountService_RegisterClosed(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.RegistrationEnabled = false
	repo := new(mocks.UserRepo)
	svc, _ := newAccountService(repo, cfg)

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret1"})
	assert.ErrorIs(t, err, utils.ErrRegistrationClosed)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAccountService_Register(t *testing.T) {
	t.Run("creates an admin with a normalized email", func(t *testing.T) {
		repo := new(mocks.UserRepo)
		svc, _ := newAccountService(repo, testConfig())

		repo.On("FindByEmail", mock.Anything, "asha@musafir.in").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *db_models.User) bool {
			return u.Role == db_models.RoleAdmin && u.Email == "asha@musafir.in" &&
				utils.ComparePasswords(u.PasswordHash, "secret1") == nil
		})).Return(nil)

		out, err := svc.Register(context.Background(), request_models.RegisterRequest{
			Name: " Asha ", Email: " Asha@Musafir.in ", Password: "secret1",
		})
		require.NoError(t, err)
		assert.Equal(t, "Asha", out.Name)
		assert.Equal(t, db_models.RoleAdmin, out.Role)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mocks.UserRepo)
		svc, _ := newAccountService(repo, testConfig())
		repo.On("FindByEmail", mock.Anything, "asha@musafir.in").Return(&db_models.User{}, nil)

		_, err := svc.Register(context.Background(), request_models.RegisterRequest{Name: "Asha", Email: "asha@musafir.in", Password: "secret1"})
		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("database failure is hidden", func(t *testing.T) {
		repo := new(mocks.UserRepo)
		svc, _ := newAccountService(repo, testConfig())
		repo.On("FindByEmail", mock.Anything, "asha@musafir.in").Return(nil, errors.New("connection reset"))

		_, err := svc.Register(context.Background(), request_models.RegisterRequest{Name: "Asha", Email: "asha@musafir.in", Password: "secret1"})
		assert.ErrorIs(t, err, utils.ErrDatabaseError)
		assert.NotContains(t, err.Error(), "connection reset")
	})
}

func TestAccountService_Login(t *testing.T) {
	user := adminUser(t, "secret1")

	t.Run("issues a token for an admin", func(t *testing.T) {
		repo := new(mocks.UserRepo)
		svc, _ := newAccountService(repo, testConfig())
		repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		out, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "ASHA@musafir.in", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, user.ID.String(), out.User.ID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), out.ExpiresAt, 5*time.Second)

		claims, err := svc.jwt.ValidateToken(out.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, db_models.RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mocks.UserRepo)
		svc, _ := newAccountService(repo, testConfig())
		repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: user.Email, Password: "nope123"})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mocks.UserRepo)
		svc, _ := newAccountService(repo, testConfig())
		repo.On("FindByEmail", mock.Anything, "ghost@musafir.in").Return(nil, nil)

		_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "ghost@musafir.in", Password: "secret1"})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("customers cannot sign in", func(t *testing.T) {
		customer := adminUser(t, "secret1")
		customer.Role = db_models.RoleUser
		repo := new(mocks.UserRepo)
		svc, _ := newAccountService(repo, testConfig())
		repo.On("FindByEmail", mock.Anything, customer.Email).Return(customer, nil)

		_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: customer.Email, Password: "secret1"})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})
}

func TestAccountService_Logout(t *testing.T) {
	svc, revoked := newAccountService(new(mocks.UserRepo), testConfig())

	require.NoError(t, svc.Logout(context.Background(), "jti-1", time.Minute))
	ok, err := revoked.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.ErrorIs(t, svc.Logout(context.Background(), "", time.Minute), utils.ErrUnauthorized)
}

func TestAccountService_Me(t *testing.T) {
	user := adminUser(t, "secret1")
	repo := new(mocks.UserRepo)
	svc, _ := newAccountService(repo, testConfig())
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	out, err := svc.Me(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, user.Email, out.Email)

	_, err = svc.Me(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
}

func TestUserService_Delete(t *testing.T) {
	user := adminUser(t, "secret1")

	t.Run("cannot delete self", func(t *testing.T) {
		repo := new(mocks.UserRepo)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		svc := newUserService(repo, mem.NewRevokedTokens())

		err := svc.Delete(context.Background(), user.ID.String(), user.ID.String())
		assert.ErrorIs(t, err, utils.ErrCannotDeleteSelf)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes another account and revokes its sessions", func(t *testing.T) {
		repo := new(mocks.UserRepo)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("Delete", mock.Anything, user.ID).Return(nil)
		revoked := mem.NewRevokedTokens()
		svc := newUserService(repo, revoked)

		require.NoError(t, svc.Delete(context.Background(), uuid.NewString(), user.ID.String()))
		repo.AssertExpectations(t)

		gone, err := revoked.IsRevoked(context.Background(), mem.UserKey(user.ID.String()))
		require.NoError(t, err)
		assert.True(t, gone)
	})

	t.Run("unknown user", func(t *testing.T) {
		id := uuid.New()
		repo := new(mocks.UserRepo)
		repo.On("FindByID", mock.Anything, id).Return(nil, nil)
		svc := newUserService(repo, mem.NewRevokedTokens())

		assert.ErrorIs(t, svc.Delete(context.Background(), uuid.NewString(), id.String()), utils.ErrUserNotFound)
	})
}

func TestUserService_ListMapsAccounts(t *testing.T) {
	user := adminUser(t, "secret1")
	repo := new(mocks.UserRepo)
	repo.On("List", mock.Anything, mock.Anything).
		Return([]db_models.User{*user}, int64(11), nil)
	svc := newUserService(repo, mem.NewRevokedTokens())

	out, err := svc.List(context.Background(), request_models.ListFilter{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, user.Email, out.Items[0].Email)
	assert.Equal(t, 2, out.Pagination.TotalPages)
	assert.Equal(t, int64(11), out.Pagination.Total)
}
