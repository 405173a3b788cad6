package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	mem "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/memcache"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type UserServiceInterface interface {
	List(ctx context.Context, filter request_models.ListFilter) (*resp.Paged[resp.AccountResponse], error)
	Picker(ctx context.Context, query string) ([]resp.PickerItem, error)
	Get(ctx context.Context, id string) (*resp.AccountResponse, error)
	Create(ctx context.Context, request request_models.CreateUserRequest) (*resp.AccountResponse, error)
	Delete(ctx context.Context, actorID, id string) error
}

type UserService struct {
	userRepo   repositories.UserRepository
	revoker    mem.TokenRevoker
	sessionTTL time.Duration
	log        *zap.Logger
}

func NewUserService(userRepo repositories.UserRepository, revoker mem.TokenRevoker, cfg *config.Config, log *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepo:   userRepo,
		revoker:    revoker,
		sessionTTL: cfg.Auth.TokenTTL,
		log:        log.Named("users"),
	}
}

func (s *UserService) List(ctx context.Context, filter request_models.ListFilter) (*resp.Paged[resp.AccountResponse], error) {
	users, total, err := s.userRepo.List(ctx, repositories.ListQuery{
		Page:   filter.Page,
		Limit:  filter.Limit,
		Search: filter.Query,
	})
	if err != nil {
		return nil, dbError(s.log, "list users", err)
	}
	items := make([]resp.AccountResponse, len(users))
	for i := range users {
		items[i] = resp.NewAccountResponse(&users[i])
	}
	return resp.NewPaged(items, filter.Page, filter.Limit, total), nil
}

func (s *UserService) Picker(ctx context.Context, query string) ([]resp.PickerItem, error) {
	users, _, err := s.userRepo.List(ctx, repositories.ListQuery{Page: 1, Limit: pickerLimit, Search: query})
	if err != nil {
		return nil, dbError(s.log, "user picker", err)
	}
	items := make([]resp.PickerItem, len(users))
	for i, u := range users {
		items[i] = resp.PickerItem{ID: u.ID.String(), Label: u.Name, Detail: u.Email}
	}
	return items, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*resp.AccountResponse, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := resp.NewAccountResponse(user)
	return &out, nil
}

func (s *UserService) Create(ctx context.Context, request request_models.CreateUserRequest) (*resp.AccountResponse, error) {
	user, err := createUser(ctx, s.userRepo, s.log, request.Name, request.Email, request.Password, request.Role, request.Phone)
	if err != nil {
		return nil, err
	}
	out := resp.NewAccountResponse(user)
	return &out, nil
}

func (s *UserService) Delete(ctx context.Context, actorID, id string) error {
	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if user.ID.String() == actorID {
		return utils.ErrCannotDeleteSelf
	}
	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return dbError(s.log, "delete user", err)
	}
	// Tokens already issued to the account stay valid until they expire unless
	// the user is revoked as a whole.
	if err := s.revoker.Revoke(ctx, mem.UserKey(user.ID.String()), s.sessionTTL); err != nil {
		s.log.Error("failed to revoke sessions of deleted user", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
	s.log.Info("user deleted", zap.String("user_id", user.ID.String()), zap.String("by", actorID))
	return nil
}

func (s *UserService) find(ctx context.Context, id string) (*db_models.User, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, dbError(s.log, "find user", err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}
