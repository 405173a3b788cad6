package services

import (
	"context"
	"strings"
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

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*resp.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*resp.LoginResponse, error)
	Logout(ctx context.Context, tokenID string, remaining time.Duration) error
	Me(ctx context.Context, userID string) (*resp.AccountResponse, error)
}

type AccountService struct {
	userRepo            repositories.UserRepository
	jwt                 *utils.JWTManager
	revoker             mem.TokenRevoker
	registrationEnabled bool
	log                 *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	jwt *utils.JWTManager,
	revoker mem.TokenRevoker,
	cfg *config.Config,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:            userRepo,
		jwt:                 jwt,
		revoker:             revoker,
		registrationEnabled: cfg.Auth.RegistrationEnabled,
		log:                 log.Named("account"),
	}
}

// Register creates an admin account for the portal.
func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*resp.AccountResponse, error) {
	if !a.registrationEnabled {
		return nil, utils.ErrRegistrationClosed
	}
	user, err := createUser(ctx, a.userRepo, a.log, request.Name, request.Email, request.Password, db_models.RoleAdmin, "")
	if err != nil {
		return nil, err
	}
	a.log.Info("admin registered", zap.String("user_id", user.ID.String()))
	out := resp.NewAccountResponse(user)
	return &out, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*resp.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, dbError(a.log, "find user by email", err)
	}
	// Unknown email and wrong password look the same to the client.
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	if user.Role != db_models.RoleAdmin {
		return nil, utils.ErrForbidden
	}

	token, expiresAt, err := a.jwt.CreateToken(user.ID, user.Role)
	if err != nil {
		a.log.Error("token signing failed", zap.Error(err))
		return nil, err
	}

	return &resp.LoginResponse{
		User:      resp.NewAccountResponse(user),
		ExpiresAt: expiresAt,
		Token:     token,
	}, nil
}

func (a *AccountService) Logout(ctx context.Context, tokenID string, remaining time.Duration) error {
	if tokenID == "" {
		return utils.ErrUnauthorized
	}
	if err := a.revoker.Revoke(ctx, tokenID, remaining); err != nil {
		a.log.Error("token revocation failed", zap.Error(err))
		return err
	}
	return nil
}

func (a *AccountService) Me(ctx context.Context, userID string) (*resp.AccountResponse, error) {
	id, err := parseID(userID)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, dbError(a.log, "find user", err)
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	out := resp.NewAccountResponse(user)
	return &out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// createUser is shared by registration and the users admin screen.
func createUser(ctx context.Context, repo repositories.UserRepository, log *zap.Logger, name, email, password, role, phone string) (*db_models.User, error) {
	email = normalizeEmail(email)
	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, dbError(log, "find user by email", err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Error("password hashing failed", zap.Error(err))
		return nil, err
	}

	user := &db_models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		Phone:        strings.TrimSpace(phone),
	}
	if err := repo.Create(ctx, user); err != nil {
		// a soft deleted account still holds the unique email
		if utils.IsUniqueViolation(err) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, dbError(log, "create user", err)
	}
	return user, nil
}
