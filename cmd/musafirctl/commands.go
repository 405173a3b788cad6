package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/infra"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/logger"
	mem "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/memcache"
)

// env bundles what every command needs; close releases the pool.
type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.App.Env, "musafirctl")
	if err != nil {
		return nil, err
	}
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, db: db}, nil
}

func (e *env) close() {
	infra.ClosePostgresql(e.db, e.log)
	_ = e.log.Sync()
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if err := infra.AutoMigrate(cmd.Context(), e.db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			e.log.Info("schema is up to date")
			return nil
		},
	}
}

func newCreateAdminCmd() *cobra.Command {
	var req request_models.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account, also when registration is disabled",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Role = db_models.RoleAdmin
			if err := validateRequest(req); err != nil {
				return err
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()

			return createAdmin(cmd.Context(), services.NewUserService(repositories.NewUserRepository(e.db), mem.NewRevokedTokens(), e.cfg, e.log), req, cmd)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password (6..72 chars)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func createAdmin(ctx context.Context, users services.UserServiceInterface, req request_models.CreateUserRequest, cmd *cobra.Command) error {
	account, err := users.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	cmd.Printf("created admin %s (%s)\n", account.Email, account.ID)
	return nil
}

// validateRequest applies the same binding rules gin uses for the HTTP endpoint.
func validateRequest(req request_models.CreateUserRequest) error {
	v := validator.New()
	v.SetTagName("binding")
	err := v.Struct(req)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return fmt.Errorf("invalid %s: failed %q rule", ve[0].Field(), ve[0].Tag())
	}
	return err
}
