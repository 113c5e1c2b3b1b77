package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	domainUser "logistics-backoffice/internal/domain/user"
	"logistics-backoffice/internal/infrastructure/database/postgres"
	"logistics-backoffice/internal/logger"
	userUC "logistics-backoffice/internal/usecase/user"
	appErrors "logistics-backoffice/pkg/errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type createUserFlags struct {
	username string
	email    string
	fullName string
	role     string
}

func newCreateUserCommand() *cobra.Command {
	var flags createUserFlags

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user, an admin by default",
		Long:  "Create a user directly in the database. The password is read from BACKOFFICE_PASSWORD.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password := os.Getenv("BACKOFFICE_PASSWORD")
			if password == "" {
				return errors.New("BACKOFFICE_PASSWORD is not set")
			}
			return withDatabase(func(db *postgres.DB) error {
				return createUser(cmd.Context(), userUC.NewService(postgres.NewUserRepository(db), nil), flags, password)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.username, "username", "admin", "Login name")
	f.StringVar(&flags.email, "email", "", "Email address")
	f.StringVar(&flags.fullName, "full-name", "", "Display name")
	f.StringVar(&flags.role, "role", string(domainUser.RoleAdmin), "One of admin, logist, manager, financier, user")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func createUser(ctx context.Context, service *userUC.Service, flags createUserFlags, password string) error {
	role := domainUser.Role(flags.role)
	req := &userUC.CreateUserRequest{
		Username: flags.username,
		Password: password,
		Email:    flags.email,
		Role:     &role,
	}
	if flags.fullName != "" {
		req.FullName = &flags.fullName
	}

	resp, err := service.Create(ctx, req)
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
			return fmt.Errorf("%s: %s %s", appErr.Message, appErr.Fields[0].Field, appErr.Fields[0].Message)
		}
		return err
	}

	logger.Info("User created",
		zap.Int64("user_id", resp.ID),
		zap.String("username", resp.Username),
		zap.String("role", string(resp.Role)),
	)
	return nil
}
