package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cutlery/internal/auth"
	"cutlery/internal/config"
	apperrors "cutlery/internal/errors"
	"cutlery/internal/logger"
	"cutlery/internal/partner"
	"cutlery/internal/service"
	"cutlery/internal/storage"
)

func main() {
	cfg := config.Load()
	l, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = l.Sync() }()

	if err := newRootCmd(cfg, l).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, l *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "seed",
		Short:        "Load reference data and accounts into the configured storage",
		SilenceUsage: true,
	}
	root.AddCommand(newCatalogCmd(cfg, l), newAdminCmd(cfg, l))
	return root
}

func newCatalogCmd(cfg *config.Config, l *zap.Logger) *cobra.Command {
	var (
		file             string
		withRequirements bool
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import metals, handles and cutlery types from a requirement document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := storage.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			res, err := seedCatalog(ctx, afero.NewOsFs(), file, store, withRequirements)
			if err != nil {
				return err
			}
			l.Info("catalog seeded",
				zap.String("file", file),
				zap.Int("metals", res.metals),
				zap.Int("handles", res.handles),
				zap.Int("cutlery_types", res.cutleryTypes),
				zap.Int("requirements", res.requirements),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "requirement.json", "requirement document to import")
	cmd.Flags().BoolVar(&withRequirements, "requirements", false, "also append the document's requirements")
	return cmd
}

func newAdminCmd(cfg *config.Config, l *zap.Logger) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Register the privileged user if it does not exist yet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := storage.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var partnerClient partner.Client
			if cfg.PartnerEnabled() {
				partnerClient = partner.NewClient(cfg.PartnerBaseURL, cfg.PartnerTimeout)
			}
			authService := service.NewAuthService(store.Users, auth.NewJWTService(cfg.JWTSecret), partnerClient, cfg.AdminUsername)

			created, err := seedAdmin(ctx, store, authService, cfg.AdminUsername, password)
			if err != nil {
				return err
			}
			if !created {
				l.Info("admin already present", zap.String("username", cfg.AdminUsername))
				return nil
			}
			l.Info("admin registered", zap.String("username", cfg.AdminUsername))
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for the privileged user")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// seedAdmin registers username unless a user with that name is already stored.
func seedAdmin(ctx context.Context, store *storage.Storage, authService service.AuthService, username, password string) (bool, error) {
	_, err := store.Users.FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return false, fmt.Errorf("look up %s: %w", username, err)
	}
	if _, err := authService.Register(ctx, username, password); err != nil {
		return false, err
	}
	return true, nil
}
