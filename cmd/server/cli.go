package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/hunterprice/internal/config"
	"github.com/phrazzld/hunterprice/internal/platform/logger"
	"github.com/phrazzld/hunterprice/internal/platform/sqlstore"
	"github.com/phrazzld/hunterprice/internal/service"
	"github.com/phrazzld/hunterprice/internal/service/auth"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configFile string
}

// newRootCmd builds the command tree. The root command runs the server.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "hunterprice",
		Short:         "Shopping list API server",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, false)
		},
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"path to a config file (default: ./config.yaml or $HOME/.hunterprice/config.yaml)")

	root.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newUserCmd(opts),
		newTokenCmd(opts),
	)
	return root
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version]",
		Short:     "Manage the database schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{sqlstore.MigrateUp, sqlstore.MigrateDown, sqlstore.MigrateStatus, sqlstore.MigrateVersion},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log, err := loadRuntime(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			db, err := setupAppDatabase(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			migrator, err := sqlstore.NewMigrator(db, log)
			if err != nil {
				return err
			}
			return migrator.Run(ctx, args[0])
		},
	}
}

func newUserCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var name, email, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log, err := loadRuntime(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			db, err := setupAppDatabase(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			users := service.NewUserService(sqlstore.NewUserStore(db, log), nil, log)
			user, err := users.CreateUser(ctx, name, email, password)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created user %d <%s>\n", user.ID, user.Email)
			return err
		},
	}
	create.Flags().StringVar(&name, "name", "", "display name")
	create.Flags().StringVar(&email, "email", "", "email address (required)")
	create.Flags().StringVar(&password, "password", "", "password, 12 to 72 characters (required)")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API tokens",
	}

	var subject string
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a token signed with the configured secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadRuntime(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			tokens, err := auth.NewTokenService(cfg.Auth)
			if err != nil {
				return fmt.Errorf("failed to initialize token service: %w", err)
			}
			token, err := tokens.GenerateToken(cmd.Context(), subject)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	issue.Flags().StringVar(&subject, "subject", "", "token subject (required)")
	_ = issue.MarkFlagRequired("subject")

	cmd.AddCommand(issue)
	return cmd
}

// loadRuntime loads the configuration and sets up logging to logOut.
func loadRuntime(opts *rootOptions, logOut io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := loadAppConfig(opts.configFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.SetupWithWriter(cfg.Server, logOut)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return cfg, log, nil
}

// runServe starts the API server and blocks until it shuts down.
func runServe(ctx context.Context, opts *rootOptions, migrate bool) error {
	cfg, err := loadAppConfig(opts.configFile)
	if err != nil {
		return err
	}
	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	if migrate {
		migrator, err := sqlstore.NewMigrator(db, log)
		if err != nil {
			_ = db.Close()
			return err
		}
		if err := migrator.Up(ctx); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
