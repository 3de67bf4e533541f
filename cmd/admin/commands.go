package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/app"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/cnpj"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/logging"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/security"
	"github.com/ferdiebergado/legacyprocs/internal/platform/db"
	"github.com/ferdiebergado/legacyprocs/internal/platform/jwt"
	"github.com/spf13/cobra"
)

var errInvalidCNPJ = errors.New("invalid cnpj")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Maintenance tasks for the legacyprocs API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newTokenCmd(),
		newKeyCmd(),
		newCNPJCmd(),
	)
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, cmd.ErrOrStderr())

			conn, err := db.Connect(cmd.Context(), cfg.DB)
			if err != nil {
				return fmt.Errorf("connect db: %w", err)
			}
			defer conn.Close()

			if err := db.Migrate(cmd.Context(), conn, cfg.DB.Driver); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			slog.Info("Schema is up to date.", "driver", cfg.DB.Driver)
			return nil
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		subject  string
		audience []string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the /api routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			signer, err := jwt.NewGolangJWTSigner(cfg.JWT, cfg.App.Key)
			if err != nil {
				return fmt.Errorf("new signer: %w", err)
			}

			if ttl == 0 {
				ttl = cfg.JWT.TTL.Duration
			}

			token, err := signer.Sign(subject, audience, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "frontend", "token subject")
	cmd.Flags().StringSliceVar(&audience, "audience", nil, "token audience")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default from config)")
	return cmd
}

func newKeyCmd() *cobra.Command {
	var length uint32

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Generate a random APP_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := security.GenerateRandomBytesStdEncoded(length)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&length, "length", 32, "key length in bytes")
	return cmd
}

func newCNPJCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cnpj",
		Short: "Check or format CNPJ numbers",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "validate CNPJ...",
			Short: "Report whether each CNPJ has valid check digits",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var invalid int
				for _, arg := range args {
					status := "valid"
					if !cnpj.Valid(arg) {
						status = "invalid"
						invalid++
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, status)
				}
				if invalid > 0 {
					return fmt.Errorf("%w: %d of %d", errInvalidCNPJ, invalid, len(args))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "format CNPJ",
			Short: "Print a CNPJ as NN.NNN.NNN/NNNN-NN",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !cnpj.Valid(args[0]) {
					return fmt.Errorf("%w: %s", errInvalidCNPJ, args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), cnpj.Format(args[0]))
				return nil
			},
		},
	)
	return cmd
}
