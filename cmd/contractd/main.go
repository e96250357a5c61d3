// Command contractd runs the contract lifecycle service and its maintenance
// tasks.
//
// Usage:
//
//	contractd serve
//	contractd migrate up|down|status
//	contractd sweep
//	contractd expiring --days=30
//	contractd bootstrap-admin --email=root@example.com --password=...
//	contractd token --email=root@example.com
//
// Configuration is read from --config, CONFIG_PATH or ./config.yaml, with
// environment variables taking priority.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/contracts-backend/internal/app"
	"github.com/heartmarshall/contracts-backend/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "contractd",
	Short:         "Contract lifecycle service",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config")
	registerCommands()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func registerCommands() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(expiringCmd())
	rootCmd.AddCommand(bootstrapAdminCmd())
	rootCmd.AddCommand(tokenCmd())
}

// loadConfig reads configuration and builds the logger. Logs go to stderr so
// table output on stdout stays clean.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

// withContainer runs fn against a fully wired container and closes it after.
func withContainer(ctx context.Context, fn func(ctx context.Context, c *app.Container) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(ctx, c)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the daily sweep scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), cfg, logger)
		},
	}
}
