package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/campusdir/campusdir/engine/infra/server"
	"github.com/campusdir/campusdir/pkg/config"
	"github.com/campusdir/campusdir/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

// ServeCmd runs the HTTP server until interrupted.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the directory API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}
	cmd.Flags().String("env-file", defaultEnvFile, "Path to an env file with configuration overrides")
	cmd.Flags().String("host", "", "Listening host (overrides configuration)")
	cmd.Flags().Int("port", 0, "Listening port (overrides configuration)")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")
	return cmd
}

func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if err := loadEnvFile(cmd); err != nil {
		return err
	}
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	level := cfg.Runtime.LogLevel
	if flagLevel, _ := cmd.Flags().GetString("log-level"); flagLevel != "" {
		level = flagLevel
	}
	log := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(level),
		Output: os.Stdout,
		JSON:   cfg.Runtime.Environment == "production",
	})
	ctx = logger.ContextWithLogger(config.ContextWithConfig(ctx, cfg), log)

	srv, err := server.NewServer(ctx)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Run(ctx)
}

// loadEnvFile applies the env file when it exists; a missing default file is
// not an error, an explicitly requested one is.
func loadEnvFile(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("env-file")
	if path == "" {
		return nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve env file path: %w", err)
	}
	if _, statErr := os.Stat(absPath); os.IsNotExist(statErr) {
		if cmd.Flags().Changed("env-file") {
			return fmt.Errorf("env file not found: %s", absPath)
		}
		return nil
	}
	if err := godotenv.Load(absPath); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", absPath, err)
	}
	return nil
}
