package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/biorhythm/models"
	"github.com/biorhythm/server"
	"github.com/cli/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var (
		port      string
		birth     string
		open      bool
		staticDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := models.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("birth") {
				if cfg.BirthDate, err = models.ParseDate(birth); err != nil {
					return fmt.Errorf("--birth: %w", err)
				}
			}
			if cmd.Flags().Changed("open") {
				cfg.OpenBrowser = open
			}

			logger, logFile, err := server.SetupLogging(cfg.LogDir)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			defer logFile.Close()
			defer logger.Sync() //nolint:errcheck

			if cfg.SessionKey == "" {
				logger.Warn("no session key configured; sessions will not survive a restart",
					zap.String("env", models.EnvSessionKey))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h := server.NewHandler(cfg, logger)
			url := fmt.Sprintf("http://localhost:%s", cfg.Port)
			ready := func() {
				logger.Info("visit the chart", zap.String("url", url))
				if cfg.OpenBrowser {
					if err := browser.OpenURL(url); err != nil {
						logger.Warn("open browser", zap.Error(err))
					}
				}
			}
			err = server.Serve(ctx, ":"+cfg.Port, server.Routes(h, staticDir), logger, ready)
			h.LogCacheStats()
			return err
		},
	}

	cmd.Flags().StringVar(&port, "port", "8080", "Port to listen on (env "+models.EnvPort+")")
	cmd.Flags().StringVar(&birth, "birth", models.DefaultBirthDate, "Default birth date YYYY-MM-DD (env "+models.EnvBirthDate+")")
	cmd.Flags().BoolVar(&open, "open", false, "Open the UI in a browser (env "+models.EnvOpenBrowser+")")
	cmd.Flags().StringVar(&staticDir, "static", "static", "Directory served under /static/")
	return cmd
}
