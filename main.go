package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const appVersion = "0.3.0"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "biorhythm",
		Short:         "Biorhythm chart (web, terminal or one-shot CLI)",
		Long:          "biorhythm calculates physical, emotional and intellectual cycles for a 30-day window around a date.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = appVersion
	cmd.SetVersionTemplate("biorhythm v{{.Version}}\n")

	cmd.AddCommand(
		newServeCmd(),
		newTUICmd(),
		newShowCmd(),
	)
	return cmd
}

// loadEnv reads .env when present. A missing file is fine.
func loadEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
