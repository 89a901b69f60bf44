package main

import (
	"fmt"
	"time"

	"github.com/biorhythm/models"
	"github.com/biorhythm/tui"
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	var birth string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := models.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("birth") {
				if cfg.BirthDate, err = models.ParseDate(birth); err != nil {
					return fmt.Errorf("--birth: %w", err)
				}
			}
			return tui.Run(tui.New(cfg.BirthDate, time.Now))
		},
	}

	cmd.Flags().StringVar(&birth, "birth", models.DefaultBirthDate, "Birth date YYYY-MM-DD (env "+models.EnvBirthDate+")")
	return cmd
}
