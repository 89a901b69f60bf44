package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/biorhythm/export"
	"github.com/biorhythm/models"
	"github.com/spf13/cobra"
)

type showOptions struct {
	birth  string
	date   string
	format string
	png    string
}

func newShowCmd() *cobra.Command {
	var o showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the 30-day window around a date",
		Example: `  biorhythm show --birth 1961-09-26 --date 2024-01-15
  biorhythm show --birth 1961-09-26 --format json
  biorhythm show --png chart.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := models.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("birth") {
				if cfg.BirthDate, err = models.ParseDate(o.birth); err != nil {
					return fmt.Errorf("--birth: %w", err)
				}
			}
			return runShow(cmd.OutOrStdout(), cfg.BirthDate, o, time.Now())
		},
	}

	cmd.Flags().StringVar(&o.birth, "birth", models.DefaultBirthDate, "Birth date YYYY-MM-DD (env "+models.EnvBirthDate+")")
	cmd.Flags().StringVar(&o.date, "date", "", "Center and selected date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&o.format, "format", "table", "Output format: table or json")
	cmd.Flags().StringVar(&o.png, "png", "", "Also write the chart as a PNG to this path")
	return cmd
}

func runShow(out io.Writer, birth time.Time, o showOptions, now time.Time) error {
	if birth.IsZero() {
		return models.ErrBirthDateRequired
	}
	state := models.NewViewState(birth, now, models.Calculate)
	if o.date != "" {
		d, err := models.ParseDate(o.date)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}
		if state, err = models.Apply(state, models.SelectPoint{Date: d}, now); err != nil {
			return err
		}
	}

	switch o.format {
	case "json":
		if err := export.WriteJSON(out, state.Dataset); err != nil {
			return err
		}
	case "table":
		fmt.Fprintf(out, "Born %s, window %s to %s\n\n",
			models.FormatDate(state.BirthDate),
			models.FormatDate(state.Dataset[0].Date),
			models.FormatDate(state.Dataset[len(state.Dataset)-1].Date))
		if err := export.WriteTable(out, state.Dataset, state.SelectedDate); err != nil {
			return err
		}
		fmt.Fprintln(out)
		row, ok := state.Row()
		if err := export.WriteRow(out, row, ok); err != nil {
			return err
		}
	default:
		return fmt.Errorf("--format: unknown format %q (want table or json)", o.format)
	}

	if o.png == "" {
		return nil
	}
	f, err := os.Create(o.png)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	if err := export.WritePNG(f, state.Dataset.ChartData(state.BirthDate, state.SelectedDate)); err != nil {
		return err
	}
	return f.Close()
}
