package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/richterm/internal/live"
	"github.com/alexisbeaulieu97/richterm/internal/logger"
	"github.com/alexisbeaulieu97/richterm/internal/render"
)

func newLiveCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var steps int
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Demonstrate an in-place updating region",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.buildConsole(log)
			if err != nil {
				return err
			}

			panel := func(step int) *render.Panel {
				body := fmt.Sprintf("Processing step [bold cyan]%d[/bold cyan] of %d", step, steps)
				return render.NewPanel(body).WithTitle("Progress")
			}

			region := live.New(c, panel(0), live.WithLogger(log))
			region.Start()
			for step := 1; step <= steps; step++ {
				time.Sleep(interval)
				region.Update(panel(step))
			}
			region.Stop()
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 10, "Number of updates to show")
	cmd.Flags().DurationVar(&interval, "interval", 300*time.Millisecond, "Delay between updates")
	return cmd
}

func newStatusCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var spinnerName string
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "status [message]",
		Short: "Demonstrate a spinner status line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.buildConsole(log)
			if err != nil {
				return err
			}

			message := "Working..."
			if len(args) == 1 {
				message = args[0]
			}

			status := live.NewStatus(c, message, live.WithSpinner(spinnerName))
			status.Start()
			time.Sleep(duration)
			status.Update("Finishing up...")
			time.Sleep(duration / 2)
			status.Stop()
			c.Print("[success]Done.[/success]")
			return nil
		},
	}

	cmd.Flags().StringVar(&spinnerName, "spinner", "dots", "Spinner set (dots, line, arrow, pulse, star, moon)")
	cmd.Flags().DurationVar(&duration, "duration", 2*time.Second, "How long to run")
	return cmd
}

func newProgressCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var total int
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Demonstrate an in-place progress bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.buildConsole(log)
			if err != nil {
				return err
			}

			bar := live.NewProgressBar(c, total, live.WithDescription("Downloading"))
			for i := 0; i < total; i++ {
				time.Sleep(interval)
				bar.Add(1)
			}
			bar.Close()
			return nil
		},
	}

	cmd.Flags().IntVar(&total, "total", 50, "Number of units of work")
	cmd.Flags().DurationVar(&interval, "interval", 50*time.Millisecond, "Delay between units")
	return cmd
}
