package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/richterm/internal/console"
	"github.com/alexisbeaulieu97/richterm/internal/logger"
	"github.com/alexisbeaulieu97/richterm/internal/theme"
)

type rootFlags struct {
	width   int
	noColor bool
	theme   string
	verbose bool
}

// buildConsole assembles the console every subcommand renders through,
// applying the shared flags and loading the theme file when one is
// given.
func (f *rootFlags) buildConsole(log *logger.Logger) (*console.Console, error) {
	opts := []console.Option{console.WithLogger(log)}
	if f.width > 0 {
		opts = append(opts, console.WithWidth(f.width))
	}
	if f.noColor {
		opts = append(opts, console.WithNoColor(true))
	}
	if f.theme != "" {
		t, err := theme.Load(f.theme)
		if err != nil {
			return nil, err
		}
		opts = append(opts, console.WithAliases(t.MarkupAliases()))
	}
	return console.New(opts...), nil
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "richterm",
		Short:         "Richterm renders styled text and layouts in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().IntVar(&flags.width, "width", 0, "Force output width instead of detecting the terminal")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable ANSI color output")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Path to a YAML theme file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPanelCmd(flags, log))
	cmd.AddCommand(newTableCmd(flags, log))
	cmd.AddCommand(newTreeCmd(flags, log))
	cmd.AddCommand(newColumnsCmd(flags, log))
	cmd.AddCommand(newSyntaxCmd(flags, log))
	cmd.AddCommand(newMarkdownCmd(flags, log))
	cmd.AddCommand(newLiveCmd(flags, log))
	cmd.AddCommand(newStatusCmd(flags, log))
	cmd.AddCommand(newProgressCmd(flags, log))
	cmd.AddCommand(newMarkupCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
