package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/richterm/internal/logger"
	"github.com/alexisbeaulieu97/richterm/internal/render"
	"github.com/alexisbeaulieu97/richterm/internal/style"
)

func newPanelCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var title string
	var boxName string

	cmd := &cobra.Command{
		Use:   "panel [text]",
		Short: "Render text inside a bordered panel",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.buildConsole(log)
			if err != nil {
				return err
			}
			body := "Hello from [bold cyan]richterm[/bold cyan]!"
			if len(args) == 1 {
				body = args[0]
			}
			panel := render.NewPanel(body).
				WithTitle(title).
				WithBox(boxStyleFor(boxName))
			c.Print(panel)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Panel title")
	cmd.Flags().StringVar(&boxName, "box", "round", "Border style (square, round, double, ascii)")
	return cmd
}

func newTableCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var expand bool
	var lines bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render a sample table",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.buildConsole(log)
			if err != nil {
				return err
			}
			table := render.NewTable("Name", "Role", "Status").
				WithTitle("Crew Manifest").
				WithExpand(expand).
				WithShowLines(lines)
			table.AddRow("Ripley", "Warrant Officer", "[success]active[/success]")
			table.AddRow("Ash", "Science Officer", "[danger]offline[/danger]")
			table.AddRow("Jones", "Cat", "[warning]napping[/warning]")
			c.Print(table)
			return nil
		},
	}

	cmd.Flags().BoolVar(&expand, "expand", false, "Stretch the table to the full width")
	cmd.Flags().BoolVar(&lines, "lines", false, "Draw separators between rows")
	return cmd
}

func newTreeCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Render a sample tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.buildConsole(log)
			if err != nil {
				return err
			}
			root := render.NewTree("[bold]project[/bold]")
			src := root.Add("src")
			src.Add("main.go")
			src.Add("console.go")
			docs := root.Add("docs")
			docs.Add("README.md")
			root.Add("go.mod")
			c.Print(root)
			return nil
		},
	}
}

func newColumnsCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "columns [items...]",
		Short: "Render items in balanced columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.buildConsole(log)
			if err != nil {
				return err
			}
			items := args
			if len(items) == 0 {
				items = strings.Fields("alpha beta gamma delta epsilon zeta eta theta iota kappa")
			}
			values := make([]any, len(items))
			for i, item := range items {
				values[i] = item
			}
			c.Print(render.NewColumns(values...))
			return nil
		},
	}
}

func newMarkupCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "markup <text>",
		Short: "Apply [tag] markup to text and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.buildConsole(log)
			if err != nil {
				return err
			}
			c.Print(args[0])
			return nil
		},
	}
}

const sampleCode = `def greet(name):
    # Friendly and loud
    message = "Hello, " + name + "!"
    return message.upper()`

const sampleMarkdown = `# richterm

A terminal rendering toolkit.

## Features

- Styled [bold]markup[/bold] text
- Panels, tables, and trees

> Output adapts to the terminal width.

` + "```python\n" + sampleCode + "\n```"

func newSyntaxCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var lineNumbers bool

	cmd := &cobra.Command{
		Use:   "syntax [code]",
		Short: "Render highlighted source code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.buildConsole(log)
			if err != nil {
				return err
			}
			code := sampleCode
			if len(args) == 1 {
				code = args[0]
			}
			c.Print(render.NewSyntax(code).WithLineNumbers(lineNumbers))
			return nil
		},
	}

	cmd.Flags().BoolVar(&lineNumbers, "line-numbers", true, "Show a numbered gutter")
	return cmd
}

func newMarkdownCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "markdown [text]",
		Short: "Render markdown for the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.buildConsole(log)
			if err != nil {
				return err
			}
			source := sampleMarkdown
			if len(args) == 1 {
				source = args[0]
			}
			c.Print(render.NewMarkdown(source))
			return nil
		},
	}
}

func boxStyleFor(name string) style.BoxStyle {
	switch strings.ToLower(name) {
	case "square":
		return style.BoxSquare
	case "double":
		return style.BoxDouble
	case "ascii":
		return style.BoxASCII
	case "minimal":
		return style.BoxMinimal
	default:
		return style.BoxRound
	}
}
