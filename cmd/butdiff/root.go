package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/gitbutlerapp/butdiff/fs"
	"github.com/gitbutlerapp/butdiff/yaml"
	"github.com/spf13/cobra"
)

// Run executes the command line args against app.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := NewRootCommand(a)
	cmd.SetArgs(args)
	if a.Stdin != nil {
		cmd.SetIn(a.Stdin)
	}
	if a.Stdout != nil {
		cmd.SetOut(a.Stdout)
	}
	if a.Stderr != nil {
		cmd.SetErr(a.Stderr)
	}
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand builds the butdiff command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	var (
		configPath    string
		logLevel      string
		theme         string
		maxPatchBytes int
	)

	root := &cobra.Command{
		Use:           "butdiff",
		Short:         "Compute, parse and quote diffs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := yaml.LoadConfig(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("theme") {
				cfg.Theme = theme
			}
			if flags.Changed("max-patch-bytes") {
				cfg.MaxPatchBytes = maxPatchBytes
			}
			return app.configure(cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", fs.DefaultConfigPath(), "config file")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&theme, "theme", "", "color theme: dark or light")
	pf.IntVar(&maxPatchBytes, "max-patch-bytes", 0, "report larger patches as too large (0 disables)")

	root.AddCommand(
		newLinesCommand(app),
		newTextCommand(app),
		newHunksCommand(app),
		newQuoteCommand(app),
		newFilesCommand(app),
		newViewCommand(app),
		newRefCommand(app),
	)
	return root
}

func newLinesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lines OLD NEW",
		Short: "Diff two files line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.Lines(args[0], args[1])
		},
	}
}

func newTextCommand(app *App) *cobra.Command {
	var cleanup bool
	cmd := &cobra.Command{
		Use:   "text OLD NEW",
		Short: "Diff two strings character by character",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.Text(args[0], args[1], cleanup)
		},
	}
	cmd.Flags().BoolVar(&cleanup, "cleanup", false, "merge fragmented edits")
	return cmd
}

func newHunksCommand(app *App) *cobra.Command {
	var side, syntax string
	cmd := &cobra.Command{
		Use:   "hunks [FILE]",
		Short: "Parse a unified diff and print its sections",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withInput(app, args, func(r io.Reader) error {
				return app.Hunks(r, side, syntax)
			})
		},
	}
	cmd.Flags().StringVar(&side, "side", "", "print only the before or after text")
	cmd.Flags().StringVar(&syntax, "syntax", "", "file name or language for syntax highlighting")
	return cmd
}

func newQuoteCommand(app *App) *cobra.Command {
	var ref string
	cmd := &cobra.Command{
		Use:   "quote --ref REF [FILE]",
		Short: "Print the patch lines selected by a range reference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withInput(app, args, func(r io.Reader) error {
				return app.Quote(r, ref)
			})
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "range reference")
	_ = cmd.MarkFlagRequired("ref")
	return cmd
}

func newFilesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "files [FILE]",
		Short: "Classify each file of git diff output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withInput(app, args, app.Files)
		},
	}
}

func newViewCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view [FILE]",
		Short: "Browse git diff output interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(app, args, func(r io.Reader) error {
				return app.View(cmd.Context(), r)
			})
		},
	}
}

func newRefCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ref",
		Short: "Encode or decode range references",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode INDEX...",
			Short: "Encode line indices as a reference",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return app.EncodeRef(args)
			},
		},
		&cobra.Command{
			Use:   "decode REF",
			Short: "Print the line indices behind a reference",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return app.DecodeRef(args[0])
			},
		},
	)
	return cmd
}

// withInput calls fn with the named file, or with stdin when no file is
// given.
func withInput(app *App, args []string, fn func(io.Reader) error) error {
	if len(args) == 0 {
		if app.Stdin == nil {
			return errors.New("no input")
		}
		return fn(app.Stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}
