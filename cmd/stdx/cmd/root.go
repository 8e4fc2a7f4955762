// Package cmd implements the stdx command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-stdx/internal/config"
	"github.com/hasbyte1/go-stdx/internal/document"
	"github.com/hasbyte1/go-stdx/internal/logging"
)

// errFalse makes a command exit non-zero without printing an error, e.g.
// when `path has` finds nothing.
var errFalse = errors.New("stdx: false")

type rootOptions struct {
	configPath string
	format     string
	output     string
	logLevel   string
	noColor    bool
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	opts   rootOptions
	cfg    *config.Config
	log    *slog.Logger
	colors palette
}

// palette holds the output colours.
type palette struct {
	key   *color.Color
	value *color.Color
	ok    *color.Color
	fail  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		key:   color.New(color.FgCyan),
		value: color.New(color.FgGreen),
		ok:    color.New(color.FgGreen, color.Bold),
		fail:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.key, p.value, p.ok, p.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the stdx command tree against os.Args.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errFalse) {
		fmt.Fprintf(os.Stderr, "stdx: %v\n", err)
	}
	return err
}

// newApp returns the state subcommands see until setup has parsed the
// persistent flags: default configuration, no colours and a silent logger.
func newApp() *app {
	return &app{
		cfg:    config.Default(),
		log:    logging.Discard(),
		colors: newPalette(false),
	}
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := newApp()

	root := &cobra.Command{
		Use:   "stdx",
		Short: "Dot-path access, string helpers and locale tables",
		Long: `stdx reads JSON, YAML and TOML documents and addresses nested values
with dot paths such as "users.*.name".

It also exposes the string helpers (slugs, masks, case conversion) and the
locale, country and timezone tables of the go-stdx library.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "config file (default: $"+config.EnvVar+" or the user config dir)")
	flags.StringVar(&a.opts.format, "format", "", "input document format: json, yaml or toml (default: by file extension)")
	flags.StringVarP(&a.opts.output, "output", "o", "", "output format for compound values: json, yaml or toml")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&a.opts.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newPathCmd(a),
		newStrCmd(a),
		newLocaleCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}
	if a.opts.logLevel != "" {
		cfg.Log.Level = a.opts.logLevel
	}
	if a.opts.output != "" {
		cfg.Output.Format = a.opts.output
	}
	if _, err := document.ParseFormat(cfg.Output.Format); err != nil {
		return err
	}
	if a.opts.format != "" {
		if _, err := document.ParseFormat(a.opts.format); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.log = logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, cmd.ErrOrStderr())
	a.colors = newPalette(cfg.ColorEnabled() && !a.opts.noColor && isTerminal(cmd.OutOrStdout()))
	a.log.Debug("configuration loaded", slog.String("output", cfg.Output.Format), slog.String("log_level", cfg.Log.Level))
	return nil
}

func (a *app) outputFormat() document.Format {
	f, _ := document.ParseFormat(a.cfg.Output.Format)
	return f
}

func (a *app) inputFormat() document.Format {
	if a.opts.format == "" {
		return ""
	}
	f, _ := document.ParseFormat(a.opts.format)
	return f
}
