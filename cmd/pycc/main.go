// Package main implements the pycc command, the Pyc compiler front end.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/you-not-fish/pyc/internal/config"
)

// Version information
const Version = "0.1.0-dev"

// errDiagnostics is returned by a command whose diagnostics were already
// reported; it only sets the exit status.
var errDiagnostics = errors.New("diagnostics reported")

// app holds the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	log    *slog.Logger
	styles *styles
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(&app{})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(stderr, "pycc: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pycc",
		Short: "Pyc compiler front end",
		Long: `pycc scans, parses and checks programs written in Pyc, a small
language mixing C and Python surface syntax.

Commands:
  tokens   - print the token stream
  parse    - print the syntax tree
  check    - resolve names and check types`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger and styles.
func (a *app) setup(stderr io.Writer) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		var err error
		if cfg, err = config.Load(a.cfgFile); err != nil {
			return err
		}
	}
	a.cfg = cfg

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(stderr, opts)
	} else {
		h = slog.NewTextHandler(stderr, opts)
	}
	a.log = slog.New(h).With("run_id", uuid.NewString())
	a.styles = newStyles(stderr, cfg.Output.Color)
	return nil
}

// openSource opens filename for reading.
func openSource(filename string) (*os.File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	return f, nil
}
