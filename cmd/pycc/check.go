package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/you-not-fish/pyc/internal/symtab"
	"github.com/you-not-fish/pyc/internal/syntax"
	"github.com/you-not-fish/pyc/internal/types2"
)

func newCheckCmd(a *app) *cobra.Command {
	var symbols, typed bool
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Resolve names and check types",
		Long: `check parses FILE and runs semantic analysis on it, reporting every
syntax or semantic error. The analysis is skipped if the file does not
parse.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("symtab") {
				symbols = a.cfg.Analyzer.Symtab
			}
			if !cmd.Flags().Changed("typed") {
				typed = a.cfg.Analyzer.Typed
			}
			return a.runCheck(cmd, args[0], symbols, typed)
		},
	}
	cmd.Flags().BoolVar(&symbols, "symtab", false, "print the symbol table")
	cmd.Flags().BoolVar(&typed, "typed", false, "print the tree with resolved types")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, filename string, symbols, typed bool) error {
	tree, err := a.parse(cmd, filename)
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	conf := &types2.Config{
		Buckets: a.cfg.Analyzer.Buckets,
		Logger:  a.log,
		Error: func(err *types2.Error) {
			a.styles.diag(errOut, a.styles.sem, "error", err.Pos.String(), err.Msg)
		},
	}
	s := types2.NewSession(conf)
	defer s.Release()
	_, found := s.Analyze(tree)

	if symbols {
		if err := symtab.Fprint(out, s.Table()); err != nil {
			return fmt.Errorf("printing symbol table: %w", err)
		}
	}
	if typed {
		syntax.Fprint(out, tree, syntax.ShowTypes)
	}

	if found {
		fmt.Fprintln(errOut, a.styles.summary.Render(count(len(s.Errors()), "semantic error")))
		return errDiagnostics
	}
	a.log.Debug("checked", "file", filename)
	return nil
}
