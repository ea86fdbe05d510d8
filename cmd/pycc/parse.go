package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/you-not-fish/pyc/internal/syntax"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		format string
		lines  bool
	)
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.ASTFormat
			}
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown tree format %q (want text or json)", format)
			}
			tree, err := a.parse(cmd, args[0])
			if tree != nil {
				if perr := printTree(cmd.OutOrStdout(), tree, format, lines); perr != nil {
					return perr
				}
			}
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "tree format (text or json)")
	cmd.Flags().BoolVar(&lines, "lines", false, "prefix tree lines with source line numbers")
	return cmd
}

// parse parses filename, reporting syntax errors on stderr. On syntax
// errors it returns the partial tree and errDiagnostics.
func (a *app) parse(cmd *cobra.Command, filename string) (*syntax.Tree, error) {
	f, err := openSource(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	errOut := cmd.ErrOrStderr()
	errh := func(pos syntax.Pos, msg string) {
		a.styles.diag(errOut, a.styles.syntax, "syntax error", pos.String(), msg)
	}
	tree, n := syntax.ParseFile(filename, f, errh)
	a.log.Debug("parsed", "file", filename, "nodes", tree.Len(), "errors", n)
	if n > 0 {
		fmt.Fprintln(errOut, a.styles.summary.Render(count(n, "syntax error")))
		return tree, errDiagnostics
	}
	return tree, nil
}

func printTree(w io.Writer, tree *syntax.Tree, format string, lines bool) error {
	if format == "json" {
		return syntax.FprintJSON(w, tree)
	}
	var mode syntax.PrintMode
	if lines {
		mode |= syntax.ShowLines
	}
	syntax.Fprint(w, tree, mode)
	return nil
}
