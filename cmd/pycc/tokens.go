package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/you-not-fish/pyc/internal/syntax"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(cmd, args[0])
		},
	}
}

// runTokens scans the input file and prints all tokens with positions.
func (a *app) runTokens(cmd *cobra.Command, filename string) error {
	f, err := openSource(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var errs int
	errh := func(pos syntax.Pos, msg string) {
		errs++
		a.styles.diag(errOut, a.styles.syntax, "error", pos.String(), msg)
	}
	toks := syntax.Tokenize(filename, f, errh)
	a.log.Debug("scanned", "file", filename, "tokens", len(toks))

	fmt.Fprintf(out, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(out, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))
	for _, tok := range toks {
		fmt.Fprintf(out, "%-20s %-12s %s\n", tok.Pos, tok.Kind, formatLiteral(tok.Lit))
	}

	if errs > 0 {
		fmt.Fprintln(errOut, a.styles.summary.Render(count(errs, "lexical error")))
		return errDiagnostics
	}
	return nil
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return ""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		case 0:
			b.WriteString("\\0")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
