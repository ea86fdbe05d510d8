package symtab

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const rowFormat = "%-6s%-15s%-12s%-5s%-9s\n"

// Fprint writes the table as a report with one row per declared name.
// Scopes are written depth-first from the global scope: each scope's
// entries, then its nested scopes, then the scopes that follow it.
func Fprint(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, rowFormat, "Table", "Name", "Kind", "Dcl", "Ref")
	fmt.Fprintf(bw, rowFormat, "ID", "", "", "line", "lines")
	fmt.Fprintf(bw, rowFormat, "----", "----", "----", "----", "----")
	if g := t.Global(); g != nil {
		fprintScope(bw, g)
	}
	return bw.Flush()
}

func fprintScope(w *bufio.Writer, s *Scope) {
	for _, b := range s.Entries() {
		fmt.Fprintf(w, "%-6d%-15s%-12s%-5d", s.id, b.name, b.kind, b.line)
		for i, l := range b.RefLines() {
			if i > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(strconv.Itoa(l))
		}
		w.WriteByte('\n')
	}
	for c := s.first; c != nil; c = c.next {
		fprintScope(w, c)
	}
}
