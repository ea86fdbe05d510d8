package syntax

import "fmt"

// Pos represents a position in a source file.
// The zero value is an invalid position.
type Pos struct {
	filename string // source file name
	line     int    // 1-based line number
	col      int    // 1-based column number (byte offset in line)
}

// NewPos creates a new Pos with the given filename, line, and column.
// Line and column numbers are 1-based.
func NewPos(filename string, line, col int) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// LinePos creates a Pos carrying only a line number, for token streams
// produced without column information.
func LinePos(line int) Pos {
	return Pos{line: line}
}

// String returns "filename:line:col", dropping the parts that are unset.
func (p Pos) String() string {
	s := fmt.Sprint(p.line)
	if p.col > 0 {
		s = fmt.Sprintf("%d:%d", p.line, p.col)
	}
	if p.filename != "" {
		return p.filename + ":" + s
	}
	return s
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() int {
	return p.line
}

// Col returns the 1-based column number, or 0 if unknown.
func (p Pos) Col() int {
	return p.col
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}
