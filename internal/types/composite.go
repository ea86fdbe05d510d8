package types

import (
	"fmt"
	"strings"
)

// Array represents an array of a basic element type.
// Len is 0 for array parameters, whose size is not part of the type.
type Array struct {
	typ
	len  int64
	elem *Basic
}

// NewArray creates a new array type with the given length and element type.
func NewArray(len int64, elem *Basic) *Array {
	return &Array{len: len, elem: elem}
}

// Len returns the array length (0 if unknown).
func (a *Array) Len() int64 {
	return a.len
}

// Elem returns the array element type.
func (a *Array) Elem() *Basic {
	return a.elem
}

// String implements Type.
func (a *Array) String() string {
	if a.len == 0 {
		return fmt.Sprintf("%s[]", a.elem)
	}
	return fmt.Sprintf("%s[%d]", a.elem, a.len)
}

// Func represents a function signature.
type Func struct {
	typ
	params   []Type
	result   *Basic
	variadic bool // accepts exactly one argument of any type (builtin print)
}

// NewFunc creates a new function signature.
// A nil result is treated as void.
func NewFunc(params []Type, result *Basic) *Func {
	if result == nil {
		result = Typ[Void]
	}
	return &Func{params: params, result: result}
}

// NewAnyFunc creates a signature taking a single argument of any
// non-void type and returning result.
func NewAnyFunc(result *Basic) *Func {
	f := NewFunc(nil, result)
	f.variadic = true
	return f
}

// Params returns the parameter types.
func (f *Func) Params() []Type {
	return f.params
}

// NumParams returns the number of parameters the function expects.
func (f *Func) NumParams() int {
	if f.variadic {
		return 1
	}
	return len(f.params)
}

// Param returns the type of parameter i, or nil if any type is accepted.
func (f *Func) Param(i int) Type {
	if f.variadic {
		return nil
	}
	return f.params[i]
}

// Result returns the result type.
func (f *Func) Result() *Basic {
	return f.result
}

// String implements Type.
func (f *Func) String() string {
	var buf strings.Builder
	buf.WriteString("func(")
	if f.variadic {
		buf.WriteString("any")
	}
	for i, p := range f.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.String())
	}
	buf.WriteString(") ")
	buf.WriteString(f.result.String())
	return buf.String()
}
