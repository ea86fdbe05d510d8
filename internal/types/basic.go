package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Undefined BasicKind = iota // not yet resolved, or unresolvable

	Void
	Int
	Frac
	String
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	IsInteger BasicInfo = 1 << iota
	IsFraction
	IsString
	IsNumeric = IsInteger | IsFraction
)

// Basic represents a basic type: void, int, frac, string and the
// undefined sentinel carried by expressions that have not been typed.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared basic types, indexed by BasicKind.
var Typ = []*Basic{
	Undefined: {kind: Undefined, name: "undefined"},
	Void:      {kind: Void, name: "void"},
	Int:       {kind: Int, info: IsInteger, name: "int"},
	Frac:      {kind: Frac, info: IsFraction, name: "frac"},
	String:    {kind: String, info: IsString, name: "string"},
}
