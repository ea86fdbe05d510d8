package types

// Identical reports whether x and y are identical types.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}

	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Array:
		// Array identity ignores the length: an array argument is
		// accepted by an array parameter of the same element type.
		if y, ok := y.(*Array); ok {
			return Identical(x.elem, y.elem)
		}
	case *Func:
		if y, ok := y.(*Func); ok {
			return identicalFuncs(x, y)
		}
	}
	return false
}

func identicalFuncs(x, y *Func) bool {
	if x.variadic != y.variadic {
		return false
	}
	if len(x.params) != len(y.params) {
		return false
	}
	for i := range x.params {
		if !Identical(x.params[i], y.params[i]) {
			return false
		}
	}
	return Identical(x.result, y.result)
}

// AssignableTo reports whether a value of type V is assignable to type T.
// Only basic values are assignable; int widens to frac.
func AssignableTo(V, T Type) bool {
	v, ok := V.(*Basic)
	if !ok {
		return false
	}
	t, ok := T.(*Basic)
	if !ok {
		return false
	}
	if v.kind == Void || v.kind == Undefined {
		return false
	}
	if v.kind == t.kind {
		return true
	}
	return v.kind == Int && t.kind == Frac
}

// IsUndefined reports whether t is nil or the undefined sentinel.
// Checks involving an undefined operand are skipped so that a single
// unresolved name does not cascade into further diagnostics.
func IsUndefined(t Type) bool {
	if t == nil {
		return true
	}
	b, ok := t.(*Basic)
	return ok && b.kind == Undefined
}

// IsIntegerType reports whether t is int.
func IsIntegerType(t Type) bool {
	return hasInfo(t, IsInteger)
}

// IsNumericType reports whether t is int or frac.
func IsNumericType(t Type) bool {
	return hasInfo(t, IsNumeric)
}

// IsStringType reports whether t is string.
func IsStringType(t Type) bool {
	return hasInfo(t, IsString)
}

func hasInfo(t Type, info BasicInfo) bool {
	b, ok := t.(*Basic)
	return ok && b.info&info != 0
}

// Comparable reports whether values of types x and y can be compared
// with a relational operator.
func Comparable(x, y Type) bool {
	if IsNumericType(x) && IsNumericType(y) {
		return true
	}
	return IsStringType(x) && IsStringType(y)
}

// ArithmeticResult returns the result type of an arithmetic operation on
// operands of types x and y, or nil if the operation is invalid.
// Mixed int and frac operands yield frac.
func ArithmeticResult(x, y Type) *Basic {
	if !IsNumericType(x) || !IsNumericType(y) {
		return nil
	}
	if IsIntegerType(x) && IsIntegerType(y) {
		return Typ[Int]
	}
	return Typ[Frac]
}
