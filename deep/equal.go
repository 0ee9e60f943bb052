package deep

import "reflect"

// Equaler is the custom-equality hook. When either operand of [Equal]
// implements Equaler, that operand's EqualTo method replaces structural
// descent entirely. The left operand is consulted first.
type Equaler interface {
	// EqualTo reports whether the receiver is equal to other.
	EqualTo(other any) bool
}

// Equal reports whether a and b are structurally equal.
//
// Scalars compare with native equality, slices and arrays by length and
// element-wise recursion, maps by size plus a symmetric two-pass key
// check (every key of a must map to an equal value in b, and every key
// of b must exist in a), pointers by the pointed-to values, and structs
// field-by-field including unexported fields. Values of different
// dynamic types are never equal.
//
// Equal does not detect cycles; see the package documentation.
func Equal(a, b any) bool {
	if eq, ok := a.(Equaler); ok {
		return eq.EqualTo(b)
	}
	if eq, ok := b.(Equaler); ok {
		return eq.EqualTo(a)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	return equalValue(av, bv)
}

func equalValue(av, bv reflect.Value) bool {
	if !av.IsValid() || !bv.IsValid() {
		return av.IsValid() == bv.IsValid()
	}
	if av.Type() != bv.Type() {
		return false
	}

	// The Equaler hook also applies to nested values, as long as the
	// value is addressable through exported structure.
	if av.CanInterface() && bv.CanInterface() {
		if eq, ok := av.Interface().(Equaler); ok {
			return eq.EqualTo(bv.Interface())
		}
		if eq, ok := bv.Interface().(Equaler); ok {
			return eq.EqualTo(av.Interface())
		}
	}

	switch av.Kind() {
	case reflect.Bool:
		return av.Bool() == bv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return av.Int() == bv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return av.Uint() == bv.Uint()
	case reflect.Float32, reflect.Float64:
		return av.Float() == bv.Float()
	case reflect.Complex64, reflect.Complex128:
		return av.Complex() == bv.Complex()
	case reflect.String:
		return av.String() == bv.String()
	case reflect.Slice, reflect.Array:
		if av.Kind() == reflect.Slice && av.IsNil() != bv.IsNil() {
			return false
		}
		if av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			if !equalValue(av.Index(i), bv.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if av.IsNil() != bv.IsNil() {
			return false
		}
		if av.Len() != bv.Len() {
			return false
		}
		// Pass one: every key of a maps to an equal value in b.
		for _, key := range av.MapKeys() {
			bval := bv.MapIndex(key)
			if !bval.IsValid() || !equalValue(av.MapIndex(key), bval) {
				return false
			}
		}
		// Pass two: every key of b exists in a.
		for _, key := range bv.MapKeys() {
			if !av.MapIndex(key).IsValid() {
				return false
			}
		}
		return true
	case reflect.Pointer:
		if av.IsNil() || bv.IsNil() {
			return av.IsNil() == bv.IsNil()
		}
		if av.Pointer() == bv.Pointer() {
			return true
		}
		return equalValue(av.Elem(), bv.Elem())
	case reflect.Interface:
		if av.IsNil() || bv.IsNil() {
			return av.IsNil() == bv.IsNil()
		}
		return equalValue(av.Elem(), bv.Elem())
	case reflect.Struct:
		for i := 0; i < av.NumField(); i++ {
			if !equalValue(av.Field(i), bv.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Func:
		// Functions have no structural content; only two nil funcs are equal.
		return av.IsNil() && bv.IsNil()
	case reflect.Chan, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	default:
		return false
	}
}
