package fn

// ─────────────────────────────────────────────────────────────────────────────
// Currying & partial application
// ─────────────────────────────────────────────────────────────────────────────

// Curry turns a two-argument function into a chain of one-argument
// applications. Every partial application is an independent closure:
// applying the chain twice from the same point never shares state.
func Curry[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 is [Curry] for three-argument functions.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Partial fixes the first argument of f.
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Partial2 fixes the first two arguments of f.
func Partial2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return f(a, b, c)
	}
}

// PartialRight fixes the last argument of f.
func PartialRight[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R {
		return f(a, b)
	}
}

// PartialRight2 fixes the last two arguments of f.
func PartialRight2[A, B, C, R any](f func(A, B, C) R, b B, c C) func(A) R {
	return func(a A) R {
		return f(a, b, c)
	}
}

// Bind is an alias for [Partial].
func Bind[A, B, R any](f func(A, B) R, a A) func(B) R {
	return Partial(f, a)
}

type placeholder struct{}

// Arg is the placeholder for [BindArgs]: bound positions holding Arg are
// filled, left to right, by the arguments of the eventual call.
var Arg placeholder

// BindArgs pre-fills arguments of a variadic function. Call-time
// arguments consume Arg placeholders positionally; any left over are
// appended after the bound ones. A placeholder with no argument to fill
// it is passed through as nil.
//
//	hello := func(args ...any) any { return fmt.Sprint("hello ", args[0], " ", args[1]) }
//	greet := fn.BindArgs(hello, fn.Arg, "!")
//	greet("moe") // "hello moe !"
func BindArgs(f func(...any) any, bound ...any) func(...any) any {
	return func(args ...any) any {
		merged := make([]any, 0, len(bound)+len(args))
		next := 0
		for _, b := range bound {
			if _, ok := b.(placeholder); ok {
				if next < len(args) {
					merged = append(merged, args[next])
					next++
				} else {
					merged = append(merged, nil)
				}
				continue
			}
			merged = append(merged, b)
		}
		merged = append(merged, args[next:]...)
		return f(merged...)
	}
}
