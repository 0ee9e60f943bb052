package fn

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// Comp is left-to-right function composition: Comp(f, g)(x) == g(f(x)).
// Useful for building closures on the fly to hand to other combinators.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden returns its argument unchanged. It is the left and right identity
// of [Comp].
func Iden[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Compose chains fns right to left: the last function runs first, in the
// mathematical convention. Compose(f, g, h)(x) == f(g(h(x))). With no
// functions it returns the identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Pipe chains fns left to right, in reading order:
// Pipe(f, g, h)(x) == h(g(f(x))). With no functions it returns the
// identity.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, f := range fns {
			v = f(v)
		}
		return v
	}
}

// Thread pushes v through fns left to right and returns the final value.
// It is [Pipe] applied immediately:
//
//	fn.Thread(3, double, increment) // increment(double(3))
func Thread[T any](v T, fns ...func(T) T) T {
	for _, f := range fns {
		v = f(v)
	}
	return v
}
