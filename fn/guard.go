package fn

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// ─────────────────────────────────────────────────────────────────────────────
// Call-count guards
// ─────────────────────────────────────────────────────────────────────────────

// Once wraps f so every call runs with the arguments of the first call.
// f itself is invoked every time — it is the arguments that are frozen,
// not the result. Memoize the result instead if f is expensive.
func Once[A, R any](f func(A) R) func(A) R {
	var (
		mu     sync.Mutex
		called bool
		first  A
	)
	return func(a A) R {
		mu.Lock()
		if !called {
			called = true
			first = a
		}
		arg := first
		mu.Unlock()
		return f(arg)
	}
}

// Before wraps f so the first count calls run with their own arguments;
// every later call replays the arguments of call number count. With a
// non-positive count the zero arguments are replayed from the start.
func Before[A, R any](f func(A) R, count int) func(A) R {
	var (
		mu     sync.Mutex
		calls  int
		frozen A
	)
	return func(a A) R {
		mu.Lock()
		calls++
		if calls <= count {
			frozen = a
		}
		arg := frozen
		mu.Unlock()
		return f(arg)
	}
}

// After wraps f so it only starts running from call number count
// onwards. Earlier calls are no-ops returning the zero result and false.
func After[A, R any](f func(A) R, count int) func(A) (R, bool) {
	var (
		mu    sync.Mutex
		calls int
	)
	return func(a A) (R, bool) {
		mu.Lock()
		calls++
		ready := calls >= count
		mu.Unlock()
		if !ready {
			var zero R
			return zero, false
		}
		return f(a), true
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Unique identifiers
// ─────────────────────────────────────────────────────────────────────────────

var idCounter atomic.Int64

// UniqueID returns a process-wide unique positive integer. The counter
// starts at zero, so the first call returns 1; it is never reset.
func UniqueID() int64 {
	return idCounter.Add(1)
}

// TaggedID returns prefix followed by the next [UniqueID], e.g.
// TaggedID("contact_") → "contact_42".
func TaggedID(prefix string) string {
	return prefix + strconv.FormatInt(UniqueID(), 10)
}
