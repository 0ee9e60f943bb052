package dict

// ─────────────────────────────────────────────────────────────────────────────
// Named map variants
//
// One overloaded "map" whose callback may or may not override the key is
// ambiguous; these fixed-signature variants replace it.
// ─────────────────────────────────────────────────────────────────────────────

// MapValues applies fn(value, key) to every entry and returns a new map
// with the same keys and the transformed values.
func MapValues[K comparable, V, W any](m map[K]V, fn func(V, K) W) map[K]W {
	out := make(map[K]W, len(m))
	for k, v := range m {
		out[k] = fn(v, k)
	}
	return out
}

// MapKeys applies fn(value, key) to every entry and returns a new map
// with the transformed keys and the original values. When several entries
// map to the same new key, one of them wins (unspecified).
func MapKeys[K, L comparable, V any](m map[K]V, fn func(V, K) L) map[L]V {
	out := make(map[L]V, len(m))
	for k, v := range m {
		out[fn(v, k)] = v
	}
	return out
}

// MapEntries applies fn(key, value) to every entry, rewriting both key and
// value. Entries for which fn reports ok == false produce no entry in the
// result, so a transform can drop entries as it goes:
//
//	lengths := dict.MapEntries(words, func(k string, v string) (string, int, bool) {
//		if v == "" {
//			return "", 0, false // skip blanks
//		}
//		return k, len(v), true
//	})
func MapEntries[K, L comparable, V, W any](m map[K]V, fn func(K, V) (L, W, bool)) map[L]W {
	out := make(map[L]W, len(m))
	for k, v := range m {
		if l, w, ok := fn(k, v); ok {
			out[l] = w
		}
	}
	return out
}
