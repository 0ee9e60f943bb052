package dict

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Path helpers for map[string]any
//
// These functions read, write, and test values in deeply nested
// map[string]any structures using dot-separated key paths.
//
// Example map:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	PathGet(m, "user.address.city")  → "London"
//	PathSet(m, "user.age", 30)
//	PathHas(m, "user.name")          → true
//	PathForget(m, "user.address")
// ─────────────────────────────────────────────────────────────────────────────

// Flatten collapses a nested map[string]any into a single-level map using
// dot notation for the keys.
//
//	Flatten(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	pathFlatten("", m, out)
	return out
}

func pathFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			pathFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Expand is the inverse of [Flatten]: it turns a flat dot-notation map
// back into a nested map[string]any.
//
//	Expand(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Expand(m map[string]any) map[string]any {
	out := make(map[string]any)
	for key, val := range m {
		PathSet(out, key, val)
	}
	return out
}

// PathGet retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the path does not resolve.
//
//	PathGet(m, "user.address.city")        // "London"
//	PathGet(m, "user.missing", "default")  // "default"
func PathGet(m map[string]any, key string, def ...any) any {
	segments := strings.Split(key, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		if i == len(segments)-1 {
			return val
		}
		nested, ok := val.(map[string]any)
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		current = nested
	}
	return nil
}

// PathSet writes value into m at the dot-notation key, creating
// intermediate maps as needed.
//
//	PathSet(m, "user.address.postcode", "EC1")
func PathSet(m map[string]any, key string, value any) {
	segments := strings.SplitN(key, ".", 2)
	if len(segments) == 1 {
		m[key] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		nested = make(map[string]any)
		m[seg] = nested
	}
	PathSet(nested, rest, value)
}

// PathHas reports whether the dot-notation key resolves in m.
func PathHas(m map[string]any, key string) bool {
	return pathHasKey(m, strings.Split(key, "."))
}

func pathHasKey(m map[string]any, segments []string) bool {
	if len(segments) == 0 {
		return false
	}
	val, ok := m[segments[0]]
	if !ok {
		return false
	}
	if len(segments) == 1 {
		return true
	}
	nested, ok := val.(map[string]any)
	if !ok {
		return false
	}
	return pathHasKey(nested, segments[1:])
}

// PathHasAll reports whether all dot-notation keys resolve in m.
func PathHasAll(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if !PathHas(m, key) {
			return false
		}
	}
	return true
}

// PathHasAny reports whether any of the dot-notation keys resolves in m.
func PathHasAny(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if PathHas(m, key) {
			return true
		}
	}
	return false
}

// PathForget removes the dot-notation key from m.
// Intermediate maps are not cleaned up.
func PathForget(m map[string]any, key string) {
	segments := strings.SplitN(key, ".", 2)
	if len(segments) == 1 {
		delete(m, key)
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		return
	}
	PathForget(nested, rest)
}

// DeepMerge merges src into dst, returning dst.
// Values in src overwrite values in dst for matching keys.
// Nested map[string]any values are merged recursively.
func DeepMerge(dst, src map[string]any) map[string]any {
	for k, srcVal := range src {
		dstVal, ok := dst[k]
		if ok {
			dstMap, dstIsMap := dstVal.(map[string]any)
			srcMap, srcIsMap := srcVal.(map[string]any)
			if dstIsMap && srcIsMap {
				DeepMerge(dstMap, srcMap)
				continue
			}
		}
		dst[k] = srcVal
	}
	return dst
}
