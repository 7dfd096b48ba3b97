// Package attrs merges the attribute pair lists that element builders take.
package attrs

import "strings"

// Merge combines pass-through attribute pairs from a caller with the pairs a
// component owns. Owned pairs win over caller pairs with the same key, except
// "class", whose values are joined. Key order follows first appearance.
// A trailing odd key is dropped.
func Merge(caller []string, owned ...string) []string {
	keys := make([]string, 0, (len(caller)+len(owned))/2)
	vals := make(map[string]string, cap(keys))

	add := func(pairs []string, override bool) {
		for i := 0; i+1 < len(pairs); i += 2 {
			k, v := pairs[i], pairs[i+1]
			old, seen := vals[k]
			if !seen {
				keys = append(keys, k)
				vals[k] = v
				continue
			}
			switch {
			case k == "class":
				vals[k] = joinClass(old, v)
			case override:
				vals[k] = v
			}
		}
	}
	add(caller, false)
	add(owned, true)

	out := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k, vals[k])
	}
	return out
}

// Without drops the pairs whose key is one of keys.
func Without(pairs []string, keys ...string) []string {
	out := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		drop := false
		for _, k := range keys {
			if pairs[i] == k {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, pairs[i], pairs[i+1])
		}
	}
	return out
}

// Get returns the value of key in pairs.
func Get(pairs []string, key string) (string, bool) {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == key {
			return pairs[i+1], true
		}
	}
	return "", false
}

func joinClass(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}
