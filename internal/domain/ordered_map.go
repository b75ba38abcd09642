package domain

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Keys lists the keys of m oldest first. A nil map has no keys.
func Keys[V any](m *orderedmap.OrderedMap[string, V]) []string {
	out := make([]string, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// orEmpty keeps unset maps serializing as {} rather than null
func orEmpty[V any](m *orderedmap.OrderedMap[string, V]) *orderedmap.OrderedMap[string, V] {
	if m == nil {
		return orderedmap.New[string, V]()
	}
	return m
}
