package dashboard

import "strings"

// memo caches the last derived projection and recomputes only when its
// inputs change.
type memo[K comparable, V any] struct {
	valid bool
	key   K
	val   V
}

func (m *memo[K, V]) get(key K, compute func() V) V {
	if m.valid && m.key == key {
		return m.val
	}
	m.key, m.val, m.valid = key, compute(), true
	return m.val
}

func (m *memo[K, V]) reset() { m.valid = false }

// containsFold is a case-insensitive substring match.
func containsFold(haystack, needle string) bool {
	return needle == "" || strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
