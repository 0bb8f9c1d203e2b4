package types

// Meta is an ordered key/value container for page front matter. Keys keep
// their first-seen insertion order; setting an existing key overwrites the
// value without moving the key.
type Meta struct {
	keys   []string
	values map[string]string
}

// NewMeta returns an empty metadata container.
func NewMeta() *Meta {
	return &Meta{values: make(map[string]string)}
}

// Set stores value under key. A new key is appended to the order; an existing
// key keeps its position.
func (m *Meta) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether the key is present.
func (m *Meta) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Meta) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Meta) Len() int {
	return len(m.keys)
}
