// Package rowagg groups flat join rows into parents while keeping first-seen order.
package rowagg

// OrderedMap is a map that remembers insertion order. Values are stored
// behind stable pointers, so a value obtained from GetOrInsert can be
// mutated in place while more keys are added.
type OrderedMap[K comparable, V any] struct {
	index  map[K]int
	values []*V
}

func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		index: make(map[K]int),
	}
}

// GetOrInsert returns the value for key, creating it with newFn on first sight.
func (m *OrderedMap[K, V]) GetOrInsert(key K, newFn func() V) *V {
	if i, ok := m.index[key]; ok {
		return m.values[i]
	}
	v := newFn()
	m.index[key] = len(m.values)
	m.values = append(m.values, &v)
	return &v
}

func (m *OrderedMap[K, V]) Get(key K) (*V, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.values)
}

// Values returns copies of the stored values in insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	out := make([]V, 0, len(m.values))
	for _, v := range m.values {
		out = append(out, *v)
	}
	return out
}
