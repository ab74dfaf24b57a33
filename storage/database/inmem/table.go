package inmemdb

import "sync"

// table keeps the rows of one collection in fixture order.
// Ids are not required to be unique: lookups return the first row with a given id.
type table[T any] struct {
	sync.RWMutex
	rows  []T
	index map[string]int
}

func newTable[T any](rows []T, id func(T) string) *table[T] {
	t := &table[T]{
		rows:  rows,
		index: make(map[string]int, len(rows)),
	}
	for i, row := range rows {
		if _, ok := t.index[id(row)]; !ok {
			t.index[id(row)] = i
		}
	}
	return t
}

func (t *table[T]) all() []T {
	t.RLock()
	defer t.RUnlock()

	rows := make([]T, len(t.rows))
	copy(rows, t.rows)
	return rows
}

func (t *table[T]) get(id string) (T, bool) {
	t.RLock()
	defer t.RUnlock()

	if i, ok := t.index[id]; ok {
		return t.rows[i], true
	}
	var zero T
	return zero, false
}

func (t *table[T]) find(pred func(T) bool) (T, bool) {
	t.RLock()
	defer t.RUnlock()

	for _, row := range t.rows {
		if pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}
