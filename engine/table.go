package engine

import (
	"slices"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/vi-defense/core"
)

// Table is an insertion-ordered map
// Iteration follows first insertion; removal keeps the relative order of remaining rows
// Every system iterates tables in this order, which keeps the simulation deterministic
type Table[K comparable, V any] struct {
	keys   []K
	values []V
	index  map[K]int
}

// NewTable creates an empty table
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		index: make(map[K]int),
	}
}

// NewStore creates an entity-keyed component table
func NewStore[V any]() *Table[core.Entity, V] {
	return NewTable[core.Entity, V]()
}

// Set inserts or updates; updates keep the original position
func (t *Table[K, V]) Set(k K, v V) {
	if i, ok := t.index[k]; ok {
		t.values[i] = v
		return
	}
	t.index[k] = len(t.keys)
	t.keys = append(t.keys, k)
	t.values = append(t.values, v)
}

func (t *Table[K, V]) Get(k K) (V, bool) {
	if i, ok := t.index[k]; ok {
		return t.values[i], true
	}
	var zero V
	return zero, false
}

// Ptr returns a pointer to the stored value or nil
// Valid until the next Set of a new key or Remove
func (t *Table[K, V]) Ptr(k K) *V {
	if i, ok := t.index[k]; ok {
		return &t.values[i]
	}
	return nil
}

func (t *Table[K, V]) Has(k K) bool {
	_, ok := t.index[k]
	return ok
}

// Remove deletes a row and shifts later rows down, O(n)
func (t *Table[K, V]) Remove(k K) bool {
	i, ok := t.index[k]
	if !ok {
		return false
	}
	delete(t.index, k)
	t.keys = slices.Delete(t.keys, i, i+1)
	t.values = slices.Delete(t.values, i, i+1)
	for j := i; j < len(t.keys); j++ {
		t.index[t.keys[j]] = j
	}
	return true
}

func (t *Table[K, V]) Len() int {
	return len(t.keys)
}

// At returns the i-th row in insertion order
func (t *Table[K, V]) At(i int) (K, V) {
	return t.keys[i], t.values[i]
}

// KeyAt returns the i-th key in insertion order
func (t *Table[K, V]) KeyAt(i int) K {
	return t.keys[i]
}

// PtrAt returns a pointer to the i-th value
func (t *Table[K, V]) PtrAt(i int) *V {
	return &t.values[i]
}

// Keys returns a copy of the keys in insertion order
func (t *Table[K, V]) Keys() []K {
	return slices.Clone(t.keys)
}

// Clear removes every row
func (t *Table[K, V]) Clear() {
	t.keys = t.keys[:0]
	t.values = t.values[:0]
	clear(t.index)
}

// Clone deep-copies the table; values are copied by assignment
func (t *Table[K, V]) Clone() *Table[K, V] {
	index := make(map[K]int, len(t.index))
	for k, i := range t.index {
		index[k] = i
	}
	return &Table[K, V]{
		keys:   slices.Clone(t.keys),
		values: slices.Clone(t.values),
		index:  index,
	}
}

// EncodeMsgpack writes rows as an array of key/value pairs in insertion order
func (t *Table[K, V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(len(t.keys)); err != nil {
		return err
	}
	for i := range t.keys {
		if err := enc.Encode(t.keys[i]); err != nil {
			return err
		}
		if err := enc.Encode(t.values[i]); err != nil {
			return err
		}
	}
	return nil
}

var _ msgpack.CustomEncoder = (*Table[core.Entity, struct{}])(nil)

// AnyStore provides type-erased operations for entity lifecycle management
// CoreState destroys entities through it without knowing the concrete component type
type AnyStore interface {
	Remove(e core.Entity) bool
	Has(e core.Entity) bool
	Len() int
}
