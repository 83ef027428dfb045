// Copyright: This file is part of timeassert, released under https://github.com/korrel8r/timeassert/blob/main/LICENSE

// package unique provides functions and types to remove duplicate values.
package unique

// Deduplicator keeps track of comparable keys that identify unique values.
// A Deduplicator is not safe for concurrent use.
type Deduplicator[K comparable, V any] struct {
	key  func(V) K
	seen Set[K]
}

// NewDeduplicator uses func key to extract keys from values.
func NewDeduplicator[K comparable, V any](key func(V) K) *Deduplicator[K, V] {
	return &Deduplicator[K, V]{key: key}
}

// Unique returns true if  the key of v has not been seen before.
// Unique will return false for future values with the same key.
func (d *Deduplicator[K, V]) Unique(v V) bool {
	k := d.key(v)
	if d.seen.Has(k) {
		return false
	}
	if d.seen == nil {
		d.seen = Set[K]{}
	}
	d.seen.Add(k)
	return true
}

