package hashdict

import (
	"golang.org/x/exp/constraints"
)

// Intersection returns a new dictionary holding the entries of d whose keys
// are also present in other. Values always come from d, so the operation is
// only commutative in its key set: d.Intersection(o) and o.Intersection(d)
// differ wherever the two disagree on a value.
//
// The result uses the hasher and options of d.
func (d *Dictionary[K, V]) Intersection(other *Dictionary[K, V]) *Dictionary[K, V] {
	result := &Dictionary[K, V]{
		slots:  make([]slot[K, V], d.opts.InitialCapacity),
		hasher: d.hasher,
		opts:   d.opts,
	}
	for k, v := range d.All() {
		if other.Contains(k) {
			result.Insert(k, v)
		}
	}
	return result
}

// Equal reports whether a and b hold the same key/value pairs, regardless of
// capacity or bucket order.
func Equal[K, V comparable](a, b *Dictionary[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[K comparable, V1, V2 any](a *Dictionary[K, V1], b *Dictionary[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.All() {
		w, ok := b.Lookup(k)
		if !ok || !eq(v, w) {
			return false
		}
	}
	return true
}

// CountWithMinValue returns the number of entries whose value is at least
// threshold. Counting the words of a text that repeat threshold times or more
// is the typical use.
func CountWithMinValue[K comparable, V constraints.Ordered](d *Dictionary[K, V], threshold V) int {
	n := 0
	for _, v := range d.All() {
		if v >= threshold {
			n++
		}
	}
	return n
}
