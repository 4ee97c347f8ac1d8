package hashdict

import (
	"iter"
	"log/slog"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	slotTombstone
)

type slot[K comparable, V any] struct {
	state slotState
	key   K
	value V
}

// Dictionary is an open-addressed hash table with linear probing and
// tombstone deletion. The zero value is not usable; create one with New,
// NewWithOptions or NewString.
//
// A Dictionary is not safe for concurrent use.
type Dictionary[K comparable, V any] struct {
	slots  []slot[K, V]
	count  int // live slots
	used   int // live and tombstone slots
	hasher Hasher[K]
	opts   Options
}

// New creates an empty dictionary with DefaultOptions.
func New[K comparable, V any](hasher Hasher[K]) *Dictionary[K, V] {
	d, _ := NewWithOptions[K, V](hasher, DefaultOptions)
	return d
}

// NewWithOptions creates an empty dictionary with the given table geometry.
func NewWithOptions[K comparable, V any](hasher Hasher[K], opts Options) (*Dictionary[K, V], error) {
	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}
	return &Dictionary[K, V]{
		slots:  make([]slot[K, V], opts.InitialCapacity),
		hasher: hasher,
		opts:   opts,
	}, nil
}

// NewString creates an empty string-keyed dictionary hashed with xxHash.
func NewString[V any]() *Dictionary[string, V] {
	return New[string, V](XXHash[string]{})
}

// Clone returns an independent copy with the same entries and capacity.
// Values are copied by assignment.
func (d *Dictionary[K, V]) Clone() *Dictionary[K, V] {
	c := *d
	c.slots = make([]slot[K, V], len(d.slots))
	copy(c.slots, d.slots)
	return &c
}

// Clear drops every entry and shrinks the table back to its initial capacity.
func (d *Dictionary[K, V]) Clear() {
	d.slots = make([]slot[K, V], d.opts.InitialCapacity)
	d.count = 0
	d.used = 0
}

// Len returns the number of live entries.
func (d *Dictionary[K, V]) Len() int { return d.count }

// Cap returns the number of slots in the table.
func (d *Dictionary[K, V]) Cap() int { return len(d.slots) }

// Stats describes the occupancy of the table.
type Stats struct {
	Live       int
	Tombstones int
	Capacity   int
	LoadFactor float64
}

func (d *Dictionary[K, V]) Stats() Stats {
	return Stats{
		Live:       d.count,
		Tombstones: d.used - d.count,
		Capacity:   len(d.slots),
		LoadFactor: float64(d.count) / float64(len(d.slots)),
	}
}

func (d *Dictionary[K, V]) home(key K) int {
	return int(d.hasher.Hash(key) % uint64(len(d.slots)))
}

// findPosition walks the probe sequence of key and returns the first slot that
// is either empty or live with an equal key. Tombstones are passed over.
func (d *Dictionary[K, V]) findPosition(key K) int {
	n := len(d.slots)
	pos := d.home(key)
	for i := 0; i < n; i++ {
		s := &d.slots[pos]
		switch s.state {
		case slotEmpty:
			return pos
		case slotLive:
			if s.key == key {
				return pos
			}
		}
		pos++
		if pos == n {
			pos = 0
		}
	}
	panic(ErrTableFull)
}

// rehash rebuilds the table with the given capacity, keeping only live
// entries and recounting them.
func (d *Dictionary[K, V]) rehash(capacity int) {
	old := d.slots
	d.slots = make([]slot[K, V], capacity)
	d.count = 0
	d.used = 0
	for i := range old {
		if old[i].state == slotLive {
			d.put(old[i].key, old[i].value)
		}
	}
}

// resize doubles the table until one more live entry fits under the load factor.
func (d *Dictionary[K, V]) resize() {
	from := len(d.slots)
	capacity := from * 2
	for float64(d.count+1)/float64(capacity) >= d.opts.MaxLoadFactor {
		capacity *= 2
	}
	d.rehash(capacity)
	slog.Debug("Resized dictionary",
		slog.Int("from", from),
		slog.Int("to", len(d.slots)),
		slog.Int("live", d.count))
}

func (d *Dictionary[K, V]) purge() {
	tombstones := d.used - d.count
	d.rehash(len(d.slots))
	slog.Debug("Purged dictionary tombstones",
		slog.Int("capacity", len(d.slots)),
		slog.Int("tombstones", tombstones),
		slog.Int("live", d.count))
}

// Insert adds key with value, or overwrites the value if key is present.
func (d *Dictionary[K, V]) Insert(key K, value V) {
	if float64(d.count+1)/float64(len(d.slots)) >= d.opts.MaxLoadFactor {
		d.resize()
	}
	if d.used+1 >= len(d.slots) {
		// Every slot but one is live or a tombstone: writing into the last
		// empty slot would leave probes for absent keys with nowhere to stop.
		d.purge()
	}
	d.put(key, value)
}

func (d *Dictionary[K, V]) put(key K, value V) {
	pos := d.findPosition(key)
	s := &d.slots[pos]
	if s.state == slotLive {
		s.value = value
		return
	}
	if s.state == slotEmpty {
		d.used++
	}
	s.state = slotLive
	s.key = key
	s.value = value
	d.count++
}

// Remove deletes key, leaving a tombstone in its slot. It reports whether
// the key was present.
func (d *Dictionary[K, V]) Remove(key K) bool {
	pos := d.findPosition(key)
	s := &d.slots[pos]
	if s.state != slotLive {
		return false
	}
	var (
		zeroK K
		zeroV V
	)
	s.state = slotTombstone
	s.key = zeroK
	s.value = zeroV
	d.count--
	return true
}

// Contains reports whether key is present.
func (d *Dictionary[K, V]) Contains(key K) bool {
	return d.slots[d.findPosition(key)].state == slotLive
}

// Lookup returns the value stored for key and whether it was present.
func (d *Dictionary[K, V]) Lookup(key K) (V, bool) {
	s := &d.slots[d.findPosition(key)]
	if s.state != slotLive {
		var zero V
		return zero, false
	}
	return s.value, true
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (d *Dictionary[K, V]) Get(key K) (V, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return v, ErrKeyNotFound
	}
	return v, nil
}

// GetOrInsertDefault returns a pointer to the value stored for key,
// inserting the zero value first when key is absent. The pointer is only
// valid until the next mutation of the dictionary.
func (d *Dictionary[K, V]) GetOrInsertDefault(key K) *V {
	pos := d.findPosition(key)
	if d.slots[pos].state != slotLive {
		var zero V
		d.Insert(key, zero)
		pos = d.findPosition(key)
	}
	return &d.slots[pos].value
}

// All iterates over the live entries in bucket order.
func (d *Dictionary[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range d.slots {
			if d.slots[i].state == slotLive && !yield(d.slots[i].key, d.slots[i].value) {
				return
			}
		}
	}
}

func (d *Dictionary[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range d.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (d *Dictionary[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}
