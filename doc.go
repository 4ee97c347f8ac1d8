/*
Package hashdict provides a generic dictionary backed by an open-addressed hash table.

Dictionary maps keys of any comparable type to values of any type. Keys are
placed by a pluggable Hasher and collisions are resolved with linear probing.
Removed entries leave tombstones behind so that later keys sharing the same
probe sequence stay reachable.

Basic usage:

	import "github.com/theflywheel/hashdict"

	d := hashdict.NewString[int64]()
	d.Insert("hello", 3)
	d.Insert("world", 2)
	*d.GetOrInsertDefault("test")++

	v, err := d.Get("hello") // 3, nil
	_, err = d.Get("missing") // hashdict.ErrKeyNotFound

	n := hashdict.CountWithMinValue(d, 2) // 2

	// Persist and reload
	if err := hashdict.Save("words.dict", d, hashdict.Int64Codec{}); err != nil {
		log.Fatal(err)
	}
	loaded := hashdict.NewString[int64]()
	if err := hashdict.Load("words.dict", loaded, hashdict.Int64Codec{}); err != nil {
		log.Fatal(err)
	}
	fmt.Println(hashdict.Equal(d, loaded)) // true

Features:

  - Generic keys and values, with xxHash, XXH3, FNV-1a and integer hashers
  - Capacity is a power of two, starting at 16, doubled before any insertion
    that would reach a load factor of 0.75
  - Strict (Get), comma-ok (Lookup) and auto-vivifying (GetOrInsertDefault) access
  - Intersection, equality and a threshold count over values
  - A compact binary file format for string keys and fixed-width values

Implementation Details:

Each slot is empty, live or a tombstone. A probe starts at hash(key) mod
capacity and stops at the first empty slot or the first live slot holding the
key; tombstones are stepped over and are not reused by that walk. Doubling
rehashes only live slots, which drops every tombstone. When tombstones and live
entries would occupy every slot, the table is rebuilt at its current capacity
before the insertion.

The file format is little-endian with 64-bit size fields:

	[entryCount]
	entryCount times: [keyLength][key bytes][value]

Values are written through a ValueCodec, so only types with an explicit
fixed-width encoding can be persisted. Loading re-inserts every entry and
therefore rebuilds the table invariants instead of trusting the file.

A Dictionary is meant to be owned by a single goroutine.
*/
package hashdict
