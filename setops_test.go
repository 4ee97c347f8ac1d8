package hashdict_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theflywheel/hashdict"
)

func newWords(pairs map[string]int) *hashdict.Dictionary[string, int] {
	d := hashdict.NewString[int]()
	for k, v := range pairs {
		d.Insert(k, v)
	}
	return d
}

func TestIntersectionWithEmpty(t *testing.T) {
	d := newWords(map[string]int{"hello": 1, "world": 2})
	empty := hashdict.NewString[int]()

	assert.Equal(t, 0, d.Intersection(empty).Len())
	assert.Equal(t, 0, empty.Intersection(d).Len())
}

func TestIntersectionWithSelf(t *testing.T) {
	d := newWords(map[string]int{"hello": 1, "world": 2})
	for i := 0; i < 100; i++ {
		d.Insert(fmt.Sprint(i), i)
	}

	result := d.Intersection(d)
	assert.True(t, hashdict.Equal(result, d))
	assert.Equal(t, d.Len(), result.Len())
}

func TestIntersectionTakesReceiverValues(t *testing.T) {
	a := newWords(map[string]int{"hello": 1, "world": 2, "only-a": 3})
	b := newWords(map[string]int{"hello": 10, "world": 2, "only-b": 4})

	ab := a.Intersection(b)
	ba := b.Intersection(a)

	assert.Equal(t, 2, ab.Len())
	assert.Equal(t, 2, ba.Len())
	for _, k := range []string{"hello", "world"} {
		assert.True(t, ab.Contains(k))
		assert.True(t, ba.Contains(k))
	}
	assert.False(t, ab.Contains("only-a"))
	assert.False(t, ab.Contains("only-b"))

	v, _ := ab.Lookup("hello")
	assert.Equal(t, 1, v)
	v, _ = ba.Lookup("hello")
	assert.Equal(t, 10, v)

	assert.False(t, hashdict.Equal(ab, ba))
}

func TestIntersectionAcrossHashers(t *testing.T) {
	a := hashdict.New[string, int](hashdict.XXH3[string]{})
	b := hashdict.New[string, int](hashdict.FNV1a[string]{})
	for i := 0; i < 50; i++ {
		a.Insert(fmt.Sprint(i), i)
	}
	for i := 25; i < 75; i++ {
		b.Insert(fmt.Sprint(i), -i)
	}

	result := a.Intersection(b)
	assert.Equal(t, 25, result.Len())
	for i := 25; i < 50; i++ {
		v, err := result.Get(fmt.Sprint(i))
		assert.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestEqual(t *testing.T) {
	a := newWords(map[string]int{"hello": 1, "world": 2})

	// Same pairs, different insertion order, hasher and capacity
	b, err := hashdict.NewWithOptions[string, int](hashdict.FNV1a[string]{},
		hashdict.Options{InitialCapacity: 256, MaxLoadFactor: 0.5})
	assert.NoError(t, err)
	b.Insert("world", 2)
	b.Insert("hello", 1)
	assert.True(t, hashdict.Equal(a, b))
	assert.True(t, hashdict.Equal(b, a))

	b.Insert("hello", 3)
	assert.False(t, hashdict.Equal(a, b))

	b.Insert("hello", 1)
	b.Insert("extra", 0)
	assert.False(t, hashdict.Equal(a, b))

	// Same size, different keys
	b.Remove("extra")
	b.Remove("world")
	b.Insert("other", 2)
	assert.False(t, hashdict.Equal(a, b))
}

func TestEqualFunc(t *testing.T) {
	a := hashdict.NewString[float64]()
	b := hashdict.NewString[float64]()
	a.Insert("pi", math.Pi)
	b.Insert("pi", 3.14159)

	assert.False(t, hashdict.Equal(a, b))
	assert.True(t, hashdict.EqualFunc(a, b, func(x, y float64) bool {
		return math.Abs(x-y) < 1e-3
	}))
}

func TestCountWithMinValue(t *testing.T) {
	d := newWords(map[string]int{"hello": 3, "world": 2, "test": 1})

	assert.Equal(t, 2, hashdict.CountWithMinValue(d, 2))
	assert.Equal(t, 1, hashdict.CountWithMinValue(d, 3))
	assert.Equal(t, 3, hashdict.CountWithMinValue(d, 0))
	assert.Equal(t, 0, hashdict.CountWithMinValue(d, 4))

	d.Remove("hello")
	assert.Equal(t, 0, hashdict.CountWithMinValue(d, 3))

	names := hashdict.NewString[string]()
	names.Insert("x", "apple")
	names.Insert("y", "pear")
	assert.Equal(t, 1, hashdict.CountWithMinValue(names, "b"))
}
