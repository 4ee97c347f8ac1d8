package hashdict

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Options configures the table geometry of a Dictionary.
type Options struct {
	// InitialCapacity is the slot count of a new or cleared table. It is
	// rounded up to the next power of two.
	InitialCapacity int

	// MaxLoadFactor is the live-entry ratio that triggers doubling before an
	// insertion. Must be in (0, 1).
	MaxLoadFactor float64
}

var DefaultOptions = Options{
	InitialCapacity: 16,
	MaxLoadFactor:   0.75,
}

func (o Options) validate() (Options, error) {
	if o.InitialCapacity < 1 {
		return o, errors.Wrapf(ErrInvalidOptions, "initial capacity %d must be positive", o.InitialCapacity)
	}
	if o.MaxLoadFactor <= 0 || o.MaxLoadFactor >= 1 {
		return o, errors.Wrapf(ErrInvalidOptions, "max load factor %v must be in (0, 1)", o.MaxLoadFactor)
	}
	o.InitialCapacity = nextPowerOfTwo(o.InitialCapacity)
	return o, nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
