package hashdict

import (
	"github.com/pkg/errors"
)

var (
	// ErrKeyNotFound is returned by strict reads of a key that is not present.
	ErrKeyNotFound = errors.New("hashdict: key not found")

	// ErrTableFull is the panic value raised when a probe walks the whole
	// table without finding an empty slot or the key. Resizing before every
	// insertion keeps this unreachable.
	ErrTableFull = errors.New("hashdict: hash table is full")

	// ErrIO is matched by every *IOError.
	ErrIO = errors.New("hashdict: i/o failure")

	// ErrCorrupted is returned when a persisted dictionary is truncated or malformed.
	ErrCorrupted = errors.New("hashdict: corrupted dictionary file")

	ErrInvalidOptions = errors.New("hashdict: invalid options")
)

// IOError records a failed file operation during Save or Load.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "hashdict: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
