package hashdict

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// The persisted layout is little-endian with 64-bit size fields:
//
//	[entryCount uint64]
//	entryCount times: [keyLength uint64][key bytes][value, codec.Size() bytes]
//
// Only live entries are written.
const sizeFieldLen = 8

// Write encodes the live entries of d to w.
func Write[K ~string, V any](w io.Writer, d *Dictionary[K, V], codec ValueCodec[V]) error {
	var hdr [sizeFieldLen]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(d.Len()))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	value := make([]byte, codec.Size())
	for k, v := range d.All() {
		binary.LittleEndian.PutUint64(hdr[:], uint64(len(k)))
		if _, err := w.Write(hdr[:]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, string(k)); err != nil {
			return err
		}
		codec.Encode(value, v)
		if _, err := w.Write(value); err != nil {
			return err
		}
	}
	return nil
}

type lener interface {
	Len() int
}

// Read clears d and re-inserts every entry decoded from r, so the table
// invariants are rebuilt rather than taken from the input. Duplicate keys
// keep the last value.
func Read[K ~string, V any](r io.Reader, d *Dictionary[K, V], codec ValueCodec[V]) error {
	d.Clear()

	var hdr [sizeFieldLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return errors.Wrapf(ErrCorrupted, "reading entry count: %v", err)
	}
	count := binary.LittleEndian.Uint64(hdr[:])

	value := make([]byte, codec.Size())
	var key []byte
	for i := uint64(0); i < count; i++ {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return errors.Wrapf(ErrCorrupted, "entry %d: reading key length: %v", i, err)
		}
		keyLen := binary.LittleEndian.Uint64(hdr[:])
		if keyLen > math.MaxInt32 {
			return errors.Wrapf(ErrCorrupted, "entry %d: key length %d out of range", i, keyLen)
		}
		if l, ok := r.(lener); ok && keyLen > uint64(l.Len()) {
			return errors.Wrapf(ErrCorrupted, "entry %d: key length %d exceeds remaining %d bytes", i, keyLen, l.Len())
		}

		if uint64(cap(key)) < keyLen {
			key = make([]byte, keyLen)
		}
		key = key[:keyLen]
		if _, err := io.ReadFull(r, key); err != nil {
			return errors.Wrapf(ErrCorrupted, "entry %d: reading key: %v", i, err)
		}
		if _, err := io.ReadFull(r, value); err != nil {
			return errors.Wrapf(ErrCorrupted, "entry %d: reading value: %v", i, err)
		}
		d.Insert(K(key), codec.Decode(value))
	}
	return nil
}

// Save writes d to the file at path, creating or truncating it.
func Save[K ~string, V any](path string, d *Dictionary[K, V], codec ValueCodec[V]) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}

	bw := bufio.NewWriter(f)
	err = Write(bw, d, codec)
	if err == nil {
		err = bw.Flush()
	}
	err = multierr.Append(err, f.Close())
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	slog.Debug("Saved dictionary",
		slog.String("path", path),
		slog.Int("entries", d.Len()))
	return nil
}

// Load replaces the contents of d with the dictionary stored at path. The
// file is mapped read-only for decoding. d is cleared even when the file
// cannot be opened.
func Load[K ~string, V any](path string, d *Dictionary[K, V], codec ValueCodec[V]) (err error) {
	d.Clear()

	f, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, &IOError{Op: "close", Path: path, Err: cerr})
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return &IOError{Op: "stat", Path: path, Err: err}
	}
	if fi.Size() == 0 {
		return errors.Wrapf(ErrCorrupted, "%s is empty", path)
	}

	m, err := mmap.MapRegion(f, -1, mmap.RDONLY, 0, 0)
	if err != nil {
		return &IOError{Op: "mmap", Path: path, Err: err}
	}
	defer func() {
		if uerr := m.Unmap(); uerr != nil {
			err = multierr.Append(err, &IOError{Op: "munmap", Path: path, Err: uerr})
		}
	}()

	if err := Read(bytes.NewReader(m), d, codec); err != nil {
		return errors.WithMessage(err, path)
	}

	slog.Debug("Loaded dictionary",
		slog.String("path", path),
		slog.Int("entries", d.Len()),
		slog.Int("capacity", d.Cap()))
	return nil
}
