package hashdict_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/hashdict"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.dict")

	d := hashdict.NewString[int64]()
	d.Insert("hello", 1)
	d.Insert("world", 2)
	require.NoError(t, hashdict.Save(path, d, hashdict.Int64Codec{}))

	loaded := hashdict.NewString[int64]()
	require.NoError(t, hashdict.Load(path, loaded, hashdict.Int64Codec{}))
	assert.True(t, hashdict.Equal(loaded, d))
}

// TestPersistenceLarge persists a table that has grown and carries tombstones
func TestPersistenceLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large.dict")

	d := hashdict.NewString[int32]()
	for i := 0; i < 5000; i++ {
		d.Insert(fmt.Sprintf("key-%d", i), int32(i))
	}
	for i := 0; i < 5000; i += 7 {
		d.Remove(fmt.Sprintf("key-%d", i))
	}
	require.NoError(t, hashdict.Save(path, d, hashdict.Int32Codec{}))

	// Loading replaces whatever the receiver held
	loaded := hashdict.New[string, int32](hashdict.XXH3[string]{})
	loaded.Insert("stale", -1)
	require.NoError(t, hashdict.Load(path, loaded, hashdict.Int32Codec{}))

	assert.False(t, loaded.Contains("stale"))
	assert.Equal(t, d.Len(), loaded.Len())
	assert.True(t, hashdict.Equal(loaded, d))
	assert.Zero(t, loaded.Stats().Tombstones)
}

func TestFileLayout(t *testing.T) {
	d := hashdict.NewString[uint32]()
	d.Insert("abc", 0x01020304)

	var buf bytes.Buffer
	require.NoError(t, hashdict.Write(&buf, d, hashdict.Uint32Codec{}))

	expected := []byte{
		1, 0, 0, 0, 0, 0, 0, 0, // entry count
		3, 0, 0, 0, 0, 0, 0, 0, // key length
		'a', 'b', 'c',
		0x04, 0x03, 0x02, 0x01, // value
	}
	assert.Equal(t, expected, buf.Bytes())
}

func TestEmptyDictionaryLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dict")
	require.NoError(t, hashdict.Save(path, hashdict.NewString[int64](), hashdict.Int64Codec{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 8), data)

	loaded := hashdict.NewString[int64]()
	require.NoError(t, hashdict.Load(path, loaded, hashdict.Int64Codec{}))
	assert.Equal(t, 0, loaded.Len())
}

func TestDuplicateKeysKeepLastValue(t *testing.T) {
	var buf bytes.Buffer
	writeEntry := func(key string, value int64) {
		_ = binary.Write(&buf, binary.LittleEndian, uint64(len(key)))
		buf.WriteString(key)
		_ = binary.Write(&buf, binary.LittleEndian, value)
	}
	_ = binary.Write(&buf, binary.LittleEndian, uint64(3))
	writeEntry("dup", 1)
	writeEntry("other", 5)
	writeEntry("dup", 9)

	d := hashdict.NewString[int64]()
	require.NoError(t, hashdict.Read(&buf, d, hashdict.Int64Codec{}))
	assert.Equal(t, 2, d.Len())
	v, err := d.Get("dup")
	require.NoError(t, err)
	assert.Equal(t, int64(9), v)
}

func TestFloatValues(t *testing.T) {
	d := hashdict.NewString[float64]()
	d.Insert("pi", 3.14159)
	d.Insert("neg", -0.5)

	var buf bytes.Buffer
	require.NoError(t, hashdict.Write(&buf, d, hashdict.Float64Codec{}))

	loaded := hashdict.NewString[float64]()
	require.NoError(t, hashdict.Read(&buf, loaded, hashdict.Float64Codec{}))
	assert.True(t, hashdict.Equal(loaded, d))
}

func TestLoadMissingFile(t *testing.T) {
	d := hashdict.NewString[int64]()
	d.Insert("hello", 1)

	err := hashdict.Load(filepath.Join(t.TempDir(), "missing.dict"), d, hashdict.Int64Codec{})
	require.Error(t, err)
	assert.ErrorIs(t, err, hashdict.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var ioErr *hashdict.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)

	// The receiver is left cleared
	assert.Equal(t, 0, d.Len())
}

func TestSaveUnwritableDestination(t *testing.T) {
	d := hashdict.NewString[int64]()
	d.Insert("hello", 1)

	err := hashdict.Save(filepath.Join(t.TempDir(), "no-such-dir", "out.dict"), d, hashdict.Int64Codec{})
	assert.ErrorIs(t, err, hashdict.ErrIO)
}

func TestLoadCorrupted(t *testing.T) {
	d := hashdict.NewString[int64]()
	d.Insert("hello", 1)
	d.Insert("world", 2)

	var buf bytes.Buffer
	require.NoError(t, hashdict.Write(&buf, d, hashdict.Int64Codec{}))
	full := buf.Bytes()

	for _, test := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short-header", full[:4]},
		{"missing-entries", full[:8]},
		{"short-key", full[:19]},
		{"short-value", full[:len(full)-3]},
		{"huge-key-length", append(append([]byte{}, full[:8]...), 0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0)},
	} {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "corrupted.dict")
			require.NoError(t, os.WriteFile(path, test.data, 0644))

			loaded := hashdict.NewString[int64]()
			err := hashdict.Load(path, loaded, hashdict.Int64Codec{})
			assert.ErrorIs(t, err, hashdict.ErrCorrupted)
			assert.NotErrorIs(t, err, hashdict.ErrIO)
		})
	}
}
