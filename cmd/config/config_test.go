package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	def := Default()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("hasher", def.Hasher, "")
	flags.Int("initial-capacity", def.InitialCapacity, "")
	flags.Float64("max-load-factor", def.MaxLoadFactor, "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"hasher: fnv1a\ninitial-capacity: 64\nmax-load-factor: 0.5\n"), 0644))

	c, err := Load(path, newFlags())
	require.NoError(t, err)
	assert.Equal(t, Config{Hasher: HasherFNV1a, InitialCapacity: 64, MaxLoadFactor: 0.5}, c)

	t.Setenv("HASHDICT_INITIAL_CAPACITY", "256")
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--hasher", "xxh3"}))

	c, err = Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, Config{Hasher: HasherXXH3, InitialCapacity: 256, MaxLoadFactor: 0.5}, c)
}

func TestLoadRejectsUnknownHasher(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--hasher", "md5"}))

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), flags)
	assert.Error(t, err)

	_, err = Load("", flags)
	assert.ErrorContains(t, err, "unknown hasher")
}

func TestDictionaryRoundTrip(t *testing.T) {
	c := Config{Hasher: HasherXXH3, InitialCapacity: 8, MaxLoadFactor: 0.75}
	d, err := c.NewDictionary()
	require.NoError(t, err)
	assert.Equal(t, 8, d.Cap())

	d.Insert("hello", 3)
	path := filepath.Join(t.TempDir(), "words.dict")
	require.NoError(t, SaveDictionary(path, d))

	loaded, err := c.LoadDictionary(path)
	require.NoError(t, err)
	v, err := loaded.Get("hello")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = Config{Hasher: HasherXXHash, InitialCapacity: 0, MaxLoadFactor: 0.75}.NewDictionary()
	assert.Error(t, err)
}
