// Package config resolves the dictionary settings of the hashdict command
// from flags, HASHDICT_* environment variables and an optional YAML file.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/theflywheel/hashdict"
)

const (
	HasherXXHash = "xxhash"
	HasherXXH3   = "xxh3"
	HasherFNV1a  = "fnv1a"

	envPrefix  = "HASHDICT"
	configName = "hashdict"
)

// Codec is the value encoding of every dictionary file the command handles.
var Codec hashdict.ValueCodec[int64] = hashdict.Int64Codec{}

type Config struct {
	Hasher          string  `mapstructure:"hasher" yaml:"hasher"`
	InitialCapacity int     `mapstructure:"initial-capacity" yaml:"initial-capacity"`
	MaxLoadFactor   float64 `mapstructure:"max-load-factor" yaml:"max-load-factor"`
}

func Default() Config {
	return Config{
		Hasher:          HasherXXHash,
		InitialCapacity: hashdict.DefaultOptions.InitialCapacity,
		MaxLoadFactor:   hashdict.DefaultOptions.MaxLoadFactor,
	}
}

// Current is resolved by the root command before any subcommand runs.
var Current = Default()

// Load builds a Config. Explicit flags win over the environment, which wins
// over the config file. Without configFile, ./hashdict.yaml is read when
// present.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault("hasher", def.Hasher)
	v.SetDefault("initial-capacity", def.InitialCapacity)
	v.SetDefault("max-load-factor", def.MaxLoadFactor)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, errors.Wrap(err, "failed to bind flags")
		}
	}

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, errors.Wrap(err, "failed to read config file")
			}
		}
	}

	c := Config{}
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to load config")
	}
	if _, err := c.NewHasher(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) NewHasher() (hashdict.Hasher[string], error) {
	switch strings.ToLower(c.Hasher) {
	case HasherXXHash:
		return hashdict.XXHash[string]{}, nil
	case HasherXXH3:
		return hashdict.XXH3[string]{}, nil
	case HasherFNV1a:
		return hashdict.FNV1a[string]{}, nil
	}
	return nil, errors.Errorf("unknown hasher %q, expected one of %s, %s, %s",
		c.Hasher, HasherXXHash, HasherXXH3, HasherFNV1a)
}

// NewDictionary creates an empty word-count dictionary with the configured
// hasher and table geometry.
func (c Config) NewDictionary() (*hashdict.Dictionary[string, int64], error) {
	h, err := c.NewHasher()
	if err != nil {
		return nil, err
	}
	return hashdict.NewWithOptions[string, int64](h, hashdict.Options{
		InitialCapacity: c.InitialCapacity,
		MaxLoadFactor:   c.MaxLoadFactor,
	})
}

// LoadDictionary reads the dictionary file at path.
func (c Config) LoadDictionary(path string) (*hashdict.Dictionary[string, int64], error) {
	d, err := c.NewDictionary()
	if err != nil {
		return nil, err
	}
	if err := hashdict.Load(path, d, Codec); err != nil {
		return nil, err
	}
	return d, nil
}

// SaveDictionary writes d to path.
func SaveDictionary(path string, d *hashdict.Dictionary[string, int64]) error {
	return hashdict.Save(path, d, Codec)
}
