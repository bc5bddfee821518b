// Package config loads the YAML settings file that drives the service
// binary: listen address, dictionary path, and the two search-cap tiers.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jonhyland-go/centipede/pkg/segment"
)

// Service holds the fields under the config file's top-level "service" key.
type Service struct {
	InstanceName string `yaml:"instance_name"`
	ListenAddr   string `yaml:"listen_addr"`
}

// Caps mirrors segment.Caps as a YAML-decodable struct.
type Caps struct {
	MaxInputChars int `yaml:"max_input_chars"`
	MaxTerms      int `yaml:"max_terms"`
	MaxPasses     int `yaml:"max_passes"`
}

// Splitter holds the fields under the config file's top-level "splitter" key.
type Splitter struct {
	DataFile      string  `yaml:"data_file"`
	Default       Caps    `yaml:"default"`
	Exhaustive    Caps    `yaml:"exhaustive"`
	MaxCacheItems int     `yaml:"max_cache_items"`
	CleanupSecs   float64 `yaml:"cleanup_secs"`
}

// Config is the fully decoded settings file.
type Config struct {
	Service  Service  `yaml:"service"`
	Splitter Splitter `yaml:"splitter"`
}

// Default returns the out-of-the-box Config: an instance named "centipede"
// listening on :8080, expecting a dictionary at "dictionary.txt", with the same cap
// tiers segment.DefaultConfig uses.
func Default() Config {
	defaultCaps := segment.DefaultCaps()
	exhaustiveCaps := segment.ExhaustiveCaps()
	return Config{
		Service: Service{
			InstanceName: "centipede",
			ListenAddr:   ":8080",
		},
		Splitter: Splitter{
			DataFile: "dictionary.txt",
			Default: Caps{
				MaxInputChars: defaultCaps.MaxInputChars,
				MaxTerms:      defaultCaps.MaxTerms,
				MaxPasses:     defaultCaps.MaxPasses,
			},
			Exhaustive: Caps{
				MaxInputChars: exhaustiveCaps.MaxInputChars,
				MaxTerms:      exhaustiveCaps.MaxTerms,
				MaxPasses:     exhaustiveCaps.MaxPasses,
			},
			MaxCacheItems: 100000,
			CleanupSecs:   60,
		},
	}
}

// Load reads path and merges it over Default. A missing file is not an
// error: it just yields the defaults, since a freshly checked-out repo
// should run without operators hand-writing a config file first.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SegmentConfig converts the splitter section into a segment.Config, ready
// to hand to segment.NewSplitter.
func (c Config) SegmentConfig() segment.Config {
	return segment.Config{
		Default: segment.Caps{
			MaxInputChars: c.Splitter.Default.MaxInputChars,
			MaxTerms:      c.Splitter.Default.MaxTerms,
			MaxPasses:     c.Splitter.Default.MaxPasses,
		},
		Exhaustive: segment.Caps{
			MaxInputChars: c.Splitter.Exhaustive.MaxInputChars,
			MaxTerms:      c.Splitter.Exhaustive.MaxTerms,
			MaxPasses:     c.Splitter.Exhaustive.MaxPasses,
		},
		MaxCacheItems:   c.Splitter.MaxCacheItems,
		CleanupInterval: time.Duration(c.Splitter.CleanupSecs * float64(time.Second)),
	}
}
