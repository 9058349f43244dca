// Package config assembles the host configuration from built-in defaults, an
// optional YAML file and explicitly set command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"flipview/asset"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	yml "gopkg.in/yaml.v2"
)

// DefaultFile is read when present; its absence is not an error.
const DefaultFile = "flipview.yml"

var ErrInvalid = errors.New("config: invalid")

// Config is the effective host configuration. Field keys double as flag
// names.
type Config struct {
	Headless bool   `koanf:"headless" yaml:"headless"`
	Hz       int    `koanf:"hz" yaml:"hz"`
	Ticks    uint64 `koanf:"ticks" yaml:"ticks"`
	Scale    int    `koanf:"scale" yaml:"scale"`
	Asset    string `koanf:"asset" yaml:"asset"`
	Manifest string `koanf:"manifest" yaml:"manifest"`
	Width    int    `koanf:"width" yaml:"width"`
	Height   int    `koanf:"height" yaml:"height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Hz:     60,
		Scale:  2,
		Width:  asset.DefaultWidth,
		Height: asset.DefaultHeight,
	}
}

// Load layers the configuration. path names the YAML file; a missing file is
// only tolerated when path is DefaultFile. Flags from fs override the file,
// but only those the user actually set.
func Load(path string, fs *flag.FlagSet) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("config: defaults: %w", err)
	}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("config: %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && path == DefaultFile:
		default:
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	if fs != nil {
		set := map[string]interface{}{}
		fs.Visit(func(f *flag.Flag) {
			if !k.Exists(f.Name) {
				return
			}
			if g, ok := f.Value.(flag.Getter); ok {
				set[f.Name] = g.Get()
			}
		})
		if err := k.Load(confmap.Provider(set, "."), nil); err != nil {
			return Config{}, fmt.Errorf("config: flags: %w", err)
		}
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch {
	case c.Hz <= 0:
		return fmt.Errorf("hz %d must be positive: %w", c.Hz, ErrInvalid)
	case c.Scale <= 0:
		return fmt.Errorf("scale %d must be positive: %w", c.Scale, ErrInvalid)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("geometry %dx%d: %w", c.Width, c.Height, ErrInvalid)
	case c.Asset != "" && c.Manifest != "":
		return fmt.Errorf("asset and manifest are exclusive: %w", ErrInvalid)
	}
	return nil
}

// Source returns where the viewer should take its image from.
func (c Config) Source() asset.Source {
	return asset.Source{
		Manifest: c.Manifest,
		Path:     c.Asset,
		Width:    c.Width,
		Height:   c.Height,
	}
}

// Dump writes c as YAML, in the format Load reads.
func Dump(w io.Writer, c Config) error {
	return yml.NewEncoder(w).Encode(c)
}
