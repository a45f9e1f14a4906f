// Package config loads the optional extra-targets file. Test setups
// sometimes leave artifacts outside the standard app layout; the file
// lists additional paths a full reset should also remove.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	KindFile = "file"
	KindDir  = "dir"
)

// ExtraTarget is one additional removal target.
type ExtraTarget struct {
	Path  string `yaml:"path"`
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
}

type Config struct {
	ExtraTargets []ExtraTarget `yaml:"extra_targets"`
}

var (
	errNoTargets    = errors.New("configuration must specify extra_targets")
	errRelativePath = errors.New("extra target path must be absolute")
	errUnknownKind  = errors.New(`extra target kind must be "file" or "dir"`)
)

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateAndDefault(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) validateAndDefault() error {
	if len(c.ExtraTargets) == 0 {
		return errNoTargets
	}

	for i := range c.ExtraTargets {
		t := &c.ExtraTargets[i]

		if !filepath.IsAbs(t.Path) {
			return fmt.Errorf("%w: %q", errRelativePath, t.Path)
		}
		t.Path = filepath.Clean(t.Path)

		switch t.Kind {
		case KindFile, KindDir:
		case "":
			t.Kind = KindFile
		default:
			return fmt.Errorf("%w: %q", errUnknownKind, t.Kind)
		}

		if t.Label == "" {
			t.Label = filepath.Base(t.Path)
		}
	}
	return nil
}
