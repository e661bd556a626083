package config

import (
	"os"
	"path/filepath"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// LoadYAML overrides el by the keys in b; the missing keys keep the values of
// el.
func LoadYAML(b []byte, el *Election) error {
	if err := yaml.Unmarshal(b, el); err != nil {
		return xerrors.Errorf("failed to parse yaml config: %w", err)
	}

	return nil
}

func LoadYAMLFile(f string, el *Election) error {
	b, err := os.ReadFile(filepath.Clean(f))
	if err != nil {
		return xerrors.Errorf("failed to read config file: %w", err)
	}

	return LoadYAML(b, el)
}
