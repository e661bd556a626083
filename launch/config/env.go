package config

import (
	"github.com/caarlos0/env/v11"
	"golang.org/x/xerrors"
)

// ParseEnv overrides el by the STV_* environment variables. The unset
// variables keep the values of el.
func ParseEnv(el *Election) error {
	if err := env.Parse(el); err != nil {
		return xerrors.Errorf("failed to parse env: %w", err)
	}

	return nil
}
