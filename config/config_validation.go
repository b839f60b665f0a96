package config

import (
	"errors"
	"fmt"
)

// ErrInvalidPaths indicates a missing or conflicting file location.
var ErrInvalidPaths = errors.New("invalid paths configuration")

func (cfg *Config) validate() error {
	p := cfg.Paths
	if p.Home == "" || p.SaltFile == "" || p.VaultFile == "" || p.LogFile == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPaths)
	}

	if p.SaltFile == p.VaultFile {
		return fmt.Errorf("%w: salt and vault files must differ", ErrInvalidPaths)
	}

	return nil
}
