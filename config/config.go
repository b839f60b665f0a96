// Package config resolves where pwvault keeps its files.
//
// Only file locations are configurable. Values are assembled from three
// sources, later sources overriding non-empty fields of earlier ones:
//  1. built-in defaults (~/.pwvault/{salt.bin,passwords.txt,pwvault.log})
//  2. environment variables (PWVAULT_HOME, PWVAULT_SALT_FILE, ...)
//  3. command-line flags
//
// Relative file names are resolved inside Home.
package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultDirName   = ".pwvault"
	DefaultSaltFile  = "salt.bin"
	DefaultVaultFile = "passwords.txt"
	DefaultLogFile   = "pwvault.log"
)

// Config is the top-level configuration container.
type Config struct {
	// Paths holds every on-disk location used by the vault.
	Paths Paths `envPrefix:"PWVAULT_"`

	// Debug lowers the log level to debug. Flag only.
	Debug bool
}

// Paths holds the file locations of a single vault.
type Paths struct {
	// Home is the vault directory.
	// Env: PWVAULT_HOME
	Home string `env:"HOME"`

	// SaltFile holds the 16 raw salt bytes.
	// Env: PWVAULT_SALT_FILE
	SaltFile string `env:"SALT_FILE"`

	// VaultFile holds one sealed record per line.
	// Env: PWVAULT_VAULT_FILE
	VaultFile string `env:"VAULT_FILE"`

	// LogFile receives the JSON log.
	// Env: PWVAULT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Load merges defaults, environment and the given flag values, resolves
// relative paths and validates the result.
func Load(flags Config) (*Config, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		build()
}

func defaults() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &Config{
		Paths: Paths{
			Home:      filepath.Join(home, DefaultDirName),
			SaltFile:  DefaultSaltFile,
			VaultFile: DefaultVaultFile,
			LogFile:   DefaultLogFile,
		},
	}, nil
}

func (p *Paths) resolve() {
	p.Home = filepath.Clean(p.Home)
	p.SaltFile = resolvePath(p.Home, p.SaltFile)
	p.VaultFile = resolvePath(p.Home, p.VaultFile)
	p.LogFile = resolvePath(p.Home, p.LogFile)
}

func resolvePath(home, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(home, name)
}
