package vault

import (
	"errors"
	"fmt"
	"os"

	"github.com/fahmaliyi/pwvault/logger"
)

// SaltStore persists the single salt of a vault as raw bytes.
type SaltStore struct {
	path string
	log  *logger.Logger
}

func NewSaltStore(path string, log *logger.Logger) *SaltStore {
	return &SaltStore{path: path, log: log}
}

func (s *SaltStore) Path() string { return s.path }

// Exists reports whether the salt file is present.
func (s *SaltStore) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat salt file: %w", ErrSetup, err)
	}
}

// GetOrCreate returns the stored salt, creating it on first use. A salt file
// that cannot be read or has the wrong length is an ErrSetup; it is never
// regenerated because that would orphan every sealed record.
func (s *SaltStore) GetOrCreate() ([]byte, error) {
	salt, err := s.read()
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	salt, err = random(SaltLen)
	if err != nil {
		return nil, fmt.Errorf("%w: generate salt: %w", ErrSetup, err)
	}

	err = createFile(s.path, salt, 0600)
	switch {
	case errors.Is(err, os.ErrExist):
		return s.read()
	case errors.Is(err, errDirSync):
		s.log.Warn().Err(err).Str("path", s.path).Msg("salt written, directory not synced")
	case err != nil:
		return nil, fmt.Errorf("%w: write salt: %w", ErrSetup, err)
	}

	s.log.Info().Str("path", s.path).Msg("new salt created")
	return salt, nil
}

func (s *SaltStore) read() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read salt: %w", ErrSetup, err)
	}
	if len(b) != SaltLen {
		return nil, fmt.Errorf("%w: salt file %s is corrupt: %d bytes, want %d", ErrSetup, s.path, len(b), SaltLen)
	}
	return b, nil
}
