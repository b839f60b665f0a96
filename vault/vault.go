package vault

import (
	"fmt"

	"github.com/fahmaliyi/pwvault/config"
	"github.com/fahmaliyi/pwvault/logger"
)

// Vault ties the salt file and the record file of one vault together.
// It holds no key material; Unlock hands out a Session for that.
type Vault struct {
	salts   *SaltStore
	records *RecordStore
	log     *logger.Logger
}

func NewVault(paths config.Paths, log *logger.Logger) *Vault {
	if log == nil {
		log = logger.Nop()
	}
	return &Vault{
		salts:   NewSaltStore(paths.SaltFile, log),
		records: NewRecordStore(paths.VaultFile, log),
		log:     log,
	}
}

// IsNew reports whether the vault file has not been created yet, i.e. the
// caller should run first-time setup.
func (v *Vault) IsNew() (bool, error) {
	ok, err := v.records.Exists()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Unlock derives the session key from master. On first use it creates the
// salt and an empty vault file. A vault file holding records without a salt
// is refused instead of minting a fresh salt.
func (v *Vault) Unlock(master string) (*Session, error) {
	if master == "" {
		return nil, fmt.Errorf("%w: master password", ErrEmptyInput)
	}

	hasSalt, err := v.salts.Exists()
	if err != nil {
		return nil, err
	}
	if !hasSalt {
		hasData, err := v.records.HasData()
		if err != nil {
			return nil, err
		}
		if hasData {
			return nil, fmt.Errorf("%w: %s holds records but salt file %s is missing",
				ErrSetup, v.records.Path(), v.salts.Path())
		}
	}

	salt, err := v.salts.GetOrCreate()
	if err != nil {
		return nil, err
	}
	if err := v.records.Init(); err != nil {
		return nil, err
	}

	key, err := DeriveKey(master, salt)
	if err != nil {
		return nil, err
	}

	s := newSession(key, v.records, v.log)
	s.log.Info().Msg("vault unlocked")
	return s, nil
}

// Zero wipes a byte slice, e.g. a master password read from the terminal.
func Zero(b []byte) {
	clear(b)
}
