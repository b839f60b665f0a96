package vault

import (
	"errors"
	"time"
)

const (
	SaltLen       = 16
	KeyLen        = 32
	KDFIterations = 480000
	NonceLen      = 24
	Version       = 0x01

	DefaultAccount   = "Default"
	FieldSeparator   = " | "
	DecryptionFailed = "DECRYPTION FAILED"
)

var (
	ErrSetup          = errors.New("vault: setup failed")
	ErrEmptyInput     = errors.New("vault: empty input")
	ErrInvalidAccount = errors.New("vault: invalid account name")
	ErrAuthFailed     = errors.New("vault: decryption failed, likely wrong master password")
)

// Record is a plaintext account/secret pair.
type Record struct {
	Account string
	Secret  string
}

// SealedRecord is one line of the vault file.
type SealedRecord struct {
	Account string
	Token   string
}

// Entry is a listing row. When the record cannot be opened Secret holds
// DecryptionFailed and Err wraps ErrAuthFailed.
type Entry struct {
	Account string
	Secret  string
	Created time.Time
	Err     error
}

// Failed reports whether the entry could not be decrypted.
func (e Entry) Failed() bool { return e.Err != nil }
