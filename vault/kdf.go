package vault

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Key is the symmetric key derived from the master password. It only lives
// in memory for the duration of a session.
type Key [KeyLen]byte

// kdfIterations is the work factor used by DeriveKey. Tests lower it.
var kdfIterations = KDFIterations

// DeriveKey runs PBKDF2-HMAC-SHA256 over the master password and salt.
// Same inputs always yield the same key.
func DeriveKey(master string, salt []byte) (Key, error) {
	var k Key
	if master == "" {
		return k, fmt.Errorf("%w: master password", ErrEmptyInput)
	}
	if len(salt) != SaltLen {
		return k, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrSetup, SaltLen, len(salt))
	}

	dk := pbkdf2.Key([]byte(master), salt, kdfIterations, KeyLen, sha256.New)
	copy(k[:], dk)
	clear(dk)
	return k, nil
}

// Encode returns the URL-safe base64 form of the key.
func (k Key) Encode() string {
	return base64.URLEncoding.EncodeToString(k[:])
}

// Wipe zeroes the key in place.
func (k *Key) Wipe() {
	clear(k[:])
}
