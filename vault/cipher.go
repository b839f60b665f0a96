package vault

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/crypto/chacha20poly1305"
)

// Token layout before base64:
//
//	version (1) | unix seconds (8, big endian) | nonce (24) | ciphertext+tag
//
// The first 33 bytes are authenticated as additional data.
const (
	tsOffset    = 1
	nonceOffset = tsOffset + 8
	headerLen   = nonceOffset + NonceLen
)

var tokenEncoding = base64.URLEncoding

// now is replaced in tests.
var now = time.Now

// random returns n bytes read from crypto/rand.
func random(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	return b, nil
}

// Seal encrypts plaintext under key with a fresh nonce. The token is
// URL-safe base64 and never contains '|' or a newline.
func Seal(key Key, plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return "", fmt.Errorf("create aead: %w", err)
	}

	nonce, err := random(NonceLen)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	header := make([]byte, headerLen)
	header[0] = Version
	binary.BigEndian.PutUint64(header[tsOffset:nonceOffset], uint64(now().Unix()))
	copy(header[nonceOffset:], nonce)

	ct := aead.Seal(nil, nonce, []byte(plaintext), header)
	return tokenEncoding.EncodeToString(append(header, ct...)), nil
}

// Open verifies and decrypts a token produced by Seal. Malformed tokens,
// unknown versions and failed authentication all return ErrAuthFailed.
func Open(key Key, token string) (string, error) {
	pt, _, err := openToken(key, token)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}

// TokenTime opens token and returns the time it was sealed at.
func TokenTime(key Key, token string) (time.Time, error) {
	pt, created, err := openToken(key, token)
	clear(pt)
	return created, err
}

func openToken(key Key, token string) ([]byte, time.Time, error) {
	raw, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return nil, time.Time{}, ErrAuthFailed
	}
	if len(raw) < headerLen+chacha20poly1305.Overhead || raw[0] != Version {
		return nil, time.Time{}, ErrAuthFailed
	}

	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("create aead: %w", err)
	}

	header := raw[:headerLen]
	pt, err := aead.Open(nil, header[nonceOffset:], raw[headerLen:], header)
	if err != nil {
		return nil, time.Time{}, ErrAuthFailed
	}

	created := time.Unix(int64(binary.BigEndian.Uint64(header[tsOffset:nonceOffset])), 0)
	return pt, created, nil
}
