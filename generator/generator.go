// Package generator builds random passwords from a CSPRNG.
//
// A password always contains at least one letter, and at least one digit
// and one punctuation character when those classes are enabled. One
// character is drawn from each required class, the rest from the union of
// enabled classes, and the result is shuffled so the guaranteed characters
// do not sit at fixed positions. Every draw, including the shuffle, comes
// from crypto/rand.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	MinLength = 4

	Letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var ErrTooShort = fmt.Errorf("password length must be at least %d", MinLength)

// Generate returns a password of exactly length characters.
func Generate(length int, digits, specials bool) (string, error) {
	return generate(rand.Reader, length, digits, specials)
}

func generate(r io.Reader, length int, digits, specials bool) (string, error) {
	if length < MinLength {
		return "", ErrTooShort
	}

	classes := []string{Letters}
	if digits {
		classes = append(classes, Digits)
	}
	if specials {
		classes = append(classes, Punctuation)
	}

	all := ""
	password := make([]byte, 0, length)
	for _, class := range classes {
		ch, err := pick(r, class)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
		all += class
	}

	for len(password) < length {
		ch, err := pick(r, all)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	if err := shuffle(r, password); err != nil {
		return "", err
	}
	return string(password), nil
}

func pick(r io.Reader, set string) (byte, error) {
	if len(set) == 0 {
		return 0, errors.New("empty character set")
	}
	idx, err := randInt(r, len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

// shuffle is a Fisher-Yates shuffle driven by r.
func shuffle(r io.Reader, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randInt(r, i+1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func randInt(r io.Reader, n int) (int, error) {
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}
