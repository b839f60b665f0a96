package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countIn(s, set string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(set, r) {
			n++
		}
	}
	return n
}

func TestGenerate_AllClasses(t *testing.T) {
	for i := 0; i < 200; i++ {
		pw, err := Generate(12, true, true)
		require.NoError(t, err)

		assert.Len(t, pw, 12)
		assert.GreaterOrEqual(t, countIn(pw, Letters), 1, pw)
		assert.GreaterOrEqual(t, countIn(pw, Digits), 1, pw)
		assert.GreaterOrEqual(t, countIn(pw, Punctuation), 1, pw)
		assert.Equal(t, 12, countIn(pw, Letters+Digits+Punctuation), pw)
	}
}

func TestGenerate_LettersOnly(t *testing.T) {
	for i := 0; i < 200; i++ {
		pw, err := Generate(16, false, false)
		require.NoError(t, err)

		assert.Len(t, pw, 16)
		assert.Equal(t, 16, countIn(pw, Letters), pw)
	}
}

func TestGenerate_DigitsWithoutSpecials(t *testing.T) {
	for i := 0; i < 200; i++ {
		pw, err := Generate(MinLength, true, false)
		require.NoError(t, err)

		assert.Len(t, pw, MinLength)
		assert.GreaterOrEqual(t, countIn(pw, Digits), 1, pw)
		assert.GreaterOrEqual(t, countIn(pw, Letters), 1, pw)
		assert.Zero(t, countIn(pw, Punctuation), pw)
	}
}

func TestGenerate_RejectsShortLength(t *testing.T) {
	for _, n := range []int{-1, 0, 3} {
		_, err := Generate(n, true, true)
		assert.ErrorIs(t, err, ErrTooShort, "length %d", n)
	}
}

type countingReader struct{ n int }

func (c *countingReader) Read(p []byte) (int, error) {
	c.n++
	return 0, errors.New("should not be called")
}

func TestGenerate_TooShortDrawsNoRandomness(t *testing.T) {
	r := &countingReader{}

	_, err := generate(r, 3, true, true)

	assert.ErrorIs(t, err, ErrTooShort)
	assert.Zero(t, r.n)
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_PropagatesRandomFailure(t *testing.T) {
	_, err := generate(failingReader{}, 12, true, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy exhausted")
}

func TestGenerate_GuaranteedCharsAreNotAnchored(t *testing.T) {
	// Without the shuffle the first character would always be a letter.
	nonLetterFirst := false
	for i := 0; i < 500 && !nonLetterFirst; i++ {
		pw, err := Generate(MinLength, true, true)
		require.NoError(t, err)
		nonLetterFirst = !strings.ContainsRune(Letters, rune(pw[0]))
	}
	assert.True(t, nonLetterFirst)
}

func TestGenerate_Distinct(t *testing.T) {
	a, err := Generate(32, true, true)
	require.NoError(t, err)
	b, err := Generate(32, true, true)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
