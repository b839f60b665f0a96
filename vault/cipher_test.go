package vault

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := testKey(0x2A)

	for _, pt := range []string{"p@ssw0rd!", "", "пароль with spaces | and pipes\n", strings.Repeat("x", 4096)} {
		token, err := Seal(key, pt)
		require.NoError(t, err)

		got, err := Open(key, token)
		require.NoError(t, err)
		assert.Equal(t, pt, got)
	}
}

func TestOpen_WrongKey(t *testing.T) {
	token, err := Seal(testKey(0x01), "secret")
	require.NoError(t, err)

	_, err = Open(testKey(0x02), token)

	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	key := testKey(0x2A)

	t1, err := Seal(key, "same")
	require.NoError(t, err)
	t2, err := Seal(key, "same")
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)

	raw1, err := tokenEncoding.DecodeString(t1)
	require.NoError(t, err)
	raw2, err := tokenEncoding.DecodeString(t2)
	require.NoError(t, err)
	assert.NotEqual(t, raw1[nonceOffset:headerLen], raw2[nonceOffset:headerLen])

	for _, tok := range []string{t1, t2} {
		got, err := Open(key, tok)
		require.NoError(t, err)
		assert.Equal(t, "same", got)
	}
}

func TestSeal_TokenIsSingleLineWithoutDelimiter(t *testing.T) {
	key := testKey(0x2A)

	for i := 0; i < 50; i++ {
		token, err := Seal(key, "a|b\nc")
		require.NoError(t, err)
		assert.False(t, strings.ContainsAny(token, "|\r\n"), "token %q", token)
	}
}

func TestOpen_RejectsTamperedToken(t *testing.T) {
	key := testKey(0x2A)
	token, err := Seal(key, "secret")
	require.NoError(t, err)
	raw, err := tokenEncoding.DecodeString(token)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(b []byte) []byte
	}{
		{"flipped ciphertext bit", func(b []byte) []byte { b[len(b)-1] ^= 0x01; return b }},
		{"changed timestamp", func(b []byte) []byte { b[tsOffset+7] ^= 0x01; return b }},
		{"changed nonce", func(b []byte) []byte { b[nonceOffset] ^= 0x01; return b }},
		{"unknown version", func(b []byte) []byte { b[0] = 0x02; return b }},
		{"truncated", func(b []byte) []byte { return b[:headerLen+3] }},
		{"header only", func(b []byte) []byte { return b[:headerLen] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := append([]byte(nil), raw...)
			_, err := Open(key, tokenEncoding.EncodeToString(tt.mutate(b)))
			assert.ErrorIs(t, err, ErrAuthFailed)
		})
	}
}

func TestOpen_RejectsMalformedText(t *testing.T) {
	key := testKey(0x2A)

	for _, token := range []string{"", "not a token!!", "gAAAAA", "@@@@"} {
		_, err := Open(key, token)
		assert.ErrorIs(t, err, ErrAuthFailed, "token %q", token)
	}
}

func TestTokenTime_ReturnsSealTime(t *testing.T) {
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	key := testKey(0x2A)
	token, err := Seal(key, "secret")
	require.NoError(t, err)

	got, err := TokenTime(key, token)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(got), "got %v", got)

	_, err = TokenTime(testKey(0x01), token)
	assert.ErrorIs(t, err, ErrAuthFailed)
}
