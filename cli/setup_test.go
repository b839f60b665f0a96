package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fahmaliyi/pwvault/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFirstTimeSetup_RepromptsUntilConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock.NewMockPrompter(ctrl)
	var out bytes.Buffer

	gomock.InOrder(
		p.EXPECT().ReadSecret("Create Master Password: ").Return("", nil),
		p.EXPECT().ReadSecret("Create Master Password: ").Return("hunter2", nil),
		p.EXPECT().ReadSecret("Confirm Master Password: ").Return("hunter3", nil),
		p.EXPECT().ReadSecret("Create Master Password: ").Return("hunter2", nil),
		p.EXPECT().ReadSecret("Confirm Master Password: ").Return("hunter2", nil),
	)

	got, err := FirstTimeSetup(p, &out)

	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
	assert.True(t, strings.HasPrefix(out.String(), welcome), "banner is printed once, followed by a blank line")
	assert.NotContains(t, out.String(), welcome+"\n")
	assert.Contains(t, out.String(), "Password cannot be empty")
	assert.Contains(t, out.String(), "Passwords do not match")
	assert.Contains(t, out.String(), "Master password set successfully!")
}

func TestFirstTimeSetup_AbortOnEOF(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock.NewMockPrompter(ctrl)

	p.EXPECT().ReadSecret(gomock.Any()).Return("", io.EOF)

	_, err := FirstTimeSetup(p, io.Discard)

	assert.ErrorIs(t, err, io.EOF)
}
