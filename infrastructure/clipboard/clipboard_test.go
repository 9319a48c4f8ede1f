package clipboard

import (
	"errors"
	"testing"

	coreerrors "mdpreview-api/core/errors"
	"mdpreview-api/core/interfaces"

	"github.com/stretchr/testify/assert"
)

func TestSystemClipboard_ImplementsClipboard(t *testing.T) {
	var _ interfaces.Clipboard = NewSystemClipboard()
}

func TestSystemClipboard_WriteAll(t *testing.T) {
	var copied string
	c := &SystemClipboard{write: func(s string) error {
		copied = s
		return nil
	}}

	assert.NoError(t, c.WriteAll("# Title"))
	assert.Equal(t, "# Title", copied)
}

func TestSystemClipboard_Failures(t *testing.T) {
	failing := &SystemClipboard{write: func(string) error { return errors.New("exit status 1") }}
	err := failing.WriteAll("x")
	assert.True(t, coreerrors.IsClipboardUnavailable(err))
	assert.Contains(t, err.Error(), "exit status 1")

	called := false
	unsupported := &SystemClipboard{unsupported: true, write: func(string) error {
		called = true
		return nil
	}}
	err = unsupported.WriteAll("x")
	assert.True(t, coreerrors.IsClipboardUnavailable(err))
	assert.False(t, called)
}
