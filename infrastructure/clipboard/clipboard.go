// ABOUTME: System clipboard access for copying the current markdown document
// ABOUTME: Wraps atotto/clipboard and reports failures as ClipboardUnavailableError

package clipboard

import (
	stderrors "errors"

	"mdpreview-api/core/errors"

	atotto "github.com/atotto/clipboard"
)

var errNoClipboard = stderrors.New("no clipboard utility available")

// SystemClipboard implements interfaces.Clipboard on the OS clipboard
type SystemClipboard struct {
	unsupported bool
	write       func(string) error
}

// NewSystemClipboard returns a clipboard backed by the platform utility
// (pbcopy, xclip, xsel, wl-copy or the Windows API)
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		unsupported: atotto.Unsupported,
		write:       atotto.WriteAll,
	}
}

// WriteAll copies text to the clipboard
func (c *SystemClipboard) WriteAll(text string) error {
	if c.unsupported {
		return &errors.ClipboardUnavailableError{Err: errNoClipboard}
	}
	if err := c.write(text); err != nil {
		return &errors.ClipboardUnavailableError{Err: err}
	}
	return nil
}
