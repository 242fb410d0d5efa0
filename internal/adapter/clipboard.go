package adapter

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// ClipboardSink receives the generated prompt.
type ClipboardSink interface {
	Write(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// NewSystemClipboard returns a SystemClipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Write copies text to the clipboard.
func (SystemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	return nil
}

// WriterClipboard writes the prompt to an io.Writer instead of the clipboard.
type WriterClipboard struct {
	W io.Writer
}

// Write prints text followed by a newline.
func (c WriterClipboard) Write(text string) error {
	_, err := fmt.Fprintln(c.W, text)
	return err
}
