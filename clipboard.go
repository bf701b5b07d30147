package touchkit

import "github.com/atotto/clipboard"

// Clipboard receives copied text.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteText copies text to the system clipboard.
func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps the last written text. Useful for hosts without a
// system clipboard and for tests.
type MemoryClipboard struct {
	Text   string
	Writes int
}

// WriteText stores text.
func (c *MemoryClipboard) WriteText(text string) error {
	c.Text = text
	c.Writes++
	return nil
}
