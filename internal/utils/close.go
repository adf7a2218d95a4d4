package utils

import "io"

// Close closes c and ignores any error.
// Use for best-effort cleanup where the close error cannot be acted on.
func Close(c io.Closer) {
	_ = c.Close()
}
