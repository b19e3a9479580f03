// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package app

import "github.com/atotto/clipboard"

// SystemClipboard reads the OS clipboard.
type SystemClipboard struct{}

// ReadText returns the current clipboard text.
func (SystemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}
