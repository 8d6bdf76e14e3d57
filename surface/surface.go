// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"io"

	"github.com/gogpu/statsring"
)

// Target is an output surface: a statsring.Surface whose frame can be
// encoded once drawing is done.
//
// Targets are NOT thread-safe. Each target should be drawn from the
// goroutine that owns the View.
//
// Example usage:
//
//	t, err := surface.New("png", surface.Options{Width: 400, Height: 400})
//	if err != nil {
//	    return err
//	}
//	defer t.Close()
//
//	view.Draw(t)
//	err = t.Encode(w)
type Target interface {
	statsring.Surface

	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Clear discards the current frame and fills it with the background.
	Clear()

	// Encode writes the current frame to w.
	Encode(w io.Writer) error

	// Close releases all resources associated with the target.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Snapshotter is an optional interface for targets backed by pixels.
type Snapshotter interface {
	Target

	// Snapshot returns the current frame as an image.
	Snapshot() image.Image
}

// Options configures target creation.
type Options struct {
	// Width and Height are the frame size in pixels.
	Width, Height int

	// Background fills the frame on creation and on Clear.
	// The zero value is transparent.
	Background statsring.Color
}
