// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides output targets for statsring frames.
//
// A Target is a statsring.Surface that also knows how to encode the frame it
// holds. Formats live in sub-packages and register themselves by name:
//
//   - raster ("png"): anti-aliased pixels through gogpu/gg
//   - svg ("svg"): vector output through ajstarks/svgo
//
// # Usage
//
//	import (
//	    "github.com/gogpu/statsring/surface"
//	    _ "github.com/gogpu/statsring/surface/raster"
//	)
//
//	t, err := surface.New("png", surface.Options{Width: 400, Height: 400})
//	if err != nil {
//	    return err
//	}
//	defer t.Close()
//
//	view.Draw(t)
//	return t.Encode(f)
package surface
