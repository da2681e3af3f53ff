//go:build !ebiten

package gui

import "github.com/sheikhrachel/go-life/model"

// Run reports that this build has no window support.
func Run(*model.Grid, Events, Aborter, Options) error {
	return ErrUnsupported
}

// Supported reports whether this build can open a window.
const Supported = false
