// Package gui paints the grid in an ebiten window. The window is built only
// with the ebiten build tag; without it Run reports ErrUnsupported.
package gui

import (
	"image/color"

	"github.com/pkg/errors"
)

// ErrUnsupported is returned by Run in builds without the ebiten tag.
var ErrUnsupported = errors.New("gui renderer requires the ebiten build tag")

// Events is the notification side of the worker seen by the window.
type Events interface {
	Redraw() <-chan struct{}
	Done() <-chan struct{}
}

// Aborter stops the simulation when the window closes.
type Aborter interface {
	Abort()
}

// Options tunes the window.
type Options struct {
	Title string
	Scale int
	On    color.Color
	Off   color.Color
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "life"
	}
	if o.Scale <= 0 {
		o.Scale = 10
	}
	if o.On == nil {
		o.On = color.Black
	}
	if o.Off == nil {
		o.Off = color.White
	}
	return o
}
