//go:build ebiten

package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// window adapts the shared grid to the ebiten.Game interface.
type window struct {
	grid    *model.Grid
	events  Events
	aborter Aborter
	opts    Options

	w, h  int
	img   *ebiten.Image
	buf   []byte
	dirty bool
}

// Run opens a window and blocks until the worker reports done. Closing the
// window aborts the worker; the window stays up until Done is closed so the
// grid is not released while the worker may still touch it.
func Run(grid *model.Grid, events Events, aborter Aborter, opts Options) error {
	opts = opts.withDefaults()
	w, h := grid.Dimensions()

	win := &window{
		grid:    grid,
		events:  events,
		aborter: aborter,
		opts:    opts,
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		dirty:   true,
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w*opts.Scale, h*opts.Scale)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "gui: run")
	}
	return nil
}

// Update handles input and drains worker notifications.
func (g *window) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.aborter.Abort()
	}

	select {
	case <-g.events.Done():
		return ebiten.Termination
	case <-g.events.Redraw():
		g.dirty = true
	default:
	}
	return nil
}

// Draw uploads the grid when a new generation arrived and scales it onto screen.
func (g *window) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.grid.Read(func(v model.View) {
			fillBinaryRGBA(g.buf, v, g.opts.On, g.opts.Off)
		})
		g.img.WritePixels(g.buf)
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opts.Scale), float64(g.opts.Scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w * g.opts.Scale, g.h * g.opts.Scale
}

// Supported reports whether this build can open a window.
const Supported = true
