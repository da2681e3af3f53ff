package render

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/sheikhrachel/go-life/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// Terminal paints the grid as rows of block glyphs.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminal returns a renderer writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Paint renders one frame. The grid's read hold covers only the traversal
// into an in-memory frame; the write to out happens after it is released, so
// a slow writer never stalls the worker.
func (r *Terminal) Paint(grid *model.Grid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var frame bytes.Buffer
	grid.Read(func(v model.View) {
		Display(&frame, v)
	})
	_, err := frame.WriteTo(r.out)
	return err
}

// Clear clears the terminal screen
func (r *Terminal) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := io.WriteString(r.out, ansiClear)
	return err
}

// Display writes b to w, one text row per grid row, followed by a status line.
func Display(w io.Writer, b model.Board) {
	width, height := b.Dimensions()
	population := 0
	for y := range height {
		for x := range width {
			if b.Alive(x, y) {
				population++
				fmt.Fprint(w, gridPosBlock)
			} else {
				fmt.Fprint(w, gridPosEmpty)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Gen: %d | Living: %d | Grid: %dx%d\n", b.Generation(), population, width, height)
}
