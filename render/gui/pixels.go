package gui

import (
	"image/color"

	"github.com/sheikhrachel/go-life/model"
)

// fillBinaryRGBA converts the board into RGBA pixels in buf, one pixel per cell.
func fillBinaryRGBA(buf []byte, b model.Board, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()

	width, height := b.Dimensions()
	for y := range height {
		for x := range width {
			base := (y*width + x) * 4
			if b.Alive(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
