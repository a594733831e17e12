package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
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

// Palette is the pair of colors used for live and dead cells.
type Palette struct {
	Alive color.Color
	Dead  color.Color
}

// DefaultPalette mirrors the text glyphs: dark squares alive, light dead.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 24, G: 24, B: 28, A: 255},
		Dead:  color.RGBA{R: 236, G: 236, B: 240, A: 255},
	}
}
