package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.White, color.Black)
	want := []byte{
		255, 255, 255, 255,
		0, 0, 0, 255,
		255, 255, 255, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf=%v, want %v", buf, want)
	}
}

func TestDefaultPaletteFill(t *testing.T) {
	p := DefaultPalette()
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{0, 1}, p.Alive, p.Dead)
	want := []byte{236, 236, 240, 255, 24, 24, 28, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf=%v, want %v", buf, want)
	}
}
