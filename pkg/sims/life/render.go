package life

import "strings"

// Render returns a text snapshot: one glyph per cell and a newline after
// every row.
func (u *Universe) Render() string { return u.String() }

func (u *Universe) String() string {
	var b strings.Builder
	b.Grow(u.h * (u.w*len(string(aliveGlyph)) + 1))
	for row := 0; row < u.h; row++ {
		for _, c := range u.cur[row*u.w : (row+1)*u.w] {
			b.WriteRune(c.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
