package life

// Cell is the state of one grid position. The values are chosen so that
// summing cells counts live ones.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

const (
	deadGlyph  = '◻'
	aliveGlyph = '◼'
)

// Glyph returns the character used for the cell in text snapshots.
func (c Cell) Glyph() rune {
	if c == Dead {
		return deadGlyph
	}
	return aliveGlyph
}

func (c Cell) String() string { return string(c.Glyph()) }

// next applies the transition table. Branch order matters: the Alive cases
// are checked before the Dead birth case and anything unmatched keeps its state.
func next(c Cell, neighbors int) Cell {
	switch {
	case c == Alive && neighbors < 2:
		return Dead
	case c == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case c == Alive && neighbors > 3:
		return Dead
	case c == Dead && neighbors == 3:
		return Alive
	default:
		return c
	}
}
