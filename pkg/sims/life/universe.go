package life

import (
	"fmt"

	"torus-life/pkg/core"
)

// Universe is a fixed-size toroidal grid of cells stored in row-major order.
// It has a single owner: Tick, Render and the accessors must not be called
// concurrently.
type Universe struct {
	cfg        Config
	w, h       int
	cur        []Cell
	nxt        []Cell
	generation uint64
}

// New returns the default 64x64 universe seeded with the parity pattern.
func New() *Universe {
	u, err := NewWithConfig(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return u
}

// NewWithConfig returns a universe built from cfg. No universe is returned
// when cfg does not validate.
func NewWithConfig(cfg Config) (*Universe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	total := cfg.Width * cfg.Height
	u := &Universe{
		cfg: cfg,
		w:   cfg.Width,
		h:   cfg.Height,
		cur: make([]Cell, total),
		nxt: make([]Cell, total),
	}
	u.Reset(cfg.Seed)
	return u, nil
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Config returns the configuration the universe was built with.
func (u *Universe) Config() Config { return u.cfg }

// Generation counts the ticks applied since the last reset.
func (u *Universe) Generation() uint64 { return u.generation }

// Cells exposes the current generation. The slice is only valid until the
// next Tick or Reset.
func (u *Universe) Cells() []Cell { return u.cur }

// Get returns the cell at (row, column).
func (u *Universe) Get(row, column int) Cell { return u.cur[u.index(row, column)] }

// Set overwrites the cell at (row, column).
func (u *Universe) Set(row, column int, c Cell) { u.cur[u.index(row, column)] = c }

// Population returns the number of live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		n += int(c)
	}
	return n
}

// Reset reseeds the grid with the configured pattern and zeroes the
// generation counter. Only the random pattern consumes seed; zero selects the
// configured seed.
func (u *Universe) Reset(seed int64) {
	u.generation = 0
	switch u.cfg.Pattern {
	case PatternEmpty:
		clear(u.cur)
	case PatternRandom:
		if seed == 0 {
			seed = u.cfg.Seed
		}
		rng := core.NewRNG(seed)
		for i := range u.cur {
			u.cur[i] = Dead
			if rng.Bool() {
				u.cur[i] = Alive
			}
		}
	default:
		for i := range u.cur {
			u.cur[i] = Dead
			if i%2 == 0 || i%7 == 0 {
				u.cur[i] = Alive
			}
		}
	}
}

func (u *Universe) index(row, column int) int {
	if row < 0 || row >= u.h || column < 0 || column >= u.w {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", row, column, u.w, u.h))
	}
	return row*u.w + column
}

// Normalize maps a shifted coordinate back onto a ring of size bound. Callers
// pass home+delta with delta in {0,1,2}, standing for offsets -1, 0 and +1,
// so the result is (value-1) mod bound with 0 wrapping to bound-1. bound must
// be at least one.
func Normalize(value, bound int) int {
	if bound < 1 {
		panic(fmt.Sprintf("life: normalize against bound %d", bound))
	}
	if value == 0 {
		return (bound - 1) % bound
	}
	return (value - 1) % bound
}

// LiveNeighborCount sums the eight Moore neighbours of (row, column) with
// wraparound on both axes.
func (u *Universe) LiveNeighborCount(row, column int) int {
	count := 0
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if dr == 1 && dc == 1 {
				continue
			}
			r := Normalize(row+dr, u.h)
			c := Normalize(column+dc, u.w)
			count += int(u.cur[r*u.w+c])
		}
	}
	return count
}

// Tick advances the grid by one generation. The next state is written to a
// scratch buffer that becomes current only once every cell is evaluated.
func (u *Universe) Tick() {
	for row := 0; row < u.h; row++ {
		for col := 0; col < u.w; col++ {
			idx := row*u.w + col
			u.nxt[idx] = next(u.cur[idx], u.LiveNeighborCount(row, col))
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.generation++
}
