package life

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Seeding patterns understood by Config.Pattern.
const (
	PatternParity = "parity"
	PatternEmpty  = "empty"
	PatternRandom = "random"
)

var (
	// ErrInvalidDimensions is returned when a width or height is below one.
	ErrInvalidDimensions = errors.New("life: invalid dimensions")
	// ErrUnknownPattern is returned for a seeding pattern that does not exist.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)

// Config controls the grid dimensions and its initial contents.
type Config struct {
	Width  int
	Height int

	Pattern string
	Seed    int64
}

// DefaultConfig returns the standard 64x64 parity-seeded configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Pattern: PatternParity, Seed: 1}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Values that fail to parse leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// MaxCells caps Width*Height.
const MaxCells = 1 << 26

// Validate reports whether the configuration can build a grid.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Width > math.MaxInt/c.Height || c.Width*c.Height > MaxCells {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, c.Width, c.Height, MaxCells)
	}
	switch c.Pattern {
	case PatternParity, PatternEmpty, PatternRandom:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPattern, c.Pattern)
	}
}
