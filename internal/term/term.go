// Package term hosts a simulation in a terminal. Every frame it draws the
// sim's text snapshot and, paced by the configured tick rate, advances it by
// one generation.
package term

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"torus-life/pkg/core"
)

const frameInterval = 16 * time.Millisecond

// ErrNotRenderable is returned for sims without a text snapshot.
var ErrNotRenderable = errors.New("term: sim has no text rendering")

type textSim interface {
	core.Sim
	core.TextRenderer
}

// Host owns a sim and the screen it is drawn on. All sim access happens on
// the goroutine that calls Run.
type Host struct {
	screen tcell.Screen
	sim    textSim
	step   *core.FixedStep
	seed   int64

	paused   bool
	tickOnce bool

	cellStyle   tcell.Style
	statusStyle tcell.Style
}

// New builds a host drawing sim on screen at tps generations per second. The
// screen must already be initialised.
func New(screen tcell.Screen, sim core.Sim, tps int, seed int64) (*Host, error) {
	ts, ok := sim.(textSim)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRenderable, sim.Name())
	}
	return &Host{
		screen:      screen,
		sim:         ts,
		step:        core.NewFixedStep(tps),
		seed:        seed,
		cellStyle:   tcell.StyleDefault,
		statusStyle: tcell.StyleDefault.Reverse(true),
	}, nil
}

// Paused reports whether automatic stepping is suspended.
func (h *Host) Paused() bool { return h.paused }

// Draw paints the current generation followed by a status line.
func (h *Host) Draw() {
	h.screen.Clear()
	for y, line := range strings.Split(strings.TrimSuffix(h.sim.Render(), "\n"), "\n") {
		x := 0
		for _, r := range line {
			h.screen.SetContent(x, y, r, nil, h.cellStyle)
			x++
		}
	}
	for x, r := range []rune(h.status()) {
		h.screen.SetContent(x, h.sim.Size().H, r, nil, h.statusStyle)
	}
	h.screen.Show()
}

func (h *Host) status() string {
	var b strings.Builder
	b.WriteString(" " + h.sim.Name())
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for _, key := range []string{"generation", "population"} {
			if p, ok := snap.Lookup(key); ok {
				fmt.Fprintf(&b, "  %s %s", strings.ToLower(p.Label), p.Value)
			}
		}
	}
	if h.paused {
		b.WriteString("  paused")
	} else {
		b.WriteString("  running")
	}
	b.WriteString("  [space] pause [n] step [r] reset [q] quit ")
	return b.String()
}

// HandleEvent applies a key press and reports whether the host should quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				h.paused = !h.paused
				if !h.paused {
					h.step.Reset()
				}
			case 'n':
				h.tickOnce = true
			case 'r':
				h.sim.Reset(h.seed)
				h.tickOnce = false
			}
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

// Frame advances the sim if a tick is due and redraws it.
func (h *Host) Frame() {
	if h.tickOnce || (!h.paused && h.step.ShouldStep()) {
		h.sim.Step()
		h.tickOnce = false
	}
	h.Draw()
}

// Run drives frames until the user quits or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}
