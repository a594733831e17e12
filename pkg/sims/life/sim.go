package life

import "torus-life/pkg/core"

// Sim adapts a Universe to the core.Sim contract used by the hosts.
type Sim struct {
	*Universe
	view []uint8
}

// NewSim wraps u for a host.
func NewSim(u *Universe) *Sim {
	return &Sim{Universe: u, view: make([]uint8, len(u.cur))}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Step advances the simulation by one generation.
func (s *Sim) Step() { s.Tick() }

// Cells returns the current generation as 0/1 bytes for pixel painters.
func (s *Sim) Cells() []uint8 {
	for i, c := range s.cur {
		s.view[i] = uint8(c)
	}
	return s.view
}

// Parameters describes the grid for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(s.w)),
				core.IntParam("h", "Height", int64(s.h)),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.StringParam("pattern", "Pattern", s.cfg.Pattern),
				core.IntParam("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", int64(s.generation)),
				core.IntParam("population", "Population", int64(s.Population())),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		u, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return NewSim(u), nil
	})
}
