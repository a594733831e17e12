package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"torus-life/pkg/core"
)

// ErrUnknownSim is returned when the configured sim is not registered.
var ErrUnknownSim = errors.New("app: unknown sim")

// Config represents the command-line parameters for the hosts.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width   int
	Height  int
	Pattern string

	File string
}

// fileConfig mirrors Config in a YAML document. Absent keys leave the
// current value in place; explicit zeros are applied.
type fileConfig struct {
	Sim   *string `yaml:"sim"`
	Scale *int    `yaml:"scale"`
	TPS   *int    `yaml:"tps"`
	Seed  *int64  `yaml:"seed"`

	Grid struct {
		Width   *int    `yaml:"width"`
		Height  *int    `yaml:"height"`
		Pattern *string `yaml:"pattern"`
	} `yaml:"grid"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 8, TPS: 10, Seed: 42, Width: 64, Height: 64, Pattern: "parity"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: parity, empty or random")
	fs.StringVar(&c.File, "config", c.File, "YAML configuration file")
}

// Load parses args into c. A -config file is merged on top of the defaults
// and the flags are applied again afterwards so explicit flags win.
func (c *Config) Load(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File == "" {
		return nil
	}
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	return fs.Parse(args)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// LoadFile merges the keys present in a YAML configuration file into c.
func (c *Config) LoadFile(path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(body, &fc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	set(&c.Sim, fc.Sim)
	set(&c.Scale, fc.Scale)
	set(&c.TPS, fc.TPS)
	set(&c.Seed, fc.Seed)
	set(&c.Width, fc.Grid.Width)
	set(&c.Height, fc.Grid.Height)
	set(&c.Pattern, fc.Grid.Pattern)
	return nil
}

// SimOptions converts the grid settings into a factory option map.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"pattern": c.Pattern,
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}

// NewSim builds and seeds the configured simulation from the registry.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownSim, c.Sim, core.Names())
	}
	sim, err := factory(c.SimOptions())
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", c.Sim, err)
	}
	sim.Reset(c.Seed)
	return sim, nil
}
