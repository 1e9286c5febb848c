package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gowellarc/pkg/arcpair"
	"github.com/philipparndt/gowellarc/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Units of the angles in a case file
const (
	Degrees = "degrees"
	Radians = "radians"
)

// Radius is a target radius. It reads numbers as well as "inf", and an
// omitted radius means no curvature constraint.
type Radius struct {
	Value float64
	Set   bool
}

// Station is one end of the curve as written in a case file
type Station struct {
	Position    []float64 `yaml:"position" toml:"position"`
	Azimuth     float64   `yaml:"azimuth" toml:"azimuth"`
	Inclination float64   `yaml:"inclination" toml:"inclination"`
	Radius      Radius    `yaml:"radius" toml:"radius"`
}

// Solver holds optional solver settings
type Solver struct {
	Method        string  `yaml:"method" toml:"method"`
	Backstepping  bool    `yaml:"backstepping" toml:"backstepping"`
	MaxIterations int     `yaml:"max_iterations" toml:"max_iterations"`
	MaxError      float64 `yaml:"max_error" toml:"max_error"`
}

// Case describes one solve request
type Case struct {
	Name   string  `yaml:"name" toml:"name"`
	Units  string  `yaml:"units" toml:"units"`
	From   Station `yaml:"from" toml:"from"`
	To     Station `yaml:"to" toml:"to"`
	Solver Solver  `yaml:"solver" toml:"solver"`
}

// Load reads a case file. The format follows the extension: .yaml, .yml
// or .toml.
func Load(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var c Case
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse YAML case %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &c); err != nil {
			return nil, fmt.Errorf("failed to parse TOML case %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported case file extension %q (expected .yaml, .yml or .toml)", filepath.Ext(path))
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid case %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks the case for values the solver cannot use
func (c *Case) Validate() error {
	switch strings.ToLower(c.Units) {
	case "", Degrees, Radians:
	default:
		return fmt.Errorf("unknown units %q", c.Units)
	}
	if _, err := arcpair.ParseMethod(c.Solver.Method); err != nil {
		return err
	}
	if c.Solver.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must not be negative, got %d", c.Solver.MaxIterations)
	}
	if c.Solver.MaxError < 0 {
		return fmt.Errorf("max_error must not be negative, got %v", c.Solver.MaxError)
	}
	if err := c.From.validate(); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if err := c.To.validate(); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	return nil
}

func (s Station) validate() error {
	if len(s.Position) != 3 {
		return fmt.Errorf("position needs 3 coordinates, got %d", len(s.Position))
	}
	for _, v := range s.Position {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("position must be finite, got %v", s.Position)
		}
	}
	if s.Radius.Set && !(s.Radius.Value > 0) {
		return fmt.Errorf("radius must be positive, got %v", s.Radius.Value)
	}
	return nil
}

// Stations converts the case into solver input
func (c *Case) Stations() (arcpair.Station, arcpair.Station) {
	radians := strings.ToLower(c.Units) == Radians
	return c.From.station(radians), c.To.station(radians)
}

func (s Station) station(radians bool) arcpair.Station {
	dir := geometry.Degrees(s.Azimuth, s.Inclination)
	if radians {
		dir = geometry.NewDirection(s.Azimuth, s.Inclination)
	}

	radius := math.Inf(1)
	if s.Radius.Set {
		radius = s.Radius.Value
	}

	return arcpair.Station{
		Position:  geometry.NewVector3(s.Position[0], s.Position[1], s.Position[2]),
		Direction: dir,
		Radius:    radius,
	}
}

// Options converts the solver section into solver options
func (c *Case) Options() arcpair.Options {
	opts := arcpair.DefaultOptions()
	// Validate already rejected unknown names
	opts.Method, _ = arcpair.ParseMethod(c.Solver.Method)
	opts.Backstepping = c.Solver.Backstepping
	if c.Solver.MaxIterations > 0 {
		opts.MaxIterations = c.Solver.MaxIterations
	}
	if c.Solver.MaxError > 0 {
		opts.MaxError = c.Solver.MaxError
	}
	return opts
}

// ParseRadius reads a radius from text, accepting "inf"
func ParseRadius(text string) (Radius, error) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "":
		return Radius{}, nil
	case "inf", "+inf", ".inf", "+.inf", "infinity", "none":
		return Radius{Value: math.Inf(1), Set: true}, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Radius{}, fmt.Errorf("invalid radius %q: %w", text, err)
	}
	return Radius{Value: v, Set: true}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (r *Radius) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: radius must be a number or inf", node.Line)
	}
	parsed, err := ParseRadius(node.Value)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler
func (r *Radius) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case int64:
		*r = Radius{Value: float64(v), Set: true}
	case float64:
		*r = Radius{Value: v, Set: true}
	case string:
		parsed, err := ParseRadius(v)
		if err != nil {
			return err
		}
		*r = parsed
	default:
		return fmt.Errorf("invalid radius %v", value)
	}
	return nil
}
