package part

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/fritzing/geom"
)

// References names the single-pin template files each view's geometry was
// copied from. They are recorded in every generated SVG.
type References struct {
	Breadboard   string `yaml:"breadboard"`
	Schematic    string `yaml:"schematic"`
	PCBCircle    string `yaml:"pcb_circle"`
	PCBOblong    string `yaml:"pcb_oblong"`
	PCBRectangle string `yaml:"pcb_rectangle"`
}

// Config is the immutable set of tables and constants injected into every
// generation stage. Build one with DefaultConfig or LoadConfig; the zero
// value is not usable.
type Config struct {
	unitsPerPitch   float64
	schematicPitch  float64
	author          string
	fritzingVersion string
	refs            References
	pitches         map[string]float64
	colors          map[string]string
}

// Pitches in multiples of the 0.5mm base pitch (mm values are mm/2.54 in
// thousandths of an inch, divided by the base).
var defaultPitches = map[string]float64{
	"0.5mm":   1,
	"1mm":     2,
	"1.27mm":  2.54,
	"2mm":     4,
	"0.1in":   5.08,
	"0.11in":  5.588,
	"0.12in":  6.096,
	"0.13in":  6.604,
	"0.14in":  7.112,
	"0.15in":  7.62,
	"0.156in": 7.9248,
	"0.16in":  8.128,
	"0.17in":  8.636,
	"0.18in":  9.144,
	"0.19in":  9.652,
	"0.2in":   10.16,
	"1in":     50.8,
}

var defaultColors = map[string]string{
	"brown":  "#404040",
	"red":    "#ff0000",
	"yellow": "#ffff00",
	"green":  "#008000",
	"blue":   "#0000ff",
}

// DefaultConfig returns the built-in tables.
func DefaultConfig() Config {
	return Config{
		unitsPerPitch:   geom.UnitsPerPitch,
		schematicPitch:  defaultPitches["0.1in"],
		author:          "OpenTraceParts part factory",
		fritzingVersion: "1.0.3",
		refs: References{
			Breadboard:   "svg.breadboard.male_1_pin-0.1in-cons-lines_breadboard.svg",
			Schematic:    "svg.schematic.male_1_pin-0.1in_schematic.svg",
			PCBCircle:    "svg.pcb.circle_1_pin-0.1in_0.038hole_pcb.svg",
			PCBOblong:    "svg.pcb.oblong_single-pin-0.1in_0.038hole_pcb.svg",
			PCBRectangle: "svg.pcb.rectangle_1_pin-0.1in_smd_pcb.svg",
		},
		pitches: copyMap(defaultPitches),
		colors:  copyMap(defaultColors),
	}
}

// configFile is the YAML overlay format. Every field is optional.
type configFile struct {
	Author          string             `yaml:"author"`
	FritzingVersion string             `yaml:"fritzing_version"`
	SchematicPitch  string             `yaml:"schematic_pitch"`
	References      References         `yaml:"references"`
	Pitches         map[string]float64 `yaml:"pitches"`
	Colors          map[string]string  `yaml:"colors"`
}

// LoadConfig reads a YAML overlay from path and applies it on top of
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig applies a YAML overlay to DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := DefaultConfig()

	if file.Author != "" {
		cfg.author = file.Author
	}
	if file.FritzingVersion != "" {
		cfg.fritzingVersion = file.FritzingVersion
	}

	for name, pitch := range file.Pitches {
		if !finitePositive(pitch) {
			return Config{}, fmt.Errorf("config: pitch %q must be a finite number > 0", name)
		}
		cfg.pitches[strings.ToLower(name)] = pitch
	}
	for name, color := range file.Colors {
		if !hexColor.MatchString(color) {
			return Config{}, fmt.Errorf("config: color %q must be #rrggbb (got %q)", name, color)
		}
		cfg.colors[strings.ToLower(name)] = color
	}

	if file.SchematicPitch != "" {
		p, err := cfg.ResolvePitch(file.SchematicPitch)
		if err != nil {
			return Config{}, fmt.Errorf("config: schematic_pitch: %w", err)
		}
		cfg.schematicPitch = p
	}

	overlay(&cfg.refs.Breadboard, file.References.Breadboard)
	overlay(&cfg.refs.Schematic, file.References.Schematic)
	overlay(&cfg.refs.PCBCircle, file.References.PCBCircle)
	overlay(&cfg.refs.PCBOblong, file.References.PCBOblong)
	overlay(&cfg.refs.PCBRectangle, file.References.PCBRectangle)

	return cfg, nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// UnitsPerPitch is the drawing-unit distance of one base pitch step.
func (c Config) UnitsPerPitch() float64 { return c.unitsPerPitch }

// SchematicPitch is the pitch every schematic view is drawn at.
func (c Config) SchematicPitch() float64 { return c.schematicPitch }

// Author is written into the part descriptor.
func (c Config) Author() string { return c.author }

// FritzingVersion is the fritzingVersion attribute of the descriptor.
func (c Config) FritzingVersion() string { return c.fritzingVersion }

// References returns the reference file table.
func (c Config) References() References { return c.refs }

// Transform returns the coordinate transform for pitch.
func (c Config) Transform(pitch float64) geom.Transform {
	return geom.Transform{Pitch: pitch, UnitsPerPitch: c.unitsPerPitch}
}

// ReferenceFile returns the template file name for a view of spec.
func (c Config) ReferenceFile(view View, spec Spec) (string, error) {
	switch view {
	case Breadboard:
		return c.refs.Breadboard, nil
	case Schematic:
		return c.refs.Schematic, nil
	case PCB:
		switch spec.Pad {
		case Circle:
			return c.refs.PCBCircle, nil
		case Oblong:
			return c.refs.PCBOblong, nil
		case Rectangle:
			return c.refs.PCBRectangle, nil
		}
		return "", fmt.Errorf("%w: pcb pad type %q", ErrUnimplemented, spec.Pad)
	}
	return "", fmt.Errorf("%w: view %q", ErrUnimplemented, view)
}

// ResolvePitch accepts a pitch table name ("2.54mm" style names from the
// table, case-insensitive) or a raw number of base pitch units.
func (c Config) ResolvePitch(s string) (float64, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := c.pitches[key]; ok {
		return p, nil
	}
	p, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown pitch %q", ErrInvalidSpec, s)
	}
	if !finitePositive(p) {
		return 0, fmt.Errorf("%w: pitch must be a finite number > 0 (got %q)", ErrInvalidSpec, s)
	}
	return p, nil
}

// ResolveColor accepts a color table name or a #rrggbb value.
func (c Config) ResolveColor(s string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if col, ok := c.colors[key]; ok {
		return col, nil
	}
	if hexColor.MatchString(key) {
		return key, nil
	}
	return "", fmt.Errorf("%w: unknown color %q", ErrInvalidSpec, s)
}

// PitchNames returns the pitch table names ordered by pitch.
func (c Config) PitchNames() []string {
	names := make([]string, 0, len(c.pitches))
	for name := range c.pitches {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := c.pitches[names[i]], c.pitches[names[j]]
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})
	return names
}

// Pitches returns a copy of the pitch table.
func (c Config) Pitches() map[string]float64 { return copyMap(c.pitches) }

// Colors returns a copy of the color table.
func (c Config) Colors() map[string]string { return copyMap(c.colors) }

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
