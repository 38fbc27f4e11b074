package presets

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/backdrop/field"
	"github.com/milk9111/backdrop/lattice"
	"github.com/milk9111/backdrop/paint"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownColor = errors.New("presets: unknown color")
	ErrGridSize     = errors.New("presets: grid_size must be positive")
)

// LoadSpec decodes a preset over base, so keys the file omits keep the
// value they had in base.
func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("presets: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("presets: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

func LoadField() (field.Config, error) {
	return LoadSpec(FieldFile, field.DefaultConfig())
}

// LatticeSpec carries the colour keys lattice.Config leaves to the
// loader.
type LatticeSpec struct {
	lattice.Config `yaml:",inline"`

	BaseColor   *YAMLColor `yaml:"base_color"`
	ActiveColor *YAMLColor `yaml:"active_color"`
	MarkerColor *YAMLColor `yaml:"marker_color"`
	GridColor   *YAMLColor `yaml:"grid_color"`
}

func LoadLattice() (lattice.Config, error) {
	spec, err := LoadSpec(LatticeFile, LatticeSpec{Config: lattice.DefaultConfig()})
	if err != nil {
		return spec.Config, err
	}
	cfg := spec.Config
	if !(cfg.GridSize > 0) {
		return lattice.DefaultConfig(), fmt.Errorf("%w: %s has %v", ErrGridSize, LatticeFile, cfg.GridSize)
	}
	if spec.BaseColor != nil {
		cfg.BaseColor = spec.BaseColor.NRGBA()
	}
	if spec.ActiveColor != nil {
		cfg.ActiveColor = spec.ActiveColor.NRGBA()
	}
	if spec.MarkerColor != nil {
		cfg.MarkerColor = spec.MarkerColor.NRGBA()
	}
	if spec.GridColor != nil {
		cfg.Grid.Color = spec.GridColor.NRGBA()
	}
	return cfg, nil
}

type HostSpec struct {
	Title      string       `yaml:"title"`
	Background YAMLColor    `yaml:"background"`
	Effect     string       `yaml:"effect"`
	Vignette   VignetteSpec `yaml:"vignette"`
}

// VignetteSpec configures the radial darkening laid over the arrow
// field.
type VignetteSpec struct {
	Enabled bool      `yaml:"enabled"`
	Inner   float64   `yaml:"inner"`
	Color   YAMLColor `yaml:"color"`
}

// Vignette returns the configured vignette, or nil when it is disabled.
func (v VignetteSpec) Vignette() *paint.Vignette {
	if !v.Enabled {
		return nil
	}
	return &paint.Vignette{Inner: v.Inner, Color: v.Color.NRGBA()}
}

func DefaultHost() HostSpec {
	vig := paint.DefaultVignette()
	return HostSpec{
		Title:      "backdrop",
		Background: YAMLColor{Color: color.NRGBA{R: 0x0a, G: 0x0b, B: 0x10, A: 0xff}},
		Effect:     "both",
		Vignette: VignetteSpec{
			Enabled: true,
			Inner:   vig.Inner,
			Color:   YAMLColor{Color: vig.Color},
		},
	}
}

func LoadHost() (HostSpec, error) {
	return LoadSpec(HostFile, DefaultHost())
}

// YAMLColor accepts "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)",
// "rgba(r, g, b, a)" with a in [0,1], or a CSS colour name.
type YAMLColor struct {
	color.Color
}

func (c YAMLColor) NRGBA() color.NRGBA {
	if c.Color == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("presets: color must be a string (line %d)", value.Line)
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("presets: line %d: %w", value.Line, err)
	}
	c.Color = parsed
	return nil
}

func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunc(s)
	}

	if named, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func parseHex(s string) (color.NRGBA, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func parseFunc(s string) (color.NRGBA, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if end < open {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		ch[i] = uint8(v)
	}

	alpha := uint8(255)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		alpha = uint8(math.Round(a * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}
