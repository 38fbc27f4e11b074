package field

// HSL is a colour in degrees and percent, as CSS hsl() takes it.
type HSL struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	L float64 `yaml:"l"`
}

type GridConfig struct {
	Enabled bool    `yaml:"enabled"`
	Step    float64 `yaml:"step"`
	Width   float64 `yaml:"width"`
	Alpha   float64 `yaml:"alpha"`
}

type Config struct {
	GridSpacing float64 `yaml:"grid_spacing"`
	LineLength  float64 `yaml:"line_length"`
	LineWidth   float64 `yaml:"line_width"`
	MouseRadius float64 `yaml:"mouse_radius"`
	// Ease is the per-frame fraction the heading closes toward its target.
	Ease float64 `yaml:"ease"`
	// IdleBlend is the per-frame fraction colour returns to base when idle.
	IdleBlend float64 `yaml:"idle_blend"`

	BaseColor   HSL     `yaml:"base_color"`
	ActiveColor HSL     `yaml:"active_color"`
	BaseAlpha   float64 `yaml:"base_alpha"`
	ActiveAlpha float64 `yaml:"active_alpha"`
	// ArrowAlpha is the alpha above which the arrowhead ticks are drawn.
	ArrowAlpha float64 `yaml:"arrow_alpha"`

	ScaleByDeviceRatio bool       `yaml:"scale_by_device_ratio"`
	Grid               GridConfig `yaml:"grid"`
}

func DefaultConfig() Config {
	return Config{
		GridSpacing: 40,
		LineLength:  15,
		LineWidth:   2,
		MouseRadius: 300,
		Ease:        0.1,
		IdleBlend:   0.1,
		BaseColor:   HSL{H: 220, S: 10, L: 20},
		ActiveColor: HSL{H: 180, S: 80, L: 60},
		BaseAlpha:   0.3,
		ActiveAlpha: 0.9,
		ArrowAlpha:  0.5,

		ScaleByDeviceRatio: true,
		Grid: GridConfig{
			Enabled: false,
			Step:    40,
			Width:   0.3,
			Alpha:   0.02,
		},
	}
}
