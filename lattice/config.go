package lattice

import "image/color"

type GridConfig struct {
	Enabled bool        `yaml:"enabled"`
	Step    float64     `yaml:"step"`
	Width   float64     `yaml:"width"`
	Color   color.NRGBA `yaml:"-"`
}

type Config struct {
	GridSize      float64 `yaml:"grid_size"`
	FragmentCount int     `yaml:"fragment_count"`
	SnapRadius    float64 `yaml:"snap_radius"`
	// SnapSpeed is the per-frame fraction position and angle close on the
	// lattice while the pointer is near.
	SnapSpeed    float64 `yaml:"snap_speed"`
	DriftSpeed   float64 `yaml:"drift_speed"`
	AngularDrift float64 `yaml:"angular_drift"`
	// LockFactor scales GridSize into the lock threshold.
	LockFactor float64 `yaml:"lock_factor"`

	OpacityRise    float64 `yaml:"opacity_rise"`
	OpacityDecay   float64 `yaml:"opacity_decay"`
	OpacityFloor   float64 `yaml:"opacity_floor"`
	VisibleOpacity float64 `yaml:"visible_opacity"`
	InitialOpacity float64 `yaml:"initial_opacity"`

	BaseColor   color.NRGBA `yaml:"-"`
	ActiveColor color.NRGBA `yaml:"-"`
	MarkerColor color.NRGBA `yaml:"-"`

	ScaleByDeviceRatio bool       `yaml:"scale_by_device_ratio"`
	Grid               GridConfig `yaml:"grid"`
}

func DefaultConfig() Config {
	return Config{
		GridSize:      50,
		FragmentCount: 150,
		SnapRadius:    250,
		SnapSpeed:     0.15,
		DriftSpeed:    0.4,
		AngularDrift:  0.02,
		LockFactor:    0.7,

		OpacityRise:    0.08,
		OpacityDecay:   0.02,
		OpacityFloor:   0.15,
		VisibleOpacity: 0.1,
		InitialOpacity: 0.3,

		BaseColor:   color.NRGBA{R: 100, G: 100, B: 100, A: 255},
		ActiveColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		MarkerColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},

		ScaleByDeviceRatio: false,
		Grid: GridConfig{
			Enabled: false,
			Step:    150,
			Width:   0.3,
			Color:   color.NRGBA{R: 163, G: 163, B: 163, A: 5},
		},
	}
}

// LockThreshold is the distance to an intersection under which a
// fragment locks.
func (c Config) LockThreshold() float64 {
	return c.LockFactor * c.GridSize
}
