// Package effects builds the configured animation layers from presets.
package effects

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/backdrop/field"
	"github.com/milk9111/backdrop/lattice"
	"github.com/milk9111/backdrop/presets"
	"github.com/milk9111/backdrop/scene"
)

const (
	Field   = "field"
	Lattice = "lattice"
	Both    = "both"
)

var ErrUnknownEffect = errors.New("effects: unknown effect")

// Set holds the engines selected for one run, back to front.
type Set struct {
	Field   *field.Engine
	Lattice *lattice.Engine
}

// Build creates the engines named by effect. A zero seed leaves the
// lattice seeded from the clock. Presets that fail to load fall back to
// defaults with a log line; they never stop the effect from running.
func Build(effect string, seed uint64) (*Set, error) {
	effect = strings.ToLower(strings.TrimSpace(effect))
	if effect == "" {
		effect = Both
	}

	var s Set
	switch effect {
	case Field, Lattice, Both:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, effect)
	}

	if effect == Field || effect == Both {
		cfg, err := presets.LoadField()
		if err != nil {
			log.Printf("effects: %v; using defaults", err)
			cfg = field.DefaultConfig()
		}
		s.Field = field.New(cfg)
	}
	if effect == Lattice || effect == Both {
		cfg, err := presets.LoadLattice()
		if err != nil {
			log.Printf("effects: %v; using defaults", err)
			cfg = lattice.DefaultConfig()
		}
		if seed != 0 {
			s.Lattice = lattice.NewSeeded(cfg, seed)
		} else {
			s.Lattice = lattice.New(cfg, nil)
		}
	}
	return &s, nil
}

// Layers lists the built engines back to front.
func (s *Set) Layers() []scene.Layer {
	var layers []scene.Layer
	if s.Field != nil {
		layers = append(layers, s.Field)
	}
	if s.Lattice != nil {
		layers = append(layers, s.Lattice)
	}
	return layers
}

// Reload re-reads the preset behind file and reconfigures its engine.
// It reports whether file belonged to a running engine.
func (s *Set) Reload(file string) (bool, error) {
	switch file {
	case presets.FieldFile:
		if s.Field == nil {
			return false, nil
		}
		cfg, err := presets.LoadField()
		if err != nil {
			return true, err
		}
		s.Field.Reconfigure(cfg)
		return true, nil
	case presets.LatticeFile:
		if s.Lattice == nil {
			return false, nil
		}
		cfg, err := presets.LoadLattice()
		if err != nil {
			return true, err
		}
		s.Lattice.Reconfigure(cfg)
		return true, nil
	}
	return false, nil
}

