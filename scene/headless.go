package scene

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls RunHeadless.
type HeadlessConfig struct {
	// Hz paces frames; zero runs them back to back.
	Hz int
	// Frames stops the run after this many frames; zero runs until ctx ends.
	Frames uint64
}

// RunHeadless drives s without a window. It returns nil once Frames
// frames have run, or ctx's error if ctx ends first.
func RunHeadless(ctx context.Context, s *Scene, cfg HeadlessConfig) error {
	if cfg.Hz < 0 {
		return fmt.Errorf("scene: invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Hz == 0 && cfg.Frames == 0 {
		return fmt.Errorf("scene: unpaced headless run needs a frame count")
	}

	var tick <-chan time.Time
	if cfg.Hz > 0 {
		d := time.Second / time.Duration(cfg.Hz)
		if d <= 0 {
			return fmt.Errorf("scene: invalid headless hz: %d", cfg.Hz)
		}
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	var frame uint64
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		s.Frame()
		frame++
		if cfg.Frames > 0 && frame >= cfg.Frames {
			return nil
		}
	}
}
