package presets

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	FieldFile   = "arrow_field.yaml"
	LatticeFile = "blueprint.yaml"
	HostFile    = "host.yaml"
)

//go:embed *.yaml
var PresetsFS embed.FS

// Dir is the on-disk directory whose files override the embedded presets.
var Dir = "presets"

func Load(name string) ([]byte, error) {
	clean := cleanPresetPath(name)
	if data, err := os.ReadFile(diskPresetPath(clean)); err == nil {
		return data, nil
	}
	return PresetsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPresetPath(name)
	info, err := os.Stat(diskPresetPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPresetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "presets/"); ok {
		return after
	}
	return filepath.Base(s)
}

func diskPresetPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
