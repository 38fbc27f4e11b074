package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/backdrop/effects"
	"github.com/milk9111/backdrop/presets"
)

func main() {
	effect := flag.String("effect", "", "effect to run: field, lattice or both (default from host preset)")
	seed := flag.Uint64("seed", 0, "seed for fragment placement (0 = random)")
	debug := flag.Bool("debug", false, "show FPS and population overlay")
	watch := flag.Bool("watch", false, "reload presets from the presets/ directory when they change")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	host, err := presets.LoadHost()
	if err != nil {
		log.Printf("%v; using defaults", err)
		host = presets.DefaultHost()
	}
	if *effect == "" {
		*effect = host.Effect
	}

	set, err := effects.Build(*effect, *seed)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *presets.Watcher
	if *watch {
		watcher, err = presets.NewWatcher(presets.Dir)
		if err != nil {
			log.Printf("watch %s: %v", presets.Dir, err)
			watcher = nil
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(host.Title)
	ebiten.SetFullscreen(*fullscreen)

	game := NewGame(set, host, *debug, watcher)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
