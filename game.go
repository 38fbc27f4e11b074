package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/backdrop/effects"
	"github.com/milk9111/backdrop/paint"
	"github.com/milk9111/backdrop/presets"
	"github.com/milk9111/backdrop/scene"
)

// surface is the offscreen image one mount paints into before it is
// scaled onto the screen.
type surface struct {
	mount   *scene.Mount
	painter *paint.Screen
	img     *ebiten.Image

	// vignette is drawn right after this surface.
	vignette bool
}

type Game struct {
	scene    *scene.Scene
	effects  *effects.Set
	surfaces []*surface
	watcher  *presets.Watcher

	background color.Color
	debug      bool

	// vignette is rendered once per screen size and cached in vignetteImg.
	vignette    *paint.Vignette
	vignetteImg *ebiten.Image

	// Layout size in device pixels, and the scale it was taken at.
	screenW, screenH float64
	dpr              float64
	resized          bool

	cursorX, cursorY int
	cursorInside     bool
	touchIDs         []ebiten.TouchID
}

func NewGame(set *effects.Set, host presets.HostSpec, debug bool, watcher *presets.Watcher) *Game {
	g := &Game{
		scene:      scene.New(nil),
		effects:    set,
		watcher:    watcher,
		background: host.Background.Color,
		debug:      debug,
		vignette:   host.Vignette.Vignette(),
		dpr:        1,
	}
	if g.background == nil {
		g.background = presets.DefaultHost().Background.Color
	}

	for _, layer := range set.Layers() {
		painter := paint.NewScreen(nil)
		m := scene.NewMount(g.scene.Events(), layer, painter)
		g.scene.Mount(m)
		g.surfaces = append(g.surfaces, &surface{
			mount:    m,
			painter:  painter,
			vignette: g.vignette != nil && set.Field != nil && layer == scene.Layer(set.Field),
		})
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollPresets()

	ev := g.scene.Events()
	if g.resized {
		g.resized = false
		ev.Resize(g.screenW/g.dpr, g.screenH/g.dpr, g.dpr)
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		ev.TouchMove(float64(x)/g.dpr, float64(y)/g.dpr)
		return nil
	}

	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() &&
		x >= 0 && y >= 0 && float64(x) < g.screenW && float64(y) < g.screenH
	switch {
	case inside && (!g.cursorInside || x != g.cursorX || y != g.cursorY):
		ev.PointerMove(float64(x)/g.dpr, float64(y)/g.dpr)
	case !inside && g.cursorInside:
		ev.PointerLeave()
	}
	g.cursorX, g.cursorY, g.cursorInside = x, y, inside
	return nil
}

func (g *Game) pollPresets() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			applied, err := g.effects.Reload(name)
			switch {
			case err != nil:
				log.Printf("reload %s: %v", name, err)
			case applied:
				log.Printf("reloaded %s", name)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("preset watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, s := range g.surfaces {
		w, h := s.mount.Layer().SurfaceSize()
		if w <= 0 || h <= 0 || !s.mount.Active() {
			continue
		}
		if s.img == nil || s.img.Bounds().Dx() != w || s.img.Bounds().Dy() != h {
			if s.img != nil {
				s.img.Deallocate()
			}
			s.img = ebiten.NewImage(w, h)
		}
		s.painter.SetTarget(s.img)
		if err := s.mount.Frame(); err != nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(sw)/float64(w), float64(sh)/float64(h))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(s.img, op)

		if s.vignette {
			screen.DrawImage(g.vignetteImage(sw, sh), nil)
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

func (g *Game) vignetteImage(w, h int) *ebiten.Image {
	if img := g.vignetteImg; img != nil && img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img
	}
	if g.vignetteImg != nil {
		g.vignetteImg.Deallocate()
	}
	g.vignetteImg = ebiten.NewImageFromImage(g.vignette.Image(w, h))
	return g.vignetteImg
}

func (g *Game) debugText() string {
	text := fmt.Sprintf("FPS: %.1f  TPS: %.1f  dpr: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS(), g.dpr)
	if f := g.effects.Field; f != nil {
		text += fmt.Sprintf("\nfield: %d arrows", f.Len())
	}
	if l := g.effects.Lattice; l != nil {
		locked := 0
		for _, frag := range l.Elements() {
			if frag.Locked {
				locked++
			}
		}
		text += fmt.Sprintf("\nlattice: %d fragments, %d locked", l.Len(), locked)
	}
	return text
}

// LayoutF renders at device resolution and queues a rebuild whenever the
// window size or scale changes.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	dpr := ebiten.Monitor().DeviceScaleFactor()
	if dpr <= 0 {
		dpr = 1
	}
	w, h := outsideWidth*dpr, outsideHeight*dpr
	if w != g.screenW || h != g.screenH || dpr != g.dpr {
		g.screenW, g.screenH, g.dpr = w, h, dpr
		g.resized = true
	}
	return w, h
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close unmounts every layer and stops the preset watcher.
func (g *Game) Close() {
	g.scene.Close()
	for _, s := range g.surfaces {
		if s.img != nil {
			s.img.Deallocate()
			s.img = nil
		}
	}
	if g.vignetteImg != nil {
		g.vignetteImg.Deallocate()
		g.vignetteImg = nil
	}
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close preset watcher: %v", err)
		}
	}
}
