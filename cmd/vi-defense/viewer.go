package main

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/render"
	"github.com/lixenwraith/vi-defense/terrain"
)

const (
	cellsPerTile = 2
	mapLeft      = 1
	mapTop       = 1

	// maxCatchUp bounds the ticks stepped per frame after a stall
	maxCatchUp = 8
)

var (
	colorBackground = render.RGB{R: 16, G: 16, B: 22}
	colorEmpty      = render.RGB{R: 28, G: 30, B: 36}
	colorPath       = render.RGB{R: 52, G: 50, B: 44}
	colorArrow      = render.RGB{R: 92, G: 88, B: 78}
	colorMeter      = render.RGB{R: 240, G: 210, B: 90}
	colorUpgrade    = render.RGB{R: 90, G: 210, B: 240}
	colorHUD        = render.RGB{R: 200, G: 200, B: 200}
	colorHelp       = render.RGB{R: 120, G: 120, B: 120}
)

var (
	enemyGlyphs = map[string]rune{"circle": '●', "triangle": '▲', "square": '■'}
	meterGlyphs = []rune(" ▁▂▃▄▅▆▇█")
	spinGlyphs  = []rune(`|/-\`)
)

type viewer struct {
	screen tcell.Screen
	world  *engine.World

	cursorRow, cursorCol int
	selected             int
}

// runViewer drives the world in real time and draws it until quit or ctx is cancelled
func runViewer(ctx context.Context, w *engine.World) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	v := &viewer{screen: screen, world: w}
	v.run(ctx)
	return nil
}

func (v *viewer) run(ctx context.Context) {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	last := time.Now()
	var pending time.Duration

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if !v.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			pending += now.Sub(last)
			last = now

			// Step also applies commands while paused
			for n := 0; pending >= parameter.TickInterval; n++ {
				if n == maxCatchUp {
					pending = 0
					break
				}
				v.world.Step()
				pending -= parameter.TickInterval
			}

			fudge := float64(pending) / float64(parameter.TickInterval)
			v.draw(render.Collect(v.world, fudge))
		}
	}
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g := v.world.Level.Grid
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.cursorRow = max(v.cursorRow-1, 0)
		case tcell.KeyDown:
			v.cursorRow = min(v.cursorRow+1, g.Height-1)
		case tcell.KeyLeft:
			v.cursorCol = max(v.cursorCol-1, 0)
		case tcell.KeyRight:
			v.cursorCol = min(v.cursorCol+1, g.Width-1)
		case tcell.KeyEnter:
			v.push(engine.CommandPlaceTower, v.selected)
		case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
			v.push(engine.CommandCancel, 0)
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(v.world.Level.Towers) {
			v.selected = i
		}
	case r == 'b':
		v.push(engine.CommandPlaceTower, v.selected)
	case r == 'u':
		if slot, ok := v.nextUpgrade(); ok {
			v.push(engine.CommandUpgrade, slot)
		}
	case r == 'c':
		v.push(engine.CommandCancel, 0)
	case r == 'r':
		v.world.Push(engine.Command{Kind: engine.CommandRewind})
	case r == ' ':
		v.world.Push(engine.Command{Kind: engine.CommandTogglePause})
	}
	return true
}

func (v *viewer) push(kind engine.CommandKind, index int) {
	v.world.Push(engine.Command{Kind: kind, Row: v.cursorRow, Col: v.cursorCol, Index: index})
}

// nextUpgrade picks the lowest upgrade slot of the cursor tower that is neither built nor queued
func (v *viewer) nextUpgrade() (int, bool) {
	st := v.world.State
	e, ok := st.TowerAt(v.cursorRow, v.cursorCol)
	if !ok {
		return 0, false
	}
	t, _ := st.Towers.Get(e)

	taken := t.Upgrades
	for _, o := range st.BuildQueue {
		if o.Tower == e && o.Type.Kind == component.BuildUpgrade {
			taken |= o.Type.UpgradeFlag
		}
	}
	if taken == math.MaxUint32 {
		return 0, false
	}
	return bits.TrailingZeros32(^taken), true
}

func style(fg, bg render.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
}

func tcellColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellAt maps a world position to a screen cell, false outside the visible map
func (v *viewer) cellAt(x, y float64) (int, int, bool) {
	g := v.world.Level.Grid
	if !g.InBounds(x, y) {
		return 0, 0, false
	}
	cx := mapLeft + int(math.Floor(x/terrain.TileSize*cellsPerTile))
	cy := mapTop + int(math.Floor(y/terrain.TileSize))
	return cx, cy, true
}

func (v *viewer) draw(f render.Frame) {
	s := v.screen
	g := v.world.Level.Grid
	s.Fill(' ', style(colorBackground, colorBackground))

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			x, y := mapLeft+col*cellsPerTile, mapTop+row
			tile := g.AtVisible(row, col)
			if !tile.IsPath() {
				s.SetContent(x, y, ' ', nil, style(colorEmpty, colorEmpty))
				s.SetContent(x+1, y, ' ', nil, style(colorEmpty, colorEmpty))
				continue
			}
			_, exit := tile.Corner()
			s.SetContent(x, y, arrow(exit), nil, style(colorArrow, colorPath))
			s.SetContent(x+1, y, ' ', nil, style(colorArrow, colorPath))
		}
	}

	for _, sp := range f.Sprites {
		v.drawSprite(sp)
	}

	for _, m := range f.Meters {
		x, y := mapLeft+m.Col*cellsPerTile+1, mapTop+m.Row
		fg := colorMeter
		if m.Upgrade {
			fg = colorUpgrade
		}
		glyph := meterGlyphs[int(m.Fraction*float64(len(meterGlyphs)-1))]
		s.SetContent(x, y, glyph, nil, style(fg, colorEmpty))
	}

	v.drawCursor()
	v.drawHUD(f, mapTop+g.Height+1)
	s.Show()
}

func (v *viewer) drawSprite(sp render.Sprite) {
	x, y, ok := v.cellAt(sp.X, sp.Y)
	if !ok {
		return
	}
	_, _, bgStyle, _ := v.screen.GetContent(x, y)
	_, bg, _ := bgStyle.Decompose()
	r, gr, b := bg.RGB()
	background := render.RGB{R: uint8(r), G: uint8(gr), B: uint8(b)}

	var glyph rune
	tint := render.Fade(sp.Tint, background, sp.Alpha)

	switch sp.Layer {
	case render.LayerTower:
		glyph = '?'
		if sp.Kind == parameter.FactoryKind {
			i := int(math.Floor((sp.Rotation + math.Pi) / (math.Pi / 4)))
			glyph = spinGlyphs[((i%4)+4)%4]
		} else if sp.Kind != "" {
			glyph = unicode.ToUpper([]rune(sp.Kind)[0])
		}
	case render.LayerEnemy:
		glyph = enemyGlyphs[sp.Kind]
		if glyph == 0 {
			glyph = 'o'
		}
		tint = render.Blend(tint, render.RGBBlack, (1-sp.Health)*0.6)
	case render.LayerExplosion:
		glyph = '*'
	}
	v.screen.SetContent(x, y, glyph, nil, style(tint, background))
}

func (v *viewer) drawCursor() {
	y := mapTop + v.cursorRow
	for i := 0; i < cellsPerTile; i++ {
		x := mapLeft + v.cursorCol*cellsPerTile + i
		mainc, combc, st, _ := v.screen.GetContent(x, y)
		v.screen.SetContent(x, y, mainc, combc, st.Reverse(true))
	}
}

func (v *viewer) drawHUD(f render.Frame, y int) {
	w := v.world
	width, _ := v.screen.Size()
	ints := w.Status.Ints

	status := fmt.Sprintf("tick %d  wave %d/%d  %s  walkers %d  queue %d  rewinds %d",
		f.Tick, ints.Get("wave.index").Load(), len(w.Level.Waves), f.Run,
		ints.Get("walker.count").Load(), ints.Get("build.queue").Load(), ints.Get("rewind.count").Load())
	v.putString(mapLeft, y, status, style(colorHUD, colorBackground), width-mapLeft)

	if typ, ok := w.Level.TowerType(v.selected); ok {
		line := fmt.Sprintf("[%d] %s  cost %.0f  range %.0f  %s", v.selected+1, typ.Name, typ.Cost, typ.Range, typ.Description)
		v.putString(mapLeft, y+1, line, style(render.HexRGB(typ.Color), colorBackground), width-mapLeft)
	}

	help := "arrows move  1-9 tower  enter build  u upgrade  c cancel  r rewind  space pause  q quit"
	v.putString(mapLeft, y+2, help, style(colorHelp, colorBackground), width-mapLeft)
}

// putString writes text truncated to maxWidth display columns
func (v *viewer) putString(x, y int, text string, st tcell.Style, maxWidth int) {
	if maxWidth <= 0 {
		return
	}
	for _, r := range runewidth.Truncate(text, maxWidth, "…") {
		v.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}

func arrow(d terrain.Direction) rune {
	switch d {
	case terrain.DirNorth:
		return '↑'
	case terrain.DirSouth:
		return '↓'
	case terrain.DirEast:
		return '→'
	case terrain.DirWest:
		return '←'
	}
	return '·'
}
