package tui

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/irondome/internal/game"
	"github.com/tomz197/irondome/internal/loop/scene"
	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// arrows are indexed by heading octant, starting east and turning clockwise
// (screen y grows downward).
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// particleCutoff hides particles too faint to read as a glyph.
const particleCutoff = 0.25

func rgb(t object.Tint) tcell.Color {
	r, g, b := t.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Render implements loop.Frontend.
func (f *Frontend) Render(snap game.Snapshot) error {
	f.width, f.height = f.screen.Size()
	sky := tcell.StyleDefault.Background(rgb(scene.ColorSky))

	f.screen.Fill(' ', sky)
	f.drawBackdrop(snap, sky)

	for _, e := range snap.Enemies {
		f.drawTrail(e.Trail, scene.ColorEnemy, sky)
		f.put(e.Pos, '●', sky.Foreground(rgb(scene.ColorEnemy)))
	}
	for _, p := range snap.Players {
		f.drawTrail(p.Trail, scene.ColorDefender, sky)
		f.put(p.Pos, arrowFor(p.Angle), sky.Foreground(rgb(scene.ColorDefender)).Bold(true))
	}
	for _, ic := range snap.Interceptors {
		f.put(ic.Target, '+', sky.Foreground(rgb(scene.ColorTarget)))
		f.drawTrail(ic.Trail, scene.ColorDefender, sky)
		f.put(ic.Pos, arrowFor(ic.Angle), sky.Foreground(rgb(scene.ColorDefenderCore)))
	}
	for _, e := range snap.Explosions {
		for _, p := range e.Particles {
			if p.Alpha <= particleCutoff {
				continue
			}
			tint := scene.Blend(scene.ColorSky, p.Tint, p.Alpha)
			f.put(p.Pos, '*', sky.Foreground(rgb(tint)))
		}
	}

	if snap.Mode.InMatch() {
		f.drawHUD(snap.Control, sky)
	}
	if modal, ok := scene.ModalFor(snap.Mode, snap.Control, f.stats); ok {
		f.drawModal(modal)
	}

	f.screen.Show()
	return nil
}

// arrowFor picks the glyph closest to a heading.
func arrowFor(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

func (f *Frontend) drawBackdrop(snap game.Snapshot, sky tcell.Style) {
	elapsed := time.Since(f.started)
	for _, s := range f.backdrop.Stars {
		tint := scene.Blend(scene.ColorSky, scene.ColorStar, s.Brightness(elapsed))
		glyph := '.'
		if s.Size > 2 {
			glyph = '+'
		}
		f.put(s.Pos, glyph, sky.Foreground(rgb(tint)))
	}

	_, groundRow := f.logicalToCell(physics.Vec(0, snap.GroundY))
	ground := sky.Foreground(rgb(scene.ColorGround))
	for col := 0; col < f.width; col++ {
		f.screen.SetContent(col, groundRow, '▁', nil, ground)
	}

	building := tcell.StyleDefault.Background(rgb(scene.ColorBuilding))
	for _, b := range f.backdrop.Buildings {
		c0, r0 := f.logicalToCell(physics.Vec(b.X, b.Y))
		c1, r1 := f.logicalToCell(physics.Vec(b.X+b.Width, b.Y+b.Height))
		for row := r0; row < max(r1, r0+1); row++ {
			for col := c0; col < max(c1, c0+1); col++ {
				f.screen.SetContent(col, row, ' ', nil, building)
			}
		}
		for _, w := range b.Windows {
			f.put(physics.Vec(b.X+w.X, b.Y+w.Y), '▪', building.Foreground(rgb(w.Tint)))
		}
	}

	f.put(snap.Field.LaunchPoint(), '▲', sky.Foreground(rgb(scene.ColorLauncher)).Bold(true))
}

// drawTrail draws trail points, oldest faintest. The newest point sits under
// the head glyph and is skipped.
func (f *Frontend) drawTrail(trail []physics.Vector, tint object.Tint, sky tcell.Style) {
	for i := 0; i < len(trail)-1; i++ {
		color := scene.Blend(scene.ColorSky, tint, scene.TrailAlpha(i, len(trail)))
		f.put(trail[i], '·', sky.Foreground(rgb(color)))
	}
}

// put draws a glyph at the cell containing a logical point.
func (f *Frontend) put(p physics.Vector, glyph rune, style tcell.Style) {
	col, row := f.logicalToCell(p)
	if col < 0 || col >= f.width || row < 0 || row >= f.height {
		return
	}
	f.screen.SetContent(col, row, glyph, nil, style)
}

func (f *Frontend) putStr(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		f.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (f *Frontend) drawHUD(control game.ControlMode, sky tcell.Style) {
	left, right := scene.HUD(f.stats, control)
	style := sky.Foreground(tcell.ColorWhite).Bold(true)
	f.putStr(1, 0, left, style)
	if col := f.width - len(right) - 1; col > len(left)+2 {
		f.putStr(col, 0, right, style)
	}
}

// drawModal draws a bordered box centered on the screen.
func (f *Frontend) drawModal(m scene.Modal) {
	lines := make([]string, 0, len(m.Lines)+4)
	lines = append(lines, m.Title, "")
	lines = append(lines, m.Lines...)
	lines = append(lines, "", m.Prompt)

	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	const padX, padY = 3, 1
	boxW := inner + 2*padX + 2
	boxH := len(lines) + 2*padY + 2
	x0 := max((f.width-boxW)/2, 0)
	y0 := max((f.height-boxH)/2, 0)

	bg := rgb(scene.ColorSky)
	border := tcell.StyleDefault.Background(bg).Foreground(rgb(scene.ColorDefender))
	text := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
	title := text.Foreground(rgb(scene.ColorDefenderCore)).Bold(true)

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			f.screen.SetContent(x, y, ' ', nil, text)
		}
	}
	x1, y1 := x0+boxW-1, y0+boxH-1
	for x := x0 + 1; x < x1; x++ {
		f.screen.SetContent(x, y0, tcell.RuneHLine, nil, border)
		f.screen.SetContent(x, y1, tcell.RuneHLine, nil, border)
	}
	for y := y0 + 1; y < y1; y++ {
		f.screen.SetContent(x0, y, tcell.RuneVLine, nil, border)
		f.screen.SetContent(x1, y, tcell.RuneVLine, nil, border)
	}
	f.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, border)
	f.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, border)
	f.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, border)
	f.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, border)

	for i, l := range lines {
		style := text
		if i == 0 || i == len(lines)-1 {
			style = title
		}
		col := x0 + 1 + padX + (inner-len([]rune(l)))/2
		f.putStr(col, y0+1+padY+i, l, style)
	}
}
