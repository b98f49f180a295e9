package client

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/irondome/internal/draw"
	"github.com/tomz197/irondome/internal/game"
	"github.com/tomz197/irondome/internal/loop/scene"
	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// hudWidth pads HUD text so shrinking values don't leave residual characters.
const hudWidth = 44

// Render implements loop.Frontend.
func (c *Client) Render(snap game.Snapshot) error {
	c.updateScreen()

	// On mode transitions, do a full terminal clear so text from the
	// previous screen doesn't persist.
	if c.clearPending {
		draw.ClearScreen(c.chunkWriter)
		c.canvas.ForceRedraw()
		c.clearPending = false
	}

	c.canvas.Clear()
	c.drawBackdrop(snap)
	c.drawEnemies(snap.Enemies)
	for _, p := range snap.Players {
		c.drawTrail(p.Trail, scene.ColorDefender)
		c.drawArrow(p.Pos, p.Angle, 30, 12, scene.ColorDefender)
	}
	for _, ic := range snap.Interceptors {
		c.drawTarget(ic.Target)
		c.drawTrail(ic.Trail, scene.ColorDefender)
		c.drawArrow(ic.Pos, ic.Angle, 22, 9, scene.ColorDefenderCore)
	}
	c.drawExplosions(snap.Explosions)

	if err := c.canvas.Render(c.chunkWriter); err != nil {
		return fmt.Errorf("render canvas: %w", err)
	}

	if snap.Mode.InMatch() {
		c.drawHUD(snap.Control)
	}
	if modal, ok := scene.ModalFor(snap.Mode, snap.Control, c.stats); ok {
		c.drawModal(modal)
	}

	return c.chunkWriter.Flush()
}

// updateScreen follows terminal resizes. On a size change the terminal is
// cleared to remove pixels outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	if termWidth != c.canvas.TerminalWidth() || termHeight != c.canvas.TerminalHeight() {
		draw.ClearScreen(c.chunkWriter)
	}
	c.canvas.Resize(termWidth, termHeight)
}

func (c *Client) drawBackdrop(snap game.Snapshot) {
	field := snap.Field
	c.canvas.FillRect(0, 0, field.Width, field.Height, draw.Color(scene.ColorSky))

	elapsed := time.Since(c.started)
	for _, s := range c.backdrop.Stars {
		tint := scene.Blend(scene.ColorSky, scene.ColorStar, s.Brightness(elapsed))
		c.canvas.SetFloat(s.Pos.X, s.Pos.Y, draw.Color(tint))
	}

	ww, wh := scene.WindowSize()
	for _, b := range c.backdrop.Buildings {
		c.canvas.FillRect(b.X, b.Y, b.Width, b.Height, draw.Color(scene.ColorBuilding))
		for _, w := range b.Windows {
			c.canvas.FillRect(b.X+w.X, b.Y+w.Y, ww, wh, draw.Color(w.Tint))
		}
	}

	c.canvas.DrawLine(
		draw.Point{X: 0, Y: snap.GroundY},
		draw.Point{X: field.Width, Y: snap.GroundY},
		draw.Color(scene.ColorGround),
	)

	lp := field.LaunchPoint()
	c.canvas.FillRect(lp.X-15, lp.Y+10, 30, 20, draw.Color(scene.ColorLauncher))
	c.canvas.FillRect(lp.X-3, lp.Y, 6, 10, draw.Color(scene.ColorBarrel))
}

func (c *Client) drawEnemies(enemies []game.EnemyView) {
	for _, e := range enemies {
		c.drawTrail(e.Trail, scene.ColorEnemy)
		c.drawDisc(e.Pos, 12, scene.ColorEnemy)
		c.drawDisc(e.Pos, 6, scene.ColorEnemyCore)
	}
}

// drawTrail draws consecutive trail points, oldest faintest.
func (c *Client) drawTrail(trail []physics.Vector, tint object.Tint) {
	for i := 1; i < len(trail); i++ {
		color := scene.Blend(scene.ColorSky, tint, scene.TrailAlpha(i, len(trail)))
		c.canvas.DrawLine(point(trail[i-1]), point(trail[i]), draw.Color(color))
	}
}

// drawArrow draws a filled triangle pointing along angle.
func (c *Client) drawArrow(pos physics.Vector, angle, length, width float64, tint object.Tint) {
	nose := pos.Add(physics.FromAngle(angle, length/2))
	tail := pos.Sub(physics.FromAngle(angle, length/2))
	side := physics.FromAngle(angle+math.Pi/2, width/2)

	pts := c.canvas.BorrowPoints(3)
	pts[0] = point(nose)
	pts[1] = point(tail.Add(side))
	pts[2] = point(tail.Sub(side))
	c.canvas.DrawPolygon(pts, true, draw.Color(tint))
}

// drawDisc draws a filled octagon.
func (c *Client) drawDisc(center physics.Vector, radius float64, tint object.Tint) {
	pts := c.canvas.BorrowPoints(8)
	for i := range pts {
		pts[i] = point(center.Add(physics.FromAngle(float64(i)*math.Pi/4, radius)))
	}
	c.canvas.DrawPolygon(pts, true, draw.Color(tint))
}

// drawTarget marks an interceptor's aim point with a small cross.
func (c *Client) drawTarget(target physics.Vector) {
	const arm = 8
	color := draw.Color(scene.ColorTarget)
	c.canvas.DrawLine(point(target.Add(physics.Vec(-arm, 0))), point(target.Add(physics.Vec(arm, 0))), color)
	c.canvas.DrawLine(point(target.Add(physics.Vec(0, -arm))), point(target.Add(physics.Vec(0, arm))), color)
}

func (c *Client) drawExplosions(explosions []game.ExplosionView) {
	for _, e := range explosions {
		for _, p := range e.Particles {
			if p.Alpha <= 0 {
				continue
			}
			tint := scene.Blend(scene.ColorSky, p.Tint, p.Alpha)
			c.canvas.FillRect(p.Pos.X-3, p.Pos.Y-3, 6, 6, draw.Color(tint))
		}
	}
}

// drawHUD draws score and counters on the top row.
func (c *Client) drawHUD(control game.ControlMode) {
	termWidth := c.canvas.TerminalWidth()
	left, right := scene.HUD(c.stats, control)
	left = fmt.Sprintf("%-*s", hudWidth, left)

	cw := c.chunkWriter
	cw.WriteAt(2, 1, c.hudStyle.Render(left))
	c.canvas.MarkTextDirty(2, 1, len(left))

	col := termWidth - len(right)
	if col > len(left)+2 {
		cw.WriteAt(col, 1, c.hudStyle.Render(right))
		c.canvas.MarkTextDirty(col, 1, len(right))
	}
}

// drawModal draws a bordered message box in the middle of the terminal.
func (c *Client) drawModal(m scene.Modal) {
	body := make([]string, 0, len(m.Lines)+3)
	body = append(body, c.titleStyle.Render(m.Title), "")
	body = append(body, m.Lines...)
	body = append(body, "", c.titleStyle.Render(m.Prompt))

	box := c.modalStyle.Render(strings.Join(body, "\n"))
	lines := strings.Split(box, "\n")

	boxWidth := lipgloss.Width(box)
	col := (c.canvas.TerminalWidth()-boxWidth)/2 + 1
	row := (c.canvas.TerminalHeight()-len(lines))/2 + 1
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}

	cw := c.chunkWriter
	for i, line := range lines {
		cw.WriteAt(col, row+i, line)
		c.canvas.MarkTextDirty(col, row+i, lipgloss.Width(line))
	}
}

func point(v physics.Vector) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}
