// Package tui is the tcell frontend. It draws one glyph per terminal cell and
// reads keys and mouse presses through tcell's event queue.
package tui

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/irondome/internal/game"
	"github.com/tomz197/irondome/internal/loop"
	"github.com/tomz197/irondome/internal/loop/scene"
	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// keyTimeout is how long a direction counts as held after its last key
// event. tcell reports no key release, so holding relies on key repeat.
const keyTimeout = 120 * time.Millisecond

// Frontend draws snapshots on a tcell screen.
type Frontend struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	width, height int

	keys        map[game.Direction]time.Time // Last press per direction
	pending     loop.Controls                // Edges since the last Poll
	prevButtons tcell.ButtonMask

	backdrop *scene.Backdrop
	started  time.Time
	stats    game.Stats
}

var (
	_ loop.Frontend = (*Frontend)(nil)
	_ game.UISink   = (*Frontend)(nil)
)

// New creates a frontend on an initialized screen.
func New(screen tcell.Screen, rng *rand.Rand) *Frontend {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w, h := screen.Size()
	field := object.Field{Width: game.FieldWidth, Height: game.FieldHeight}
	return &Frontend{
		screen:   screen,
		events:   make(chan tcell.Event, 100),
		done:     make(chan struct{}),
		width:    w,
		height:   h,
		keys:     make(map[game.Direction]time.Time),
		backdrop: scene.NewBackdrop(field, rng),
		started:  time.Now(),
	}
}

// Start enables the mouse and begins reading events.
func (f *Frontend) Start() {
	f.screen.EnableMouse()
	f.screen.HideCursor()
	f.screen.Clear()

	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case f.events <- ev:
			case <-f.done:
				return
			}
		}
	}()
}

// Stop releases the terminal.
func (f *Frontend) Stop() {
	close(f.done)
	f.screen.Fini()
}

// Poll implements loop.Frontend.
func (f *Frontend) Poll() loop.Controls {
drain:
	for {
		select {
		case ev := <-f.events:
			f.handle(ev, time.Now())
		default:
			break drain
		}
	}

	now := time.Now()
	controls := f.pending
	f.pending = loop.Controls{}
	controls.Held = object.Directions{
		Up:    f.isHeld(game.DirUp, now),
		Down:  f.isHeld(game.DirDown, now),
		Left:  f.isHeld(game.DirLeft, now),
		Right: f.isHeld(game.DirRight, now),
	}
	return controls
}

func (f *Frontend) isHeld(d game.Direction, now time.Time) bool {
	last, ok := f.keys[d]
	return ok && now.Sub(last) < keyTimeout
}

// handle folds one event into the pending controls.
func (f *Frontend) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.handleKey(ev, now)
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && f.prevButtons&tcell.Button1 == 0 {
			col, row := ev.Position()
			f.pending.Aims = append(f.pending.Aims, f.cellToLogical(col, row))
		}
		f.prevButtons = buttons
	case *tcell.EventResize:
		f.width, f.height = ev.Size()
		f.screen.Sync()
	}
}

func (f *Frontend) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		f.pending.Quit = true
	case tcell.KeyEnter:
		f.pending.Primary = true
	case tcell.KeyUp:
		f.keys[game.DirUp] = now
	case tcell.KeyDown:
		f.keys[game.DirDown] = now
	case tcell.KeyLeft:
		f.keys[game.DirLeft] = now
	case tcell.KeyRight:
		f.keys[game.DirRight] = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			f.pending.Quit = true
		case ' ':
			f.pending.Primary = true
		case 'p', 'P':
			f.pending.Pause = true
		case 'r', 'R':
			f.pending.Restart = true
		case 'm', 'M':
			f.pending.ToggleControl = true
		case 'w', 'W', 'k':
			f.keys[game.DirUp] = now
		case 's', 'S', 'j':
			f.keys[game.DirDown] = now
		case 'a', 'A', 'h':
			f.keys[game.DirLeft] = now
		case 'd', 'D', 'l':
			f.keys[game.DirRight] = now
		}
	}
}

// cellToLogical returns the logical coordinates of a cell's center.
func (f *Frontend) cellToLogical(col, row int) physics.Vector {
	if f.width <= 0 || f.height <= 0 {
		return physics.Vec(-1, -1)
	}
	return physics.Vec(
		(float64(col)+0.5)/float64(f.width)*game.FieldWidth,
		(float64(row)+0.5)/float64(f.height)*game.FieldHeight,
	)
}

// logicalToCell returns the cell containing a logical point.
func (f *Frontend) logicalToCell(p physics.Vector) (col, row int) {
	col = int(p.X / game.FieldWidth * float64(f.width))
	row = int(p.Y / game.FieldHeight * float64(f.height))
	return col, row
}

// StatsChanged implements game.UISink.
func (f *Frontend) StatsChanged(stats game.Stats) {
	f.stats = stats
}

// ModeChanged implements game.UISink.
func (f *Frontend) ModeChanged(_, to game.Mode, stats game.Stats) {
	f.stats = stats
	if to != game.ModePlaying {
		clear(f.keys)
	}
}
