// Package client is the ANSI frontend: it reads raw terminal bytes and draws
// half-block frames through a ChunkWriter, so it works on a local raw-mode
// terminal and over an SSH channel alike.
package client

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/irondome/internal/draw"
	"github.com/tomz197/irondome/internal/game"
	"github.com/tomz197/irondome/internal/input"
	"github.com/tomz197/irondome/internal/loop"
	"github.com/tomz197/irondome/internal/loop/scene"
	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// Client handles rendering and input for a single terminal.
type Client struct {
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates frame output for chunked writes
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	backdrop     *scene.Backdrop
	started      time.Time
	bell         bool

	stats        game.Stats
	clearPending bool // Mode changed; wipe leftover text on the next frame

	hudStyle   lipgloss.Style
	modalStyle lipgloss.Style
	titleStyle lipgloss.Style
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Bell         bool // Ring the terminal bell on impacts and match results
	Rand         *rand.Rand
}

var (
	_ loop.Frontend  = (*Client)(nil)
	_ game.UISink    = (*Client)(nil)
	_ game.AudioSink = (*Client)(nil)
)

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r io.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		termWidth, termHeight = 80, 24
	}
	field := object.Field{Width: game.FieldWidth, Height: game.FieldHeight}

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.TrueColor)

	return &Client{
		canvas:       draw.NewCanvas(termWidth, termHeight, field.Width, field.Height),
		chunkWriter:  draw.NewChunkWriter(w),
		writer:       w,
		inputStream:  input.StartStream(br),
		termSizeFunc: termSizeFunc,
		backdrop:     scene.NewBackdrop(field, rng),
		started:      time.Now(),
		bell:         opts.Bell,
		clearPending: true,
		hudStyle: renderer.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),
		modalStyle: renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scene.ColorDefender.Hex())).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(scene.ColorSky.Hex())).
			Padding(1, 3).
			Align(lipgloss.Center),
		titleStyle: renderer.NewStyle().
			Foreground(lipgloss.Color(scene.ColorDefenderCore.Hex())).
			Bold(true),
	}
}

// Open switches the terminal to the game screen.
func (c *Client) Open() {
	draw.EnterGameScreen(c.writer)
}

// Close restores the terminal.
func (c *Client) Close() {
	draw.LeaveGameScreen(c.writer)
}

// Poll implements loop.Frontend.
func (c *Client) Poll() loop.Controls {
	in := input.ReadInput(c.inputStream)

	controls := loop.Controls{
		Quit:          in.Quit || in.Closed,
		Primary:       in.Space || in.Enter,
		Pause:         in.Pause,
		Restart:       in.Restart,
		ToggleControl: in.Mode,
		Held: object.Directions{
			Up:    in.Up,
			Down:  in.Down,
			Left:  in.Left,
			Right: in.Right,
		},
	}
	for _, click := range in.Clicks {
		x, y := c.canvas.TerminalToLogical(click.Col, click.Row)
		controls.Aims = append(controls.Aims, physics.Vec(x, y))
	}
	return controls
}

// StatsChanged implements game.UISink.
func (c *Client) StatsChanged(stats game.Stats) {
	c.stats = stats
}

// ModeChanged implements game.UISink.
func (c *Client) ModeChanged(_, to game.Mode, stats game.Stats) {
	c.stats = stats
	c.clearPending = true
	if to != game.ModePlaying {
		// Keys held when the match stopped must not leak into the next one.
		c.inputStream.Release()
	}
}

// Play implements game.AudioSink with the terminal bell.
func (c *Client) Play(cue game.Cue) {
	if !c.bell {
		return
	}
	switch cue {
	case game.CueImpact, game.CueDefeat, game.CueVictory:
		c.chunkWriter.WriteString("\a")
	}
}
