// Package game implements the missile-defense simulation: spawning, motion,
// collisions, explosions and the match state machine.
//
// A Session is owned by a single goroutine. Hosts feed it input and commands,
// call Update once per frame and read a Snapshot for rendering.
package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// Direction is a steering direction for the keyboard missile.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Hitbox selects the keyboard collision radius. It is fixed for the
// lifetime of a session and never follows asset loading.
type Hitbox int

const (
	HitboxSprite    Hitbox = iota // Host draws sprite images
	HitboxPrimitive               // Host draws primitive shapes
)

// Radius returns the keyboard collision radius for the hitbox.
func (h Hitbox) Radius() float64 {
	if h == HitboxPrimitive {
		return PrimitiveHitRadius
	}
	return SpriteHitRadius
}

// Session is one player's game: mode, counters and every live entity.
type Session struct {
	field   object.Field
	rng     *rand.Rand
	audio   AudioSink
	ui      UISink
	hitbox  Hitbox
	mode    Mode
	control ControlMode
	stats   Stats
	held    object.Directions
	spawner spawner

	enemies    []*object.EnemyMissile
	explosions []*object.Explosion
	slot       *slotSet
	swarm      *swarmSet
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for spawning and particles.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithAudio sets the cue sink. A nil sink keeps the silent default.
func WithAudio(a AudioSink) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

// WithUI sets the text sink. A nil sink keeps the silent default.
func WithUI(u UISink) Option {
	return func(s *Session) {
		if u != nil {
			s.ui = u
		}
	}
}

// WithHitbox sets the keyboard collision radius.
func WithHitbox(h Hitbox) Option {
	return func(s *Session) {
		s.hitbox = h
	}
}

// WithControlMode sets the initial control mode.
func WithControlMode(c ControlMode) Option {
	return func(s *Session) {
		s.control = c
	}
}

// NewSession creates a session in the menu.
func NewSession(opts ...Option) *Session {
	s := &Session{
		field:   object.Field{Width: FieldWidth, Height: FieldHeight},
		audio:   nopAudio{},
		ui:      nopUI{},
		hitbox:  HitboxSprite,
		mode:    ModeMenu,
		control: ControlKeyboard,
		spawner: newSpawner(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.slot = newSlotSet(s.hitbox.Radius())
	s.swarm = newSwarmSet(s.field)
	return s
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Control returns the current control mode.
func (s *Session) Control() ControlMode { return s.control }

// Stats returns the current counters.
func (s *Session) Stats() Stats { return s.stats }

// Field returns the play field.
func (s *Session) Field() object.Field { return s.field }

// SpawnInterval returns the current time between enemy spawns.
func (s *Session) SpawnInterval() time.Duration { return s.spawner.interval }

// Held reports whether a steering direction is held.
func (s *Session) Held(d Direction) bool {
	switch d {
	case DirUp:
		return s.held.Up
	case DirDown:
		return s.held.Down
	case DirLeft:
		return s.held.Left
	case DirRight:
		return s.held.Right
	}
	return false
}

// Start begins a new match from the menu, resetting counters and entities.
func (s *Session) Start() bool {
	if _, ok := next(s.mode, triggerStart); !ok {
		return false
	}
	s.stats = Stats{}
	s.spawner = newSpawner()
	s.held = object.Directions{}
	s.clearEntities()
	s.ui.StatsChanged(s.stats)
	return s.transition(triggerStart)
}

// TogglePause pauses a running match or resumes a paused one.
func (s *Session) TogglePause() bool {
	return s.transition(triggerToggle)
}

// Restart returns to the menu from a finished, running or paused match.
func (s *Session) Restart() bool {
	if !s.transition(triggerRestart) {
		return false
	}
	s.clearEntities()
	return true
}

// SetControlMode switches between keyboard and pointer control.
// It is refused while a match is running or paused.
func (s *Session) SetControlMode(c ControlMode) bool {
	if s.mode.InMatch() {
		return false
	}
	s.control = c
	return true
}

// KeyDown starts steering in d. Ignored unless playing with the keyboard.
func (s *Session) KeyDown(d Direction) {
	if s.mode != ModePlaying || s.control != ControlKeyboard {
		return
	}
	s.setHeld(d, true)
}

// KeyUp stops steering in d. Always accepted so keys never stick across pauses.
func (s *Session) KeyUp(d Direction) {
	s.setHeld(d, false)
}

func (s *Session) setHeld(d Direction, v bool) {
	switch d {
	case DirUp:
		s.held.Up = v
	case DirDown:
		s.held.Down = v
	case DirLeft:
		s.held.Left = v
	case DirRight:
		s.held.Right = v
	}
}

// Aim queues an interceptor launch toward (x, y). Only accepted while
// playing in pointer mode, for finite in-field targets away from the
// launch point.
func (s *Session) Aim(x, y float64) bool {
	if s.mode != ModePlaying || s.control != ControlPointer {
		return false
	}
	if !physics.IsFinite(x) || !physics.IsFinite(y) {
		return false
	}
	target := physics.Vec(x, y)
	if !s.field.Contains(target) || target == s.field.LaunchPoint() {
		return false
	}
	s.swarm.pending = append(s.swarm.pending, target)
	return true
}

// Update advances the match by dt. It does nothing outside ModePlaying.
// dt is clamped to [0, MaxFrameDelta].
func (s *Session) Update(dt time.Duration) {
	if s.mode != ModePlaying {
		return
	}
	if dt < 0 {
		dt = 0
	} else if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	ctx := object.UpdateContext{Delta: dt, Field: s.field}

	s.defenders().Advance(s, ctx)
	if s.spawner.advance(dt) {
		s.spawnEnemy()
	}
	s.advanceEnemies(ctx)
	if s.mode == ModePlaying {
		s.checkCollisions()
	}
	if s.mode == ModePlaying {
		s.advanceExplosions(ctx)
	}
	s.sweep()
}

// defenders returns the set the current control mode defends with.
func (s *Session) defenders() DefenderSet {
	if s.control == ControlPointer {
		return s.swarm
	}
	return s.slot
}

// transition applies a trigger through the mode table and notifies sinks.
func (s *Session) transition(t trigger) bool {
	to, ok := next(s.mode, t)
	if !ok {
		return false
	}
	from := s.mode
	s.mode = to
	s.swarm.pending = s.swarm.pending[:0]

	s.ui.ModeChanged(from, to, s.stats)
	switch to {
	case ModeGameOver:
		s.audio.Play(CueDefeat)
	case ModeVictory:
		s.audio.Play(CueVictory)
	}
	return true
}

func (s *Session) clearEntities() {
	s.enemies = nil
	s.explosions = nil
	s.slot.Reset()
	s.swarm.Reset()
}

// sweep drops every entity marked destroyed.
func (s *Session) sweep() {
	s.enemies = object.Compact(s.enemies)
	s.explosions = object.Compact(s.explosions)
	s.slot.Sweep()
	s.swarm.Sweep()
}
