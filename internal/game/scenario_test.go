package game

import (
	"testing"

	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

func TestGroundImpact(t *testing.T) {
	s, audio, ui := playing(t, WithControlMode(ControlPointer))
	addEnemy(s, physics.Vec(100, 0), physics.Vec(0, 2))

	ground := s.field.GroundY()
	var last physics.Vector
	for i := 0; i < 1000 && len(s.enemies) > 0; i++ {
		last = s.enemies[0].Pos
		s.Update(object.ReferenceFrame)
	}

	if s.Stats().Hits != 1 {
		t.Fatalf("hits = %d, want 1", s.Stats().Hits)
	}
	if len(s.enemies) != 0 {
		t.Error("grounded enemy should be removed")
	}
	snap := s.Snapshot()
	if len(snap.Explosions) != 1 {
		t.Fatalf("explosions = %d, want 1", len(snap.Explosions))
	}
	impact := physics.Vec(100, last.Y+2)
	if impact.Y < ground {
		t.Fatalf("impact at y=%v above ground %v", impact.Y, ground)
	}
	// The explosion has run one frame, so its first particle moved along +x only.
	p := snap.Explosions[0].Particles[0]
	if p.Pos.Y != impact.Y || p.Pos.X <= impact.X {
		t.Errorf("explosion particle at %v, want burst from %v", p.Pos, impact)
	}
	if p.Tint != object.TintImpact {
		t.Errorf("tint = %s, want impact", p.Tint.Hex())
	}
	if audio.count(CueImpact) != 1 {
		t.Errorf("impact cues = %d, want 1", audio.count(CueImpact))
	}
	if got := ui.stats[len(ui.stats)-1]; got.Hits != 1 {
		t.Errorf("last reported stats = %+v", got)
	}
}

func TestKeyboardIntercept(t *testing.T) {
	s, audio, _ := playing(t)
	s.slot.missile = object.NewPlayerMissile(physics.Vec(200, 200))
	addEnemy(s, physics.Vec(200, 200), physics.Vec(0, 0))

	s.Update(object.ReferenceFrame)

	if len(s.enemies) != 0 {
		t.Error("enemy should be removed")
	}
	if got := s.Stats(); got.Score != 100 || got.Intercepts != 1 {
		t.Errorf("stats = %+v, want score 100 intercepts 1", got)
	}
	snap := s.Snapshot()
	if len(snap.Players) != 0 {
		t.Error("player missile should be absent after the intercept")
	}
	if len(snap.Explosions) != 1 || snap.Explosions[0].Particles[0].Tint != object.TintIntercept {
		t.Error("intercept explosion expected")
	}
	if audio.count(CueIntercept) != 1 {
		t.Errorf("intercept cues = %d, want 1", audio.count(CueIntercept))
	}

	// The slot is refilled on the next frame.
	s.Update(object.ReferenceFrame)
	if len(s.Snapshot().Players) != 1 {
		t.Error("player missile should be relaunched")
	}
}

func TestKeyboardKillsAtMostOneEnemyPerFrame(t *testing.T) {
	s, _, _ := playing(t)
	s.slot.missile = object.NewPlayerMissile(physics.Vec(300, 300))
	older := addEnemy(s, physics.Vec(310, 300), physics.Vec(0, 0))
	newer := addEnemy(s, physics.Vec(290, 300), physics.Vec(0, 0))

	s.Update(0)

	if !newer.IsDestroyed() {
		t.Error("newest enemy in range should be destroyed")
	}
	if older.IsDestroyed() {
		t.Error("older enemy should survive the frame")
	}
	if s.Stats().Intercepts != 1 {
		t.Errorf("intercepts = %d, want 1", s.Stats().Intercepts)
	}
}

func TestKeyboardHitboxRadius(t *testing.T) {
	tests := []struct {
		name   string
		hitbox Hitbox
		dist   float64
		hit    bool
	}{
		{"sprite inside", HitboxSprite, 60, true},
		{"sprite boundary", HitboxSprite, 65, false},
		{"primitive inside", HitboxPrimitive, 54, true},
		{"primitive outside", HitboxPrimitive, 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := playing(t, WithHitbox(tt.hitbox))
			s.slot.missile = object.NewPlayerMissile(physics.Vec(300, 300))
			addEnemy(s, physics.Vec(300+tt.dist, 300), physics.Vec(0, 0))

			s.Update(0)

			if got := s.Stats().Intercepts == 1; got != tt.hit {
				t.Errorf("hit = %v, want %v", got, tt.hit)
			}
		})
	}
}

func TestPointerCollisionMatchesEachProjectileOnce(t *testing.T) {
	s, _, _ := playing(t, WithControlMode(ControlPointer))
	e0 := addEnemy(s, physics.Vec(300, 300), physics.Vec(0, 0))
	e1 := addEnemy(s, physics.Vec(310, 300), physics.Vec(0, 0))
	i0 := addInterceptor(t, s, physics.Vec(320, 300))
	i1 := addInterceptor(t, s, physics.Vec(600, 300))

	s.Update(0)

	if !e1.IsDestroyed() || !i0.IsDestroyed() {
		t.Error("newest enemy and the interceptor in range should both be destroyed")
	}
	if e0.IsDestroyed() {
		t.Error("an interceptor must not be matched twice")
	}
	if i1.IsDestroyed() {
		t.Error("out-of-range interceptor should survive")
	}
	if s.Stats().Intercepts != 1 {
		t.Errorf("intercepts = %d, want 1", s.Stats().Intercepts)
	}
	if len(s.enemies) != 1 || len(s.swarm.interceptors) != 1 {
		t.Errorf("after sweep: %d enemies, %d interceptors", len(s.enemies), len(s.swarm.interceptors))
	}
}

func TestPointerCollisionPrefersNewest(t *testing.T) {
	s, _, _ := playing(t, WithControlMode(ControlPointer))
	e0 := addEnemy(s, physics.Vec(300, 300), physics.Vec(0, 0))
	e1 := addEnemy(s, physics.Vec(310, 300), physics.Vec(0, 0))
	i0 := addInterceptor(t, s, physics.Vec(340, 300))
	i1 := addInterceptor(t, s, physics.Vec(305, 300))

	s.Update(0)

	if !e0.IsDestroyed() || !e1.IsDestroyed() || !i0.IsDestroyed() || !i1.IsDestroyed() {
		t.Error("both pairs should collide")
	}
	if s.Stats().Intercepts != 2 {
		t.Errorf("intercepts = %d, want 2", s.Stats().Intercepts)
	}
	// e1 is matched first and takes i1, the newest interceptor in range.
	if got, want := s.explosions[0].Particles[0].Pos, physics.Vec(307.5, 300); got != want {
		t.Errorf("first explosion at %v, want %v", got, want)
	}
	if got, want := s.explosions[1].Particles[0].Pos, physics.Vec(320, 300); got != want {
		t.Errorf("second explosion at %v, want %v", got, want)
	}
}

func TestPointerCollisionConsumesNewestInterceptor(t *testing.T) {
	s, _, _ := playing(t, WithControlMode(ControlPointer))
	e := addEnemy(s, physics.Vec(300, 300), physics.Vec(0, 0))
	older := addInterceptor(t, s, physics.Vec(320, 300))
	newer := addInterceptor(t, s, physics.Vec(280, 300))

	s.Update(0)

	if !e.IsDestroyed() || !newer.IsDestroyed() {
		t.Error("enemy should pair with the newest interceptor in range")
	}
	if older.IsDestroyed() {
		t.Error("older interceptor should survive")
	}
	if len(s.swarm.interceptors) != 1 || s.swarm.interceptors[0] != older {
		t.Errorf("after sweep: %d interceptors", len(s.swarm.interceptors))
	}
}

func TestPointerRadius(t *testing.T) {
	s, _, _ := playing(t, WithControlMode(ControlPointer))
	addEnemy(s, physics.Vec(300, 300), physics.Vec(0, 0))
	addInterceptor(t, s, physics.Vec(345, 300))

	s.Update(0)
	if s.Stats().Intercepts != 0 {
		t.Error("distance equal to the radius is not a hit")
	}
}

func TestVictory(t *testing.T) {
	s, audio, ui := playing(t)
	s.stats.Intercepts = TargetIntercepts - 1
	s.stats.Score = s.stats.Intercepts * InterceptScore
	s.slot.missile = object.NewPlayerMissile(physics.Vec(200, 200))
	addEnemy(s, physics.Vec(200, 200), physics.Vec(0, 0))
	addEnemy(s, physics.Vec(700, 100), physics.Vec(0, 2))

	s.Update(object.ReferenceFrame)

	if s.Mode() != ModeVictory {
		t.Fatalf("mode = %v, want victory", s.Mode())
	}
	if audio.count(CueVictory) != 1 {
		t.Errorf("victory cues = %d, want 1", audio.count(CueVictory))
	}
	last := ui.modes[len(ui.modes)-1]
	if last.to != ModeVictory || last.stats.Intercepts != TargetIntercepts || last.stats.Score != 2000 {
		t.Errorf("mode change = %+v", last)
	}

	frozen := s.Snapshot()
	for i := 0; i < 30; i++ {
		s.Update(object.ReferenceFrame)
	}
	after := s.Snapshot()
	if len(after.Enemies) != 1 || after.Enemies[0].Pos != frozen.Enemies[0].Pos {
		t.Error("entities should be frozen after victory")
	}
	if len(after.Explosions) != len(frozen.Explosions) ||
		after.Explosions[0].Life != frozen.Explosions[0].Life {
		t.Error("explosions should be frozen after victory")
	}
}

func TestDefeat(t *testing.T) {
	s, audio, ui := playing(t, WithControlMode(ControlPointer))
	s.stats.Hits = MaxHits - 1
	addEnemy(s, physics.Vec(100, 544), physics.Vec(0, 2))
	addEnemy(s, physics.Vec(200, 544), physics.Vec(0, 2))
	addEnemy(s, physics.Vec(300, 100), physics.Vec(0, 2))

	s.Update(object.ReferenceFrame)

	if s.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, want gameOver", s.Mode())
	}
	if s.Stats().Hits != MaxHits {
		t.Errorf("hits = %d, want %d; impacts after defeat must not count", s.Stats().Hits, MaxHits)
	}
	if audio.count(CueDefeat) != 1 {
		t.Errorf("defeat cues = %d, want 1", audio.count(CueDefeat))
	}
	if last := ui.modes[len(ui.modes)-1]; last.from != ModePlaying || last.to != ModeGameOver {
		t.Errorf("mode change = %+v", last)
	}

	s.spawner.interval = InitialSpawnInterval
	timer := s.spawner.timer
	enemies := len(s.enemies)
	for i := 0; i < 300; i++ {
		s.Update(object.ReferenceFrame)
	}
	if len(s.enemies) != enemies {
		t.Error("no spawns after defeat")
	}
	if s.Stats().Hits != MaxHits {
		t.Error("no impacts after defeat")
	}
	if s.spawner.timer != timer {
		t.Errorf("spawn timer advanced from %v to %v after defeat", timer, s.spawner.timer)
	}
}
