package object

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/irondome/internal/physics"
)

var testField = Field{Width: 1000, Height: 625}

func frameCtx() UpdateContext {
	return UpdateContext{Delta: ReferenceFrame, Field: testField}
}

func TestFieldGeometry(t *testing.T) {
	if got := testField.GroundY(); got != 545 {
		t.Errorf("GroundY = %v, want 545", got)
	}
	if got := testField.LaunchPoint(); got != physics.Vec(500, 525) {
		t.Errorf("LaunchPoint = %v, want (500,525)", got)
	}
	if !testField.Contains(physics.Vec(1000, 625)) {
		t.Error("corner should be inside")
	}
	if testField.Contains(physics.Vec(-0.1, 10)) {
		t.Error("negative x should be outside")
	}
}

func TestUpdateContextStep(t *testing.T) {
	ctx := UpdateContext{Delta: 2 * ReferenceFrame}
	if math.Abs(ctx.Step()-2) > 1e-9 {
		t.Errorf("Step = %v, want 2", ctx.Step())
	}
	ctx.Delta = 500 * time.Millisecond
	if ctx.Seconds() != 0.5 {
		t.Errorf("Seconds = %v, want 0.5", ctx.Seconds())
	}
}

func TestTrailIsBoundedFIFO(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Push(physics.Vec(float64(i), 0))
	}
	pts := tr.Points()
	if len(pts) != 3 {
		t.Fatalf("trail length = %d, want 3", len(pts))
	}
	for i, want := range []float64{2, 3, 4} {
		if pts[i].X != want {
			t.Errorf("pts[%d].X = %v, want %v", i, pts[i].X, want)
		}
	}

	pts[0].X = 99
	if tr.Points()[0].X == 99 {
		t.Error("Points should return a copy")
	}
}

func TestEnemyMissileReachesGround(t *testing.T) {
	m := NewEnemyMissile(physics.Vec(100, 0), physics.Vec(100, 625), 2)
	if m.Vel != physics.Vec(0, 2) {
		t.Fatalf("Vel = %v, want (0,2)", m.Vel)
	}

	frames := 0
	for !m.Update(frameCtx()) {
		frames++
		if frames > 1000 {
			t.Fatal("missile never reached the ground")
		}
		if m.Trail.Len() > EnemyTrailLength {
			t.Fatalf("trail length %d exceeds %d", m.Trail.Len(), EnemyTrailLength)
		}
	}
	if m.Pos.Y < testField.GroundY() {
		t.Errorf("grounded at y=%v, above ground line", m.Pos.Y)
	}
	if frames+1 != 273 {
		t.Errorf("grounded after %d frames, want 273", frames+1)
	}
}

func TestPlayerSteering(t *testing.T) {
	tests := []struct {
		name  string
		dirs  Directions
		vel   physics.Vector
		angle float64
	}{
		{"idle keeps heading", Directions{}, physics.Vec(0, 0), -math.Pi / 2},
		{"right", Directions{Right: true}, physics.Vec(5, 0), 0},
		{"down", Directions{Down: true}, physics.Vec(0, 5), math.Pi / 2},
		{"up-left diagonal", Directions{Up: true, Left: true}, physics.Vec(-5/math.Sqrt2, -5/math.Sqrt2), -3 * math.Pi / 4},
		{"opposites cancel", Directions{Left: true, Right: true}, physics.Vec(0, 0), -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayerMissile(testField.LaunchPoint())
			p.Steer(tt.dirs)
			if math.Abs(p.Vel.X-tt.vel.X) > 1e-9 || math.Abs(p.Vel.Y-tt.vel.Y) > 1e-9 {
				t.Errorf("Vel = %v, want %v", p.Vel, tt.vel)
			}
			if math.Abs(p.Angle-tt.angle) > 1e-9 {
				t.Errorf("Angle = %v, want %v", p.Angle, tt.angle)
			}
		})
	}
}

func TestPlayerClampedToField(t *testing.T) {
	p := NewPlayerMissile(testField.LaunchPoint())
	p.Steer(Directions{Up: true, Left: true})
	for i := 0; i < 500; i++ {
		p.Update(frameCtx())
	}
	if p.Pos != physics.Vec(PlayerWidth/2, PlayerHeight/2) {
		t.Errorf("Pos = %v, want top-left clamp", p.Pos)
	}
	if p.Trail.Len() != PlayerTrailLength {
		t.Errorf("trail length = %d, want %d", p.Trail.Len(), PlayerTrailLength)
	}
	// Trail is recorded after the move.
	if last := p.Trail.Points()[p.Trail.Len()-1]; last != p.Pos {
		t.Errorf("last trail point = %v, want current position %v", last, p.Pos)
	}
}

func TestInterceptorArrives(t *testing.T) {
	origin := testField.LaunchPoint()
	target := physics.Vec(500, 300)
	ic, ok := NewInterceptor(origin, target)
	if !ok {
		t.Fatal("NewInterceptor rejected a valid target")
	}
	if math.Abs(ic.Vel.Length()-InterceptorSpeed) > 1e-9 {
		t.Errorf("speed = %v, want %v", ic.Vel.Length(), InterceptorSpeed)
	}

	frames := 0
	for !ic.Update(frameCtx()) {
		frames++
		if frames > 100 {
			t.Fatal("interceptor never arrived")
		}
	}
	if !physics.Within(ic.Pos, target, InterceptorArrivalRadius) {
		t.Errorf("expired at %v, not near target", ic.Pos)
	}
	if ic.Trail.Len() > InterceptorTrailLength {
		t.Errorf("trail length %d exceeds %d", ic.Trail.Len(), InterceptorTrailLength)
	}
}

func TestInterceptorRejectsZeroDirection(t *testing.T) {
	p := testField.LaunchPoint()
	if _, ok := NewInterceptor(p, p); ok {
		t.Error("aim at the launch point should be rejected")
	}
}

func TestInterceptorLeavesField(t *testing.T) {
	ic, _ := NewInterceptor(physics.Vec(5, 300), physics.Vec(-500, 300))
	if !ic.Update(frameCtx()) {
		t.Error("interceptor outside the field should expire")
	}
}

func TestExplosion(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewExplosion(physics.Vec(100, 100), TintIntercept, rng)
	if len(e.Particles) != ExplosionParticles {
		t.Fatalf("particles = %d, want %d", len(e.Particles), ExplosionParticles)
	}
	for i, p := range e.Particles {
		s := p.Vel.Length()
		if s < 1 || s >= 4 {
			t.Errorf("particle %d speed %v outside [1,4)", i, s)
		}
		want := 2 * math.Pi * float64(i) / ExplosionParticles
		diff := math.Remainder(p.Vel.Angle()-want, 2*math.Pi)
		if math.Abs(diff) > 1e-9 {
			t.Errorf("particle %d angle %v, want %v", i, p.Vel.Angle(), want)
		}
		if p.Tint != TintIntercept || p.Alpha != 1 {
			t.Errorf("particle %d tint/alpha = %v/%v", i, p.Tint, p.Alpha)
		}
	}

	vy := e.Particles[0].Vel.Y
	ctx := UpdateContext{Delta: 400 * time.Millisecond, Field: testField}
	if e.Update(ctx) {
		t.Fatal("explosion expired too early")
	}
	if got := e.Particles[0].Vel.Y - vy; math.Abs(got-ParticleGravity*ctx.Step()) > 1e-9 {
		t.Errorf("gravity applied %v", got)
	}
	if math.Abs(e.Particles[0].Alpha-0.6) > 1e-9 {
		t.Errorf("alpha = %v, want 0.6", e.Particles[0].Alpha)
	}
	e.Update(ctx)
	if !e.Update(ctx) {
		t.Error("explosion should expire after its life")
	}
}

func TestTint(t *testing.T) {
	if TintImpact.Hex() != "#ff4444" {
		t.Errorf("Hex = %s", TintImpact.Hex())
	}
	r, g, b := TintSelfDestruct.RGB()
	if r != 0x44 || g != 0x44 || b != 0xff {
		t.Errorf("RGB = %x %x %x", r, g, b)
	}
}

func TestCompactPreservesOrder(t *testing.T) {
	ms := []*EnemyMissile{
		NewEnemyMissile(physics.Vec(0, 0), physics.Vec(0, 1), 1),
		NewEnemyMissile(physics.Vec(1, 0), physics.Vec(1, 1), 1),
		NewEnemyMissile(physics.Vec(2, 0), physics.Vec(2, 1), 1),
	}
	ms[1].MarkDestroyed()
	ms = Compact(ms)
	if len(ms) != 2 || ms[0].Pos.X != 0 || ms[1].Pos.X != 2 {
		t.Errorf("Compact result wrong: %d items", len(ms))
	}
}
