package game

import "time"

// Play field in logical units (16:10).
const (
	FieldWidth  = 1000.0
	FieldHeight = 625.0
)

// Match outcome
const (
	MaxHits          = 5  // Ground impacts that end the match
	TargetIntercepts = 20 // Intercepts that win the match
)

// Scoring
const (
	InterceptScore = 100
)

// Spawning
const (
	InitialSpawnInterval = 2000 * time.Millisecond
	SpawnIntervalStep    = 50 * time.Millisecond
	MinSpawnInterval     = 800 * time.Millisecond
	EnemyMinSpeed        = 1.0 // Units per reference frame
	EnemyMaxSpeed        = 3.0
)

// Collision radii
const (
	SpriteHitRadius      = 65.0 // Keyboard mode when the host draws sprites
	PrimitiveHitRadius   = 55.0 // Keyboard mode when the host draws primitives
	InterceptorHitRadius = 45.0 // Pointer mode
)

// Timing
const (
	// MaxFrameDelta caps a single update so a stalled host cannot burst the simulation.
	MaxFrameDelta = 100 * time.Millisecond
)
