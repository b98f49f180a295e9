// Package scene holds what both terminal frontends draw besides the
// simulation: the decorative backdrop, the palette and the screen text.
package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/irondome/internal/object"
	"github.com/tomz197/irondome/internal/physics"
)

// Palette.
const (
	ColorSky          object.Tint = 0x0a0a2e
	ColorStar         object.Tint = 0xffffff
	ColorBuilding     object.Tint = 0x1a1a2e
	ColorWindow       object.Tint = 0xffa500
	ColorWindowBright object.Tint = 0xffff00
	ColorGround       object.Tint = 0x2e4a2e
	ColorEnemy        object.Tint = 0xff4444
	ColorEnemyCore    object.Tint = 0xff6666
	ColorDefender     object.Tint = 0x44ff44
	ColorDefenderCore object.Tint = 0x88ff88
	ColorLauncher     object.Tint = 0x4a90e2
	ColorBarrel       object.Tint = 0x357abd
	ColorTarget       object.Tint = 0x888888
)

const (
	starCount      = 50
	starSkyShare   = 0.7
	buildingCount  = 15
	buildingGap    = 2
	buildingMinH   = 20
	buildingRangeH = 60
	windowCol      = 10
	windowRow      = 15
	windowW        = 4
	windowH        = 6
	windowLitShare = 0.7
	windowBright   = 0.2
)

// Star is a twinkling point in the sky.
type Star struct {
	Pos   physics.Vector
	Size  float64
	Phase float64
}

// Brightness returns the star's alpha after elapsed time, in [0,1].
func (s Star) Brightness(elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	return 0.5 + 0.5*math.Sin((s.Phase+ms/50)/100)
}

// Window is a lit window, relative to its building's top-left corner.
type Window struct {
	X, Y float64
	Tint object.Tint
}

// Building is one block of the skyline.
type Building struct {
	X, Y          float64
	Width, Height float64
	Windows       []Window
}

// Backdrop is the static sky and skyline behind the play field.
type Backdrop struct {
	Stars     []Star
	Buildings []Building
}

// NewBackdrop generates a sky and skyline for the field.
func NewBackdrop(field object.Field, rng *rand.Rand) *Backdrop {
	b := &Backdrop{
		Stars:     make([]Star, 0, starCount),
		Buildings: make([]Building, 0, buildingCount),
	}

	for i := 0; i < starCount; i++ {
		b.Stars = append(b.Stars, Star{
			Pos:   physics.Vec(rng.Float64()*field.Width, rng.Float64()*field.Height*starSkyShare),
			Size:  rng.Float64()*2 + 1,
			Phase: rng.Float64() * 100,
		})
	}

	slot := field.Width / buildingCount
	for i := 0; i < buildingCount; i++ {
		h := rng.Float64()*buildingRangeH + buildingMinH
		w := slot - buildingGap
		b.Buildings = append(b.Buildings, Building{
			X:       float64(i) * slot,
			Y:       field.Height - h,
			Width:   w,
			Height:  h,
			Windows: litWindows(w, h, rng),
		})
	}
	return b
}

func litWindows(w, h float64, rng *rand.Rand) []Window {
	rows := int(h / windowRow)
	cols := int(w / windowCol)

	var windows []Window
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if rng.Float64() >= windowLitShare {
				continue
			}
			tint := ColorWindow
			if rng.Float64() < windowBright {
				tint = ColorWindowBright
			}
			windows = append(windows, Window{
				X:    float64(col*windowCol + 3),
				Y:    float64(row*windowRow + 5),
				Tint: tint,
			})
		}
	}
	return windows
}

// WindowSize returns the size of a lit window.
func WindowSize() (w, h float64) {
	return windowW, windowH
}

// TrailAlpha is the alpha for trail point i of n, oldest faintest.
func TrailAlpha(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i+1) / float64(n)
}

// Blend mixes over onto base; alpha 0 is base, 1 is over.
func Blend(base, over object.Tint, alpha float64) object.Tint {
	alpha = physics.Clamp(alpha, 0, 1)
	br, bg, bb := base.RGB()
	or, og, ob := over.RGB()
	mix := func(b, o uint8) object.Tint {
		return object.Tint(math.Round(float64(b) + (float64(o)-float64(b))*alpha))
	}
	return mix(br, or)<<16 | mix(bg, og)<<8 | mix(bb, ob)
}
