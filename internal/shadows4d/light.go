package shadows4d

import (
	"image/color"
	"sync"
)

// LightState is a consistent snapshot of a Light.
type LightState struct {
	Position Vector3
	W        Real // synthetic fourth coordinate used by 4D shapes
}

// Vec4 returns the light as a 4D point.
func (s LightState) Vec4() Vector4 { return s.Position.WithW(s.W) }

// Light is the movable point light shared by every shape of a scene.
// Shapes only read it; position and w are always read together.
type Light struct {
	mu    sync.RWMutex
	state LightState
}

// NewLight constructs a light at pos with the given w.
func NewLight(pos Vector3, w Real) *Light {
	L := &Light{state: LightState{Position: pos, W: w}}
	DebugLog("Created light %+v", L.state)
	return L
}

// State returns a snapshot of position and w.
func (l *Light) State() LightState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Set moves the light and reports whether anything changed.
func (l *Light) Set(pos Vector3, w Real) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state.Position == pos && l.state.W == w {
		return false
	}
	l.state = LightState{Position: pos, W: w}
	return true
}

// LightColor is the display color of the light for its w value:
// red at w=0 fading to blue at w=20.
func LightColor(w Real) color.NRGBA {
	t := clamp01(w / 20)
	return color.NRGBA{R: to8(1 - t), G: 0, B: to8(t), A: 204}
}

// DepthColor is the display color of a shadow point for its depth scale:
// blue at the bottom of the shape, red at the top.
func DepthColor(scale Real) color.NRGBA {
	s := clamp01(scale)
	return color.NRGBA{R: to8(s), G: 0, B: to8(1 - s), A: 204}
}

func to8(x Real) uint8 { return uint8(clamp01(x)*255 + 0.5) }
