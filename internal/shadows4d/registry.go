package shadows4d

import "fmt"

// ShapeID identifies a shape within its Registry.
type ShapeID int

type registryEntry struct {
	shape  Shape
	active bool
}

// Registry holds the shapes of a scene with a per-shape active flag, plus the
// light they share. Moving the light refreshes every active shape.
// A Registry is not safe for concurrent use; its Light is.
type Registry struct {
	Light   *Light
	entries []registryEntry
}

func NewRegistry(light *Light) *Registry {
	return &Registry{Light: light}
}

// Add registers a shape and returns its id.
func (r *Registry) Add(s Shape, active bool) ShapeID {
	r.entries = append(r.entries, registryEntry{shape: s, active: active})
	return ShapeID(len(r.entries) - 1)
}

func (r *Registry) Len() int { return len(r.entries) }

func (r *Registry) check(id ShapeID) error {
	if id < 0 || int(id) >= len(r.entries) {
		return fmt.Errorf("shape id %d not in registry of %d", id, len(r.entries))
	}
	return nil
}

// Shape returns the shape registered under id.
func (r *Registry) Shape(id ShapeID) (Shape, error) {
	if err := r.check(id); err != nil {
		return nil, err
	}
	return r.entries[id].shape, nil
}

// SetActive shows or hides a shape. A shape becoming active is refreshed
// against the current light, which may have moved while it was hidden.
func (r *Registry) SetActive(id ShapeID, active bool) error {
	if err := r.check(id); err != nil {
		return err
	}
	e := &r.entries[id]
	if active && !e.active {
		e.shape.RefreshShadow()
		e.shape.RefreshEdges()
	}
	e.active = active
	return nil
}

func (r *Registry) IsActive(id ShapeID) bool {
	return r.check(id) == nil && r.entries[id].active
}

// Active returns the active shapes in registration order.
func (r *Registry) Active() []Shape {
	var out []Shape
	for _, e := range r.entries {
		if e.active {
			out = append(out, e.shape)
		}
	}
	return out
}

func (r *Registry) Active3D() []*Shape3D {
	var out []*Shape3D
	for _, s := range r.Active() {
		if s3, ok := s.(*Shape3D); ok {
			out = append(out, s3)
		}
	}
	return out
}

func (r *Registry) Active4D() []*Shape4D {
	var out []*Shape4D
	for _, s := range r.Active() {
		if s4, ok := s.(*Shape4D); ok {
			out = append(out, s4)
		}
	}
	return out
}

// SwapDimensions flips the scene between showing its 3D shapes and showing
// its 4D shapes. Nothing happens unless the scene has both.
func (r *Registry) SwapDimensions() {
	var has3, has4, any3 bool
	for _, e := range r.entries {
		switch e.shape.Dim() {
		case 3:
			has3 = true
			any3 = any3 || e.active
		case 4:
			has4 = true
		}
	}
	if !has3 || !has4 {
		return
	}
	for i, e := range r.entries {
		_ = r.SetActive(ShapeID(i), (e.shape.Dim() == 3) != any3)
	}
	DebugLog("Swapped dimensions: 3D active=%v", !any3)
}

// LightMoved recomputes shadow then edges of every active shape and returns
// how many shapes were refreshed.
func (r *Registry) LightMoved() int {
	n := 0
	for _, e := range r.entries {
		if !e.active {
			continue
		}
		e.shape.RefreshShadow()
		e.shape.RefreshEdges()
		n++
	}
	return n
}

// MoveLight moves the light and refreshes the active shapes if it changed.
func (r *Registry) MoveLight(pos Vector3, w Real) bool {
	if !r.Light.Set(pos, w) {
		return false
	}
	n := r.LightMoved()
	DebugLog("Light moved to %+v w=%.3f, refreshed %d shapes", pos, w, n)
	return true
}
