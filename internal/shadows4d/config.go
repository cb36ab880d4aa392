package shadows4d

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type LightCfg struct {
	Position Vector3 `json:"position" yaml:"position" toml:"position"`
	W        *Real   `json:"w,omitempty" yaml:"w,omitempty" toml:"w,omitempty"` // defaults to DefaultLightW
}

// Rotation in degrees for config files (friendlier than radians).
type Rot3Deg struct {
	X Real `json:"x" yaml:"x" toml:"x"`
	Y Real `json:"y" yaml:"y" toml:"y"`
	Z Real `json:"z" yaml:"z" toml:"z"`
}

type Rot4Deg struct {
	XY Real `json:"xy" yaml:"xy" toml:"xy"`
	XZ Real `json:"xz" yaml:"xz" toml:"xz"`
	XW Real `json:"xw" yaml:"xw" toml:"xw"`
	YZ Real `json:"yz" yaml:"yz" toml:"yz"`
	YW Real `json:"yw" yaml:"yw" toml:"yw"`
	ZW Real `json:"zw" yaml:"zw" toml:"zw"`
}

func (r Rot3Deg) Radians() Rot3 {
	const k = math.Pi / 180
	return Rot3{X: r.X * k, Y: r.Y * k, Z: r.Z * k}
}

func (r Rot4Deg) Radians() Rot4 {
	const k = math.Pi / 180
	return Rot4{
		XY: r.XY * k, XZ: r.XZ * k, XW: r.XW * k,
		YZ: r.YZ * k, YW: r.YW * k, ZW: r.ZW * k,
	}
}

// Shape3DCfg describes a 3D shape either by polytope kind or by explicit
// vertices and edges.
type Shape3DCfg struct {
	Name      string    `json:"name" yaml:"name" toml:"name"`
	Kind      string    `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Vertices  []Vector3 `json:"vertices,omitempty" yaml:"vertices,omitempty" toml:"vertices,omitempty"`
	Edges     [][]int   `json:"edges,omitempty" yaml:"edges,omitempty" toml:"edges,omitempty"`
	Scale     Real      `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`
	GrabRange Real      `json:"grabRange,omitempty" yaml:"grabRange,omitempty" toml:"grabRange,omitempty"`
	Center    Vector3   `json:"center" yaml:"center" toml:"center"`
	RotDeg    Rot3Deg   `json:"rotDeg" yaml:"rotDeg" toml:"rotDeg"`
	Active    *bool     `json:"active,omitempty" yaml:"active,omitempty" toml:"active,omitempty"`
}

type Shape4DCfg struct {
	Name     string    `json:"name" yaml:"name" toml:"name"`
	Kind     string    `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Vertices []Vector4 `json:"vertices,omitempty" yaml:"vertices,omitempty" toml:"vertices,omitempty"`
	Edges    [][]int   `json:"edges,omitempty" yaml:"edges,omitempty" toml:"edges,omitempty"`
	Scale    Real      `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`
	Center   Vector4   `json:"center" yaml:"center" toml:"center"`
	RotDeg   Rot4Deg   `json:"rotDeg" yaml:"rotDeg" toml:"rotDeg"`
	Active   *bool     `json:"active,omitempty" yaml:"active,omitempty" toml:"active,omitempty"`
}

type RenderCfg struct {
	Size     int     `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	Extent   Real    `json:"extent,omitempty" yaml:"extent,omitempty" toml:"extent,omitempty"`
	Stroke   Real    `json:"stroke,omitempty" yaml:"stroke,omitempty" toml:"stroke,omitempty"`
	Frames   int     `json:"frames,omitempty" yaml:"frames,omitempty" toml:"frames,omitempty"`
	Delay    int     `json:"delay,omitempty" yaml:"delay,omitempty" toml:"delay,omitempty"`
	Out      string  `json:"out,omitempty" yaml:"out,omitempty" toml:"out,omitempty"`
	Spin3Deg Rot3Deg `json:"spin3Deg" yaml:"spin3Deg" toml:"spin3Deg"` // per frame
	Spin4Deg Rot4Deg `json:"spin4Deg" yaml:"spin4Deg" toml:"spin4Deg"` // per frame
}

type Config struct {
	Light    LightCfg     `json:"light" yaml:"light" toml:"light"`
	Shapes3D []Shape3DCfg `json:"shapes3d,omitempty" yaml:"shapes3d,omitempty" toml:"shapes3d,omitempty"`
	Shapes4D []Shape4DCfg `json:"shapes4d,omitempty" yaml:"shapes4d,omitempty" toml:"shapes4d,omitempty"`
	Render   RenderCfg    `json:"render" yaml:"render" toml:"render"`
}

// Build returns the light's position and w, applying the default w.
func (lc LightCfg) Build() (Vector3, Real) {
	w := Real(DefaultLightW)
	if lc.W != nil {
		w = *lc.W
	}
	return lc.Position, w
}

func (sc Shape3DCfg) Build(light *Light) (*Shape3D, error) {
	verts := sc.Vertices
	var es []Edge
	if sc.Kind != "" {
		if len(verts) > 0 || len(sc.Edges) > 0 {
			return nil, fmt.Errorf("shape %q: set either kind or vertices/edges, not both", sc.Name)
		}
		var err error
		verts, es, err = Polytope3(sc.Kind)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", sc.Name, err)
		}
	} else {
		var err error
		if es, err = EdgesFromPairs(sc.Edges); err != nil {
			return nil, fmt.Errorf("shape %q: %w", sc.Name, err)
		}
	}
	scale := sc.Scale
	if scale == 0 {
		scale = 1
	}
	s, err := NewShape3D(sc.Name, verts, es, scale, sc.GrabRange, sc.Center, light)
	if err != nil {
		return nil, err
	}
	if r := sc.RotDeg.Radians(); r != (Rot3{}) {
		s.Rotate(r)
		s.Commit()
	}
	return s, nil
}

func (sc Shape4DCfg) Build(light *Light) (*Shape4D, error) {
	verts := sc.Vertices
	var es []Edge
	if sc.Kind != "" {
		if len(verts) > 0 || len(sc.Edges) > 0 {
			return nil, fmt.Errorf("shape %q: set either kind or vertices/edges, not both", sc.Name)
		}
		var err error
		verts, es, err = Polytope4(sc.Kind)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", sc.Name, err)
		}
	} else {
		var err error
		if es, err = EdgesFromPairs(sc.Edges); err != nil {
			return nil, fmt.Errorf("shape %q: %w", sc.Name, err)
		}
	}
	scale := sc.Scale
	if scale == 0 {
		scale = 1
	}
	s, err := NewShape4D(sc.Name, verts, es, scale, sc.Center, light)
	if err != nil {
		return nil, err
	}
	if r := sc.RotDeg.Radians(); r != (Rot4{}) {
		s.Rotate(r)
		s.Commit()
	}
	return s, nil
}

func isActive(p *bool) bool { return p == nil || *p }

// BuildScene constructs the light and every shape of cfg into a registry.
// Any invalid shape fails the whole scene.
func BuildScene(cfg *Config) (*Registry, error) {
	pos, w := cfg.Light.Build()
	reg := NewRegistry(NewLight(pos, w))
	for _, sc := range cfg.Shapes3D {
		s, err := sc.Build(reg.Light)
		if err != nil {
			return nil, err
		}
		reg.Add(s, isActive(sc.Active))
	}
	for _, sc := range cfg.Shapes4D {
		s, err := sc.Build(reg.Light)
		if err != nil {
			return nil, err
		}
		reg.Add(s, isActive(sc.Active))
	}
	return reg, nil
}

func decodeConfig(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%s: extension %q: %w", path, ext, ErrConfigFormat)
	}
}

// LoadConfig reads a JSON, YAML or TOML scene file, chosen by extension,
// and fills in render defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := decodeConfig(path, data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Shapes3D)+len(cfg.Shapes4D) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoShapes)
	}
	r := &cfg.Render
	if r.Size <= 0 {
		r.Size = ImageSize
	}
	if r.Extent <= 0 {
		r.Extent = ViewExtent
	}
	if r.Stroke <= 0 {
		r.Stroke = StrokeWidth
	}
	if r.Frames <= 0 {
		r.Frames = Frames
	}
	if r.Delay <= 0 {
		r.Delay = GIFDelay
	}
	if r.Out == "" {
		r.Out = GIFOut
	}
	DebugLog("Loaded config from %s: %d 3D shapes, %d 4D shapes, size=%d, frames=%d", path, len(cfg.Shapes3D), len(cfg.Shapes4D), r.Size, r.Frames)
	return &cfg, nil
}
