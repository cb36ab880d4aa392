package shadows4d

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

const jsonScene = `{
  "light": {"position": {"X": 1, "Y": 6, "Z": -1}, "w": 4},
  "shapes3d": [
    {"name": "tri", "vertices": [{"X":0,"Y":1,"Z":0},{"X":1,"Y":1,"Z":0},{"X":0,"Y":2,"Z":0}],
     "edges": [[0,1],[1,2],[2,0]], "scale": 2, "center": {"X":0,"Y":0,"Z":0}}
  ],
  "shapes4d": [
    {"name": "t", "kind": "tesseract", "center": {"X":0,"Y":2,"Z":0,"W":1}, "active": false}
  ],
  "render": {"size": 64, "frames": 3}
}`

const yamlScene = `
light:
  position: {x: 1, y: 6, z: -1}
  w: 4
shapes3d:
  - name: tri
    vertices:
      - {x: 0, y: 1, z: 0}
      - {x: 1, y: 1, z: 0}
      - {x: 0, y: 2, z: 0}
    edges: [[0, 1], [1, 2], [2, 0]]
    scale: 2
shapes4d:
  - name: t
    kind: tesseract
    center: {x: 0, y: 2, z: 0, w: 1}
    active: false
render:
  size: 64
  frames: 3
`

const tomlScene = `
[light]
position = { x = 1.0, y = 6.0, z = -1.0 }
w = 4.0

[[shapes3d]]
name = "tri"
vertices = [ { x = 0.0, y = 1.0, z = 0.0 }, { x = 1.0, y = 1.0, z = 0.0 }, { x = 0.0, y = 2.0, z = 0.0 } ]
edges = [ [0, 1], [1, 2], [2, 0] ]
scale = 2.0

[[shapes4d]]
name = "t"
kind = "tesseract"
center = { x = 0.0, y = 2.0, z = 0.0, w = 1.0 }
active = false

[render]
size = 64
frames = 3
`

func TestLoadConfigFormats(t *testing.T) {
	for _, tc := range []struct{ name, body string }{
		{"scene.json", jsonScene},
		{"scene.yaml", yamlScene},
		{"scene.yml", yamlScene},
		{"scene.toml", tomlScene},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeFile(t, tc.name, tc.body))
			require.NoError(t, err)

			pos, w := cfg.Light.Build()
			assert.Equal(t, Vector3{1, 6, -1}, pos)
			assert.Equal(t, 4.0, w)

			require.Len(t, cfg.Shapes3D, 1)
			s := cfg.Shapes3D[0]
			assert.Equal(t, "tri", s.Name)
			assert.Equal(t, []Vector3{{0, 1, 0}, {1, 1, 0}, {0, 2, 0}}, s.Vertices)
			assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 0}}, s.Edges)
			assert.Equal(t, 2.0, s.Scale)

			require.Len(t, cfg.Shapes4D, 1)
			assert.Equal(t, "tesseract", cfg.Shapes4D[0].Kind)
			assert.Equal(t, Vector4{0, 2, 0, 1}, cfg.Shapes4D[0].Center)
			require.NotNil(t, cfg.Shapes4D[0].Active)
			assert.False(t, *cfg.Shapes4D[0].Active)

			// explicit values kept, the rest defaulted
			assert.Equal(t, 64, cfg.Render.Size)
			assert.Equal(t, 3, cfg.Render.Frames)
			assert.Equal(t, GIFDelay, cfg.Render.Delay)
			assert.Equal(t, GIFOut, cfg.Render.Out)
			assert.Equal(t, Real(ViewExtent), cfg.Render.Extent)
			assert.Equal(t, Real(StrokeWidth), cfg.Render.Stroke)

			reg, err := BuildScene(cfg)
			require.NoError(t, err)
			assert.Equal(t, 2, reg.Len())
			assert.True(t, reg.IsActive(0))
			assert.False(t, reg.IsActive(1))
			tri := reg.Active3D()[0]
			near3(t, Vector3{0, 2, 0}, tri.Vertices()[0])
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "scene.ini", "[light]"))
	require.ErrorIs(t, err, ErrConfigFormat)

	_, err = LoadConfig(writeFile(t, "empty.json", `{"light": {"position": {"X": 0, "Y": 5, "Z": 0}}}`))
	require.ErrorIs(t, err, ErrNoShapes)

	_, err = LoadConfig(writeFile(t, "broken.yaml", "shapes3d: [: :"))
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLightDefaultW(t *testing.T) {
	pos, w := LightCfg{Position: Vector3{0, 5, 0}}.Build()
	assert.Equal(t, Vector3{0, 5, 0}, pos)
	assert.Equal(t, Real(DefaultLightW), w)

	zero := 0.0
	_, w = LightCfg{W: &zero}.Build()
	assert.Zero(t, w, "an explicit zero selects the isometric shadow")
}

func TestShapeCfgBuild(t *testing.T) {
	L := NewLight(Vector3{0, 5, 0}, DefaultLightW)

	_, err := Shape3DCfg{Name: "x", Kind: "cube", Vertices: []Vector3{{}}}.Build(L)
	assert.Error(t, err, "kind and vertices together")
	_, err = Shape3DCfg{Name: "x", Kind: "icosahedron"}.Build(L)
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = Shape4DCfg{Name: "x", Kind: "cell120"}.Build(L)
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = Shape3DCfg{Name: "x", Vertices: []Vector3{{}, {1, 0, 0}}, Edges: [][]int{{0}}}.Build(L)
	assert.ErrorIs(t, err, ErrEdgeShape)
	_, err = Shape4DCfg{Name: "x", Vertices: []Vector4{{}}, Edges: [][]int{{0, 3}}}.Build(L)
	assert.ErrorIs(t, err, ErrEdgeIndex)
	_, err = Shape3DCfg{Name: "x", Kind: "cube", Scale: -1}.Build(L)
	assert.ErrorIs(t, err, ErrScale)

	// the initial rotation is baked into the rest pose
	s, err := Shape3DCfg{Name: "c", Kind: "cube", Center: Vector3{0, 2, 0}, RotDeg: Rot3Deg{Y: 45}}.Build(L)
	require.NoError(t, err)
	V, _, err := Polytope3("cube")
	require.NoError(t, err)
	m := Rotation3D(Rot3Deg{Y: 45}.Radians())
	for i, r := range s.RestPose() {
		near3(t, m.MulVec(V[i]), r)
	}

	s4, err := Shape4DCfg{Name: "t", Kind: "cell16", Scale: 0.5, RotDeg: Rot4Deg{ZW: 30}}.Build(L)
	require.NoError(t, err)
	V4, _, err := Polytope4("cell16")
	require.NoError(t, err)
	m4 := Rotation4D(Rot4Deg{ZW: 30}.Radians())
	for i, r := range s4.RestPose() {
		near4(t, m4.MulVec(V4[i].Mul(0.5)), r)
	}
}

func TestSceneFiles(t *testing.T) {
	for _, name := range []string{"config.json", "config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadConfig(filepath.Join("..", "..", "scenes", name))
			require.NoError(t, err)
			reg, err := BuildScene(cfg)
			require.NoError(t, err)
			assert.NotEmpty(t, reg.Active())
		})
	}
}
