package shadows4d

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
)

var (
	background = color.NRGBA{R: 245, G: 245, B: 240, A: 255}
	groundGrid = color.NRGBA{R: 215, G: 215, B: 210, A: 255}
)

// canvas draws ground-plane geometry into an image seen from above:
// +x to the right, +z up, the origin in the middle.
type canvas struct {
	img    *image.NRGBA
	z      *vector.Rasterizer
	size   int
	ppu    float32 // pixels per world unit
	stroke float32
}

func newCanvas(rc RenderCfg) *canvas {
	img := image.NewNRGBA(image.Rect(0, 0, rc.Size, rc.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	c := &canvas{
		img:    img,
		z:      vector.NewRasterizer(rc.Size, rc.Size),
		size:   rc.Size,
		ppu:    float32(Real(rc.Size) / (2 * rc.Extent)),
		stroke: float32(rc.Stroke),
	}
	DebugLogOnce("Canvas %dx%d, %.2f px per unit, extent %.2f", rc.Size, rc.Size, c.ppu, rc.Extent)
	return c
}

func (c *canvas) toPixel(p Vector2) (float32, float32) {
	h := float32(c.size) / 2
	return h + float32(p.X)*c.ppu, h - float32(p.Y)*c.ppu
}

func (c *canvas) fill(col color.Color) {
	c.z.ClosePath()
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	c.z.Reset(c.size, c.size)
}

// line strokes a segment as a quad of width c.stroke.
func (c *canvas) line(a, b Vector2, col color.Color) {
	x0, y0 := c.toPixel(a)
	x1, y1 := c.toPixel(b)
	dx, dy := x1-x0, y1-y0
	l := math32.Hypot(dx, dy)
	if l < 1e-3 {
		return
	}
	hw := math32.Max(c.stroke, 1) / 2
	nx, ny := -dy/l*hw, dx/l*hw
	c.z.MoveTo(x0+nx, y0+ny)
	c.z.LineTo(x1+nx, y1+ny)
	c.z.LineTo(x1-nx, y1-ny)
	c.z.LineTo(x0-nx, y0-ny)
	c.fill(col)
}

// dot draws a square marker centred on p; higher points get bigger markers.
func (c *canvas) dot(p Vector2, scale Real, col color.Color) {
	x, y := c.toPixel(p)
	r := math32.Max(c.stroke, 1) * (1.5 + float32(clamp01(scale))*1.5)
	c.z.MoveTo(x-r, y-r)
	c.z.LineTo(x+r, y-r)
	c.z.LineTo(x+r, y+r)
	c.z.LineTo(x-r, y+r)
	c.fill(col)
}

func (c *canvas) grid() {
	half := Real(c.size) / 2 / Real(c.ppu)
	for u := math.Ceil(-half); u <= half; u++ {
		c.line(Vector2{u, -half}, Vector2{u, half}, groundGrid)
		c.line(Vector2{-half, u}, Vector2{half, u}, groundGrid)
	}
}

func mix(a, b color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: uint8((int(a.A) + int(b.A)) / 2),
	}
}

// flat is a shadow outline on the ground ready for drawing.
type flat struct {
	points []Vector2
	scales []Real
	edges  []Edge
}

func (f flat) draw(c *canvas) {
	for _, e := range f.edges {
		sa, sb := f.scales[e[0]], f.scales[e[1]]
		if sa == Occluded || sb == Occluded {
			continue
		}
		c.line(f.points[e[0]], f.points[e[1]], mix(DepthColor(sa), DepthColor(sb)))
	}
	for i, p := range f.points {
		if f.scales[i] == Occluded {
			continue
		}
		c.dot(p, f.scales[i], DepthColor(f.scales[i]))
	}
}

func flat3(s *Shape3D) flat {
	return flat{points: s.Shadow(), scales: s.DepthScales(), edges: s.Edges()}
}

// flat4 casts the 3D shadow of a 4D shape onto the ground with the same light.
// Depth colouring keeps the 4D depth scale; a point hidden at either step is dropped.
func flat4(s *Shape4D, light Vector3) flat {
	shadow, scales := s.Shadow(), s.DepthScales()
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range shadow {
		if scales[i] == Occluded {
			continue
		}
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	f := flat{points: make([]Vector2, len(shadow)), scales: scales, edges: s.Edges()}
	for i, p := range shadow {
		if scales[i] == Occluded {
			continue
		}
		var sc Real
		f.points[i], sc = Project3(light, p, minY, maxY)
		if sc == Occluded {
			f.scales[i] = Occluded
		}
	}
	return f
}

// RenderFrame draws the ground shadows of every active shape of reg.
func RenderFrame(reg *Registry, rc RenderCfg) *image.NRGBA {
	c := newCanvas(rc)
	c.grid()
	L := reg.Light.State()
	for _, s := range reg.Active3D() {
		flat3(s).draw(c)
	}
	for _, s := range reg.Active4D() {
		flat4(s, L.Position).draw(c)
	}
	lp := Vector2{L.Position.X, L.Position.Z}
	c.dot(lp, 1, LightColor(L.W))
	return c.img
}

// Animate renders rc.Frames frames, turning each active shape by frame·spin
// away from its rest pose, and hands every frame to emit. Shapes are returned
// to their rest pose afterwards.
func Animate(reg *Registry, rc RenderCfg, emit func(k int, img *image.NRGBA) error) error {
	spin3, spin4 := rc.Spin3Deg.Radians(), rc.Spin4Deg.Radians()
	defer func() {
		for _, s := range reg.Active3D() {
			s.Rotate(Rot3{})
		}
		for _, s := range reg.Active4D() {
			s.Rotate(Rot4{})
		}
	}()
	step := imax(1, rc.Frames/10)
	for k := 0; k < rc.Frames; k++ {
		if k%step == 0 {
			DebugLog("Frame %d/%d", k+1, rc.Frames)
		}
		for _, s := range reg.Active3D() {
			s.Rotate(spin3.Scale(Real(k)))
		}
		for _, s := range reg.Active4D() {
			s.Rotate(spin4.Scale(Real(k)))
		}
		if err := emit(k, RenderFrame(reg, rc)); err != nil {
			return err
		}
	}
	return nil
}
