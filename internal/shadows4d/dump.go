package shadows4d

import (
	"fmt"
	"image/color"
	"io"

	"github.com/muesli/termenv"
)

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// DumpScene prints, for every active shape, each vertex with its shadow point and
// depth scale. Rows are coloured by depth scale for the given terminal profile;
// termenv.Ascii gives plain text.
func DumpScene(w io.Writer, reg *Registry, profile termenv.Profile) error {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	L := reg.Light.State()
	head := fmt.Sprintf("light (%.3f, %.3f, %.3f) w=%.3f", L.Position.X, L.Position.Y, L.Position.Z, L.W)
	if _, err := fmt.Fprintln(w, out.String(head).Foreground(out.Color(hexColor(LightColor(L.W)))).Bold()); err != nil {
		return err
	}
	row := func(scale Real, format string, args ...interface{}) error {
		s := out.String(fmt.Sprintf(format, args...))
		if scale == Occluded {
			s = s.Faint()
		} else {
			s = s.Foreground(out.Color(hexColor(DepthColor(scale))))
		}
		_, err := fmt.Fprintln(w, s)
		return err
	}
	for _, s := range reg.Active3D() {
		if _, err := fmt.Fprintf(w, "%s (3D, %d vertices, %d edges)\n", s.Name(), len(s.Vertices()), len(s.Edges())); err != nil {
			return err
		}
		shadow, scales := s.Shadow(), s.DepthScales()
		for i, v := range s.Vertices() {
			err := row(scales[i], "  %3d  (%8.3f %8.3f %8.3f) -> (%8.3f %8.3f)  %s",
				i, v.X, v.Y, v.Z, shadow[i].X, shadow[i].Y, scaleText(scales[i]))
			if err != nil {
				return err
			}
		}
	}
	for _, s := range reg.Active4D() {
		if _, err := fmt.Fprintf(w, "%s (4D, %d vertices, %d edges)\n", s.Name(), len(s.Vertices()), len(s.Edges())); err != nil {
			return err
		}
		shadow, scales := s.Shadow(), s.DepthScales()
		for i, v := range s.Vertices() {
			err := row(scales[i], "  %3d  (%8.3f %8.3f %8.3f %8.3f) -> (%8.3f %8.3f %8.3f)  %s",
				i, v.X, v.Y, v.Z, v.W, shadow[i].X, shadow[i].Y, shadow[i].Z, scaleText(scales[i]))
			if err != nil {
				return err
			}
		}
		if box, ok := s.BoundingBox(); ok {
			_, err := fmt.Fprintf(w, "  box (%.3f %.3f %.3f)..(%.3f %.3f %.3f)\n",
				box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func scaleText(s Real) string {
	if s == Occluded {
		return "occluded"
	}
	return fmt.Sprintf("%.3f", s)
}
