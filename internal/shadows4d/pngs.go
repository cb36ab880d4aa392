package shadows4d

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// SavePNGSequence writes one PNG per animation frame as prefix_NNN.png and
// returns the file names.
func SavePNGSequence(reg *Registry, rc RenderCfg, prefix string) ([]string, error) {
	// Zero-padding width based on number of frames.
	width := 1
	if rc.Frames > 1 {
		width = int(math.Log10(Real(rc.Frames-1))) + 1
	}
	var names []string
	err := Animate(reg, rc, func(k int, img *image.NRGBA) error {
		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		f, err := os.Create(full)
		if err != nil {
			return err
		}
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		names = append(names, full)
		return nil
	})
	return names, err
}
