package shadows4d

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// SaveAnimatedGIF renders the scene animation into a looping GIF.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveAnimatedGIF(reg *Registry, rc RenderCfg, path string) error {
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, rc.Frames),
		Delay:     make([]int, 0, rc.Frames),
		LoopCount: 0,
	}
	err := Animate(reg, rc, func(_ int, img *image.NRGBA) error {
		// Quantize to paletted for GIF
		pimg := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), img, image.Point{})
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, rc.Delay)
		return nil
	})
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
