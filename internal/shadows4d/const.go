package shadows4d

type Real = float64

const (
	Epsilon       = 1e-9
	DefaultLightW = 10.0 // w of the light when a config does not set one
	EulerGain     = 60.0 // controller euler delta (degrees) per radian of shape rotation
	SelectGain    = 4.0  // controller travel multiplier while selecting a 4D shape
	GrabRange     = 0.5  // controller reach, scaled by shape scale and grab range
	ConfigPath    = "scenes/config.json"
	GIFOut        = "shadows.gif"
	GIFDelay      = 5 // 100ths of a second per frame
	Frames        = 60
	ImageSize     = 512
	ViewExtent    = 4.0 // half-width of the rendered ground area, world units
	StrokeWidth   = 1.5 // edge width in pixels
)
