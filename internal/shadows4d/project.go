package shadows4d

import "math"

const (
	// IsometricScale is returned when the light cannot produce a perspective divide.
	IsometricScale Real = 0.5
	// Occluded is the depth scale of a point whose shadow must not be drawn.
	Occluded Real = -1
)

var (
	// occluded shadow points are parked below the ground plane
	occludedPoint3 = Vector3{0, -1, 0}
	occludedPoint2 = Vector2{}
)

// depthScale normalizes depth into [0,1] against the shape's own extent.
// A flat extent has no meaningful position inside it and maps to 0, so a 0
// means "lowest point" only when the extent is not flat.
func depthScale(depth, minDepth, maxDepth Real) Real {
	span := maxDepth - minDepth
	if math.Abs(span) < Epsilon {
		return 0
	}
	return clamp01((depth - minDepth) / span)
}

// Project3 casts the shadow of p onto the ground plane y=0 using the light as the
// projection center. It returns the ground point (x,z) and the depth scale of p
// relative to [minY, maxY]. A scale of Occluded means the shadow is not visible.
// When minY and maxY coincide (a shape flat in y) every visible point gets 0.
func Project3(light, p Vector3, minY, maxY Real) (Vector2, Real) {
	if light.Y <= 0 {
		return Vector2{p.X, p.Z}, IsometricScale
	}
	if !(light.Y > p.Y && p.Y > 0) {
		return occludedPoint2, Occluded
	}
	den := (p.Y - light.Y) / light.Y
	if math.Abs(den) < Epsilon {
		return occludedPoint2, Occluded
	}
	shadow := Vector2{
		light.X - (p.X-light.X)/den,
		light.Z - (p.Z-light.Z)/den,
	}
	return shadow, depthScale(p.Y, minY, maxY)
}

// Project4 casts the shadow of p into the w=0 space using the light as the
// projection center. Unlike Project3 points below w=0 still cast a shadow;
// only points at or beyond the light's w are occluded. As in Project3 a flat
// extent in w gives a scale of 0.
func Project4(light, p Vector4, minW, maxW Real) (Vector3, Real) {
	if light.W <= 0 {
		return p.XYZ(), IsometricScale
	}
	if !(light.W > p.W) {
		return occludedPoint3, Occluded
	}
	den := (p.W - light.W) / light.W
	if math.Abs(den) < Epsilon {
		return occludedPoint3, Occluded
	}
	shadow := Vector3{
		light.X - (p.X-light.X)/den,
		light.Y - (p.Y-light.Y)/den,
		light.Z - (p.Z-light.Z)/den,
	}
	return shadow, depthScale(p.W, minW, maxW)
}
