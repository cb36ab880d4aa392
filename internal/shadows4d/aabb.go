package shadows4d

import "math"

// Box3 is an axis-aligned box in 3D.
type Box3 struct {
	Min, Max Vector3
}

func emptyBox3() Box3 {
	inf := math.Inf(1)
	return Box3{Min: Vector3{inf, inf, inf}, Max: Vector3{-inf, -inf, -inf}}
}

// IsEmpty reports whether no point was ever added.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

func (b *Box3) expand(p Vector3) {
	b.Min = Vector3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)}
	b.Max = Vector3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)}
}

// Contains reports whether p lies inside b, faces included.
func (b Box3) Contains(p Vector3) bool {
	return p.X >= b.Min.X && p.Y >= b.Min.Y && p.Z >= b.Min.Z &&
		p.X <= b.Max.X && p.Y <= b.Max.Y && p.Z <= b.Max.Z
}
