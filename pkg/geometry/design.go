package geometry

// Design holds the fixed proportions of the sleepy eye logo.
// All lengths are expressed in reference units, the logo being
// ReferenceSize units wide at scale 1.
type Design struct {
	ReferenceSize float64 // eyelid major axis at scale 1
	CenterOffsetY float64 // ellipse center Y relative to the origin, scaled designs only
	EyeMinorRatio float64 // eyelid minor axis / major axis
	EyeWidth      float64 // eyelid stroke width
	EyeAngle      float64 // eyelid arc width in degrees
	LashMajorMul  float64 // eyelash major axis / eyelid major axis
	LashMinorMul  float64 // eyelash minor axis / eyelid minor axis
	LashWidth     float64 // eyelash stroke width
	LashCount     int
	LashAngle     float64 // degrees from the leftmost to the rightmost lash
}

// DefaultDesign returns the proportions of the SleepyHammer logo.
func DefaultDesign() Design {
	return Design{
		ReferenceSize: 92,
		CenterOffsetY: -45,
		EyeMinorRatio: 2.0 / 3.0,
		EyeWidth:      16.3,
		EyeAngle:      109,
		LashMajorMul:  1.24,
		LashMinorMul:  1.44,
		LashWidth:     14.1,
		LashCount:     6,
		LashAngle:     98,
	}
}

// Params are the shape parameters of one rendering of the logo.
// They are derived from a Design and never modified afterwards.
type Params struct {
	Scale     float64
	Center    Point
	EyeMajor  float64
	EyeMinor  float64
	EyeWidth  float64
	EyeAngle  float64
	LashMajor float64
	LashMinor float64
	LashWidth float64
	LashCount int
	LashAngle float64
}

// Scaled returns the parameters for a logo that is mm millimeters wide,
// centered horizontally on the origin. Used for footprint packages where
// the reference design is scaled down to board units.
func (d Design) Scaled(mm float64) Params {
	scale := mm / d.ReferenceSize
	return d.params(scale, Point{X: 0, Y: d.CenterOffsetY * scale})
}

// At returns unscaled parameters with the ellipses centered at center,
// for documents that share the reference coordinate space.
func (d Design) At(center Point) Params {
	return d.params(1, center)
}

func (d Design) params(scale float64, center Point) Params {
	eyeMajor := d.ReferenceSize * scale
	eyeMinor := eyeMajor * d.EyeMinorRatio

	return Params{
		Scale:     scale,
		Center:    center,
		EyeMajor:  eyeMajor,
		EyeMinor:  eyeMinor,
		EyeWidth:  d.EyeWidth * scale,
		EyeAngle:  d.EyeAngle,
		LashMajor: eyeMajor * d.LashMajorMul,
		LashMinor: eyeMinor * d.LashMinorMul,
		LashWidth: d.LashWidth * scale,
		LashCount: d.LashCount,
		LashAngle: d.LashAngle,
	}
}
