// Package geometry computes the eyelid arc and eyelashes of the sleepy
// eye logo. Angles are in degrees, 0 along +X and 90 pointing up in
// mathematical (Y-up) space. Nothing here flips axes; that is up to the
// caller's target coordinate system.
package geometry

import "math"

// DefaultSegments is the number of straight segments used to approximate
// the eyelid arc.
const DefaultSegments = 10

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// FlipY mirrors p across the X axis.
func (p Point) FlipY() Point {
	return Point{X: p.X, Y: -p.Y}
}

// Kind tags a segment with the part of the logo it belongs to.
type Kind int

const (
	Eyelid Kind = iota
	Eyelash
)

func (k Kind) String() string {
	switch k {
	case Eyelid:
		return "eyelid"
	case Eyelash:
		return "eyelash"
	default:
		return "unknown"
	}
}

// Segment is a straight stroke.
type Segment struct {
	Start, End Point
	Width      float64
	Kind       Kind
}

// Arc describes an elliptical arc the way SVG path data does: both end
// points, the ellipse radii and the two arc selection flags.
type Arc struct {
	Start, End Point
	RX, RY     float64
	LargeArc   bool
	Sweep      bool
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// PointAt returns the point at angle deg on the ellipse with the given
// axes around p.Center. The angle is the ellipse's parametric angle, not
// the polar angle of the resulting point.
func (p Params) PointAt(major, minor, deg float64) Point {
	rad := Deg2Rad(deg)
	return Point{
		X: p.Center.X + major*math.Cos(rad),
		Y: p.Center.Y + minor*math.Sin(rad),
	}
}

// EyelidSamples approximates the eyelid arc with n consecutive segments.
// Segment endpoints are spaced by equal parametric angle, so the segments
// are not of equal length.
func (p Params) EyelidSamples(n int) []Segment {
	if n <= 0 {
		return nil
	}

	first := 90 - p.EyeAngle/2
	step := p.EyeAngle / float64(n)

	segments := make([]Segment, 0, n)
	prev := p.PointAt(p.EyeMajor, p.EyeMinor, first)
	for i := 1; i <= n; i++ {
		next := p.PointAt(p.EyeMajor, p.EyeMinor, first+step*float64(i))
		segments = append(segments, Segment{
			Start: prev,
			End:   next,
			Width: p.EyeWidth,
			Kind:  Eyelid,
		})
		prev = next
	}

	return segments
}

// EyelidArc returns the eyelid as a single elliptical arc. The flags
// select the lower of the two arcs joining the end points when drawn in a
// Y-down document.
func (p Params) EyelidArc() Arc {
	half := p.EyeAngle / 2
	return Arc{
		Start:    p.PointAt(p.EyeMajor, p.EyeMinor, 90-half),
		End:      p.PointAt(p.EyeMajor, p.EyeMinor, 90+half),
		RX:       p.EyeMajor,
		RY:       p.EyeMinor,
		LargeArc: false,
		Sweep:    true,
	}
}

// LashAngles returns the angle of every eyelash, fanned evenly and
// symmetrically around 90 degrees.
func (p Params) LashAngles() []float64 {
	switch {
	case p.LashCount <= 0:
		return nil
	case p.LashCount == 1:
		return []float64{90}
	}

	first := 90 - p.LashAngle/2
	step := p.LashAngle / float64(p.LashCount-1)

	angles := make([]float64, p.LashCount)
	for n := range angles {
		angles[n] = first + step*float64(n)
	}
	return angles
}

// Eyelashes returns one segment per lash, running from the eyelid
// ellipse out to the eyelash ellipse along the same parametric angle.
func (p Params) Eyelashes() []Segment {
	angles := p.LashAngles()
	lashes := make([]Segment, 0, len(angles))
	for _, deg := range angles {
		lashes = append(lashes, Segment{
			Start: p.PointAt(p.EyeMajor, p.EyeMinor, deg),
			End:   p.PointAt(p.LashMajor, p.LashMinor, deg),
			Width: p.LashWidth,
			Kind:  Eyelash,
		})
	}
	return lashes
}
