// Package formatter renders geometry values as the attribute strings
// written into library and drawing documents.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kataras/sleepy-eye/pkg/geometry"
)

// Float formats v in the shortest decimal form that parses back to v.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Point formats p as "x,y".
func Point(p geometry.Point) string {
	return Float(p.X) + "," + Float(p.Y)
}

// Flag formats an SVG arc flag.
func Flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ArcPath returns SVG path data drawing arc: a move to its start followed
// by an elliptical arc command to its end with no axis rotation.
func ArcPath(arc geometry.Arc) string {
	return fmt.Sprintf("M %s A %s,%s 0 %s %s %s",
		Point(arc.Start),
		Float(arc.RX), Float(arc.RY),
		Flag(arc.LargeArc), Flag(arc.Sweep),
		Point(arc.End))
}

// LinePath returns SVG path data for a single straight segment. The
// coordinate pair after the move is an implicit line-to.
func LinePath(s geometry.Segment) string {
	return "M " + Point(s.Start) + " " + Point(s.End)
}

// Style returns an SVG style declaration for an unfilled, round-capped
// stroke.
func Style(color string, width float64) string {
	var sb strings.Builder

	sb.WriteString("fill:none;")
	sb.WriteString(fmt.Sprintf("stroke:%s;", color))
	sb.WriteString(fmt.Sprintf("stroke-width:%s;", Float(width)))
	sb.WriteString("stroke-linecap:round")

	return sb.String()
}
