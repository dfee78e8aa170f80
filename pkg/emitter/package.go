package emitter

import (
	"github.com/beevik/etree"

	"github.com/kataras/sleepy-eye/pkg/formatter"
	"github.com/kataras/sleepy-eye/pkg/geometry"
	"github.com/kataras/sleepy-eye/pkg/locator"
)

const (
	// DefaultLayer is the Eagle tPlace (top silkscreen) layer.
	DefaultLayer = "21"
	// DefaultDescription is set on packages created from scratch.
	DefaultDescription = "SleepyHammer logo"
)

// Package draws the logo as wire segments inside an Eagle library
// package. Eagle's Y axis points the other way, so every Y coordinate is
// negated. Scaling is expected to be applied to the Params already.
type Package struct {
	Name        string
	Description string // only used when the package is created
	Layer       string
	Segments    int // eyelid approximation, geometry.DefaultSegments if <= 0
}

// Locate finds or creates the package named p.Name.
func (p Package) Locate(doc *etree.Document) (*etree.Element, bool, error) {
	description := p.Description
	if description == "" {
		description = DefaultDescription
	}
	return locator.Package(doc, p.Name, description)
}

// Emit appends one wire per eyelid segment and eyelash, each followed by
// a newline so the library stays readable.
func (p Package) Emit(target *etree.Element, shape geometry.Params) int {
	segments := p.Segments
	if segments <= 0 {
		segments = geometry.DefaultSegments
	}
	layer := p.Layer
	if layer == "" {
		layer = DefaultLayer
	}

	wires := append(shape.EyelidSamples(segments), shape.Eyelashes()...)

	target.CreateText("\n")
	for _, s := range wires {
		start, end := s.Start.FlipY(), s.End.FlipY()

		wire := target.CreateElement("wire")
		wire.CreateAttr("x1", formatter.Float(start.X))
		wire.CreateAttr("y1", formatter.Float(start.Y))
		wire.CreateAttr("x2", formatter.Float(end.X))
		wire.CreateAttr("y2", formatter.Float(end.Y))
		wire.CreateAttr("width", formatter.Float(s.Width))
		wire.CreateAttr("layer", layer)

		target.CreateText("\n")
	}

	return len(wires)
}
