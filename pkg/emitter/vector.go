package emitter

import (
	"github.com/beevik/etree"

	"github.com/kataras/sleepy-eye/pkg/formatter"
	"github.com/kataras/sleepy-eye/pkg/geometry"
	"github.com/kataras/sleepy-eye/pkg/locator"
)

const (
	// DefaultLayerID is the id of the Inkscape layer the logo replaces.
	DefaultLayerID = "new"
	// Color is the logo's stroke color.
	Color = "#1587d1"

	// Center of the ellipses in the reference drawing.
	DrawingCenterX = 311.0
	DrawingCenterY = 297.8468
)

// Vector draws the logo as SVG paths: the eyelid as one true elliptical
// arc, each eyelash as a straight path. Coordinates are used as given,
// the drawing already being Y-down.
type Vector struct {
	LayerID string
}

func (v Vector) layerID() string {
	if v.LayerID == "" {
		return DefaultLayerID
	}
	return v.LayerID
}

// Locate finds the layer. It is never created.
func (v Vector) Locate(doc *etree.Document) (*etree.Element, bool, error) {
	layer, err := locator.Layer(doc, v.layerID())
	return layer, false, err
}

// Emit appends the eyelid path followed by one path per eyelash.
func (v Vector) Emit(target *etree.Element, shape geometry.Params) int {
	lid := target.CreateElement("path")
	lid.CreateAttr("style", formatter.Style(Color, shape.EyeWidth))
	lid.CreateAttr("d", formatter.ArcPath(shape.EyelidArc()))

	lashes := shape.Eyelashes()
	for _, s := range lashes {
		lash := target.CreateElement("path")
		lash.CreateAttr("style", formatter.Style(Color, s.Width))
		lash.CreateAttr("d", formatter.LinePath(s))
	}

	return 1 + len(lashes)
}
