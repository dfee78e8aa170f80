// Package emitter writes the logo geometry into a host document. Package
// targets Eagle libraries, Vector targets SVG drawings; both draw from the
// same geometry.Params.
package emitter

import (
	"github.com/beevik/etree"

	"github.com/kataras/sleepy-eye/pkg/geometry"
)

// Emitter places the logo into one kind of document.
type Emitter interface {
	// Locate returns the emptied container the logo is written into.
	// created is true when the container did not exist before.
	Locate(doc *etree.Document) (target *etree.Element, created bool, err error)
	// Emit appends the logo to target and returns the number of
	// elements written.
	Emit(target *etree.Element, shape geometry.Params) int
}

var (
	_ Emitter = Package{}
	_ Emitter = Vector{}
)
