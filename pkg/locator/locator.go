// Package locator finds the container element that receives generated
// geometry, emptying it first, or creates it when the document format
// allows.
package locator

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

var (
	// ErrNoPackages is returned when a library document has no packages
	// collection to attach a new package to.
	ErrNoPackages = errors.New("document has no packages element")
	// ErrNoLayer is returned when a drawing has no element with the
	// requested id.
	ErrNoLayer = errors.New("layer not found")
)

// Package returns the package element named name, with all of its
// previous content removed. When the library has no such package a new
// one is appended to the first packages element; created reports which
// of the two happened.
func Package(doc *etree.Document, name, description string) (pkg *etree.Element, created bool, err error) {
	pkg = find(&doc.Element, func(el *etree.Element) bool {
		return el.Tag == "package" && el.SelectAttrValue("name", "") == name
	})
	if pkg != nil {
		Clear(pkg)
		return pkg, false, nil
	}

	packages := find(&doc.Element, func(el *etree.Element) bool {
		return el.Tag == "packages"
	})
	if packages == nil {
		return nil, false, fmt.Errorf("create package %q: %w", name, ErrNoPackages)
	}

	pkg = packages.CreateElement("package")
	pkg.CreateAttr("name", name)
	pkg.CreateAttr("description", description)
	packages.CreateText("\n")

	return pkg, true, nil
}

// Layer returns the element whose id attribute is id, emptied. Drawings
// are expected to carry the layer already; it is never created.
func Layer(doc *etree.Document, id string) (*etree.Element, error) {
	layer := find(&doc.Element, func(el *etree.Element) bool {
		return el.SelectAttrValue("id", "") == id
	})
	if layer == nil {
		return nil, fmt.Errorf("layer %q: %w", id, ErrNoLayer)
	}

	Clear(layer)
	return layer, nil
}

// Clear removes every child token of el (elements, text, comments),
// keeping el and its attributes.
func Clear(el *etree.Element) {
	for i := len(el.Child) - 1; i >= 0; i-- {
		el.RemoveChildAt(i)
	}
}

// find returns the first element below root, in document order, for
// which match reports true.
func find(root *etree.Element, match func(*etree.Element) bool) *etree.Element {
	for _, child := range root.ChildElements() {
		if match(child) {
			return child
		}
		if found := find(child, match); found != nil {
			return found
		}
	}
	return nil
}
