package sleepyeye

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/kataras/sleepy-eye/pkg/emitter"
	"github.com/kataras/sleepy-eye/pkg/geometry"
)

// Version is the current release.
const Version = "0.1.0"

// DefaultSizeMM is the width of the package logo in millimeters.
const DefaultSizeMM = 7.05

// Mode selects the kind of host document.
type Mode string

const (
	// ModePackage writes wire segments into an Eagle library package.
	ModePackage Mode = "package"
	// ModeVector writes paths into a layer of an SVG drawing.
	ModeVector Mode = "vector"
)

// ErrUnknownMode is returned by Run for an unsupported Options.Mode.
var ErrUnknownMode = errors.New("unknown mode")

// Options configures a run.
type Options struct {
	Mode   Mode
	Input  string    // library or drawing to read
	Output io.Writer // receives the modified document, nil = not written

	// Package mode.
	PackageName string
	Layer       string  // Eagle layer number, default "21"
	SizeMM      float64 // logo width, default 7.05
	Segments    int     // eyelid wires, default 10

	// Vector mode.
	LayerID string // id of the layer to replace, default "new"

	Logger Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result describes the modified document.
type Result struct {
	Document *etree.Document
	Target   *etree.Element // container holding the logo
	Created  bool           // the container was created by this run
	Elements int            // wires or paths written
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run reads the input document, replaces the logo in it and writes the
// result to opts.Output.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Mode == "" {
		opts.Mode = ModePackage
	}
	if opts.Layer == "" {
		opts.Layer = emitter.DefaultLayer
	}
	if opts.SizeMM == 0 {
		opts.SizeMM = DefaultSizeMM
	}
	if opts.Segments <= 0 {
		opts.Segments = geometry.DefaultSegments
	}
	if opts.LayerID == "" {
		opts.LayerID = emitter.DefaultLayerID
	}

	em, shape, err := opts.build()
	if err != nil {
		return nil, err
	}

	opts.logInfo("Reading %s...", opts.Input)
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(opts.Input); err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.Input, err)
	}

	result, err := Apply(doc, em, shape)
	if err != nil {
		return nil, err
	}

	switch opts.Mode {
	case ModePackage:
		if result.Created {
			opts.logWarn("Package %q not found, created it", opts.PackageName)
		}
		opts.logInfo("Wrote %d wire(s) to package %q on layer %s (%gmm)", result.Elements, opts.PackageName, opts.Layer, opts.SizeMM)
	case ModeVector:
		opts.logInfo("Wrote %d path(s) to layer %q", result.Elements, opts.LayerID)
	}

	if opts.Output != nil {
		if _, err := doc.WriteTo(opts.Output); err != nil {
			opts.logError("Writing document failed")
			return nil, fmt.Errorf("write document: %w", err)
		}
	}

	return result, nil
}

// build returns the emitter and shape parameters for opts.Mode.
func (o *Options) build() (emitter.Emitter, geometry.Params, error) {
	design := geometry.DefaultDesign()

	switch o.Mode {
	case ModePackage:
		if o.PackageName == "" {
			return nil, geometry.Params{}, errors.New("package name is required")
		}
		em := emitter.Package{
			Name:        o.PackageName,
			Description: emitter.DefaultDescription,
			Layer:       o.Layer,
			Segments:    o.Segments,
		}
		return em, design.Scaled(o.SizeMM), nil
	case ModeVector:
		center := geometry.Point{X: emitter.DrawingCenterX, Y: emitter.DrawingCenterY}
		return emitter.Vector{LayerID: o.LayerID}, design.At(center), nil
	default:
		return nil, geometry.Params{}, fmt.Errorf("%w %q", ErrUnknownMode, o.Mode)
	}
}

// Apply writes the logo described by shape into doc using em. The
// target container is emptied (or created) first, so applying twice
// leaves the same content as applying once.
func Apply(doc *etree.Document, em emitter.Emitter, shape geometry.Params) (*Result, error) {
	target, created, err := em.Locate(doc)
	if err != nil {
		return nil, fmt.Errorf("locate target: %w", err)
	}

	n := em.Emit(target, shape)

	return &Result{
		Document: doc,
		Target:   target,
		Created:  created,
		Elements: n,
	}, nil
}

// ParseSize parses a logo width in millimeters.
func ParseSize(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DefaultSizeMM, nil
	}

	mm, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", trimmed, err)
	}
	if mm <= 0 {
		return 0, fmt.Errorf("size must be positive, got %g", mm)
	}

	return mm, nil
}
