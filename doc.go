// Package sleepyeye draws the SleepyHammer "sleepy eye" logo, an
// elliptical eyelid with a fan of eyelashes, into existing documents:
// an Eagle library package made of wire segments, or a layer of an SVG
// drawing made of paths.
//
// The CLI lives in cmd/sleepyeye; this root package exposes the same
// pipeline as a Go API.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named sleepyeye:
//
//	import "github.com/kataras/sleepy-eye" // package sleepyeye
//
// # Quick start
//
//	var out bytes.Buffer
//	_, err := sleepyeye.Run(sleepyeye.Options{
//	    Mode:        sleepyeye.ModePackage,
//	    Input:       "logos.lbr",
//	    Output:      &out,
//	    PackageName: "SLEEPY-7MM",
//	    SizeMM:      7.05,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("logos.lbr", out.Bytes(), 0644)
//
// # Package mode
//
// The package named [Options.PackageName] is emptied and refilled with
// wires on [Options.Layer]. If the library has no such package one is
// appended to its packages collection. The logo is [Options.SizeMM]
// millimeters wide; Y coordinates are negated to match Eagle.
//
// # Vector mode
//
// The element with id [Options.LayerID] (an Inkscape layer) is emptied
// and refilled with one arc path for the eyelid and one path per
// eyelash, in the drawing's own coordinates. The layer must exist.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
package sleepyeye
