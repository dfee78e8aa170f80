package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	sleepyeye "github.com/kataras/sleepy-eye"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = sleepyeye.Version

var (
	outputFile string
	inPlace    bool
	quiet      bool
	segments   int
	layerID    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sleepyeye",
		Short: "Draw the SleepyHammer logo into Eagle libraries and SVG drawings",
		Long:  "A tool to generate the sleepy eye logo (eyelid arc and eyelashes) and replace it inside an existing Eagle library package or Inkscape SVG layer",
	}

	eagleCmd := &cobra.Command{
		Use:   "eagle LIBRARY PACKAGE [LAYER] [MM]",
		Short: "Replace or create a logo package in an Eagle library",
		Long:  "Replaces the wires of PACKAGE in LIBRARY with the logo, creating the package if needed. LAYER defaults to 21 (tPlace), MM (logo width) to 7.05.",
		Args:  cobra.RangeArgs(2, 4),
		Run:   runEagle,
	}
	addOutputFlags(eagleCmd.Flags())
	eagleCmd.Flags().IntVar(&segments, "segments", 10, "Number of wires approximating the eyelid arc")

	svgCmd := &cobra.Command{
		Use:   "svg [FILE]",
		Short: "Replace the logo layer of an SVG drawing",
		Long:  "Replaces the content of the layer with the given id in FILE (default sleepyhammer.svg) with the logo.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSVG,
	}
	addOutputFlags(svgCmd.Flags())
	svgCmd.Flags().StringVar(&layerID, "layer-id", "new", "Id of the layer to replace")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sleepyeye version %s\n", version)
		},
	}

	rootCmd.AddCommand(eagleCmd, svgCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&outputFile, "output", "o", "", "Write the document to this file instead of stdout")
	fs.BoolVarP(&inPlace, "in-place", "i", false, "Overwrite the input document")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Do not print progress messages")
}

func runEagle(cmd *cobra.Command, args []string) {
	opts := sleepyeye.Options{
		Mode:        sleepyeye.ModePackage,
		Input:       args[0],
		PackageName: args[1],
		Segments:    segments,
	}
	if len(args) > 2 {
		opts.Layer = args[2]
	}
	if len(args) > 3 {
		mm, err := sleepyeye.ParseSize(args[3])
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprint(os.Stderr, cmd.UsageString())
			os.Exit(1)
		}
		opts.SizeMM = mm
	}

	run(opts)
}

func runSVG(cmd *cobra.Command, args []string) {
	input := "sleepyhammer.svg"
	if len(args) > 0 {
		input = args[0]
	}

	run(sleepyeye.Options{
		Mode:    sleepyeye.ModeVector,
		Input:   input,
		LayerID: layerID,
	})
}

func run(opts sleepyeye.Options) {
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	if !quiet {
		opts.Logger = &cliLogger{}
		color.New(color.FgCyan).Fprintln(os.Stderr, "👁  SleepyHammer logo")
	}

	target := outputFile
	if inPlace {
		target = opts.Input
	}

	// Serialize into memory first so a failed run never truncates the
	// input when writing in place.
	var buf bytes.Buffer
	opts.Output = &buf

	if _, err := sleepyeye.Run(opts); err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if target == "" {
		if _, err := io.Copy(os.Stdout, &buf); err != nil {
			red.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := os.WriteFile(target, buf.Bytes(), 0644); err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !quiet {
		green.Fprintf(os.Stderr, "✓ Wrote %s\n", target)
	}
}

// cliLogger implements sleepyeye.Logger with colored output on stderr,
// keeping stdout free for the document.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}
