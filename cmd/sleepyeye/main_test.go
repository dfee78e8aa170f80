package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

// These tests build the sleepyeye binary and run it against small
// documents to verify argument handling, exit codes and output routing.
//
// Skipped with -short.

const library = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE eagle SYSTEM "eagle.dtd">
<eagle version="7.7.0">
<drawing>
<library>
<packages>
</packages>
</library>
</drawing>
</eagle>
`

const drawing = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="600" height="600">
  <g id="new"/>
</svg>
`

// buildBinary compiles the sleepyeye binary into a temporary directory
// and returns its path.
func buildBinary(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	bin := filepath.Join(t.TempDir(), "sleepyeye")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	cmd := exec.Command("go", "build", "-o", bin, ".")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func runBinary(t *testing.T, bin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(bin, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		t.Fatalf("failed to run %s: %v", bin, err)
	}

	return outBuf.String(), errBuf.String(), code
}

func TestCLI(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()
	lbr := writeTemp(t, dir, "logos.lbr", library)
	svg := writeTemp(t, dir, "sleepyhammer.svg", drawing)

	t.Run("eagle to stdout", func(t *testing.T) {
		stdout, stderr, code := runBinary(t, bin, "eagle", lbr, "SLEEPY", "51", "14.1", "--quiet")
		if code != 0 {
			t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
		}
		if stderr != "" {
			t.Errorf("quiet run wrote to stderr:\n%s", stderr)
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromString(stdout); err != nil {
			t.Fatalf("stdout is not XML: %v", err)
		}
		wires := doc.FindElements("//package[@name='SLEEPY']/wire")
		if len(wires) != 16 {
			t.Fatalf("%d wires, want 16", len(wires))
		}
		if got := wires[0].SelectAttrValue("layer", ""); got != "51" {
			t.Errorf("layer = %q, want 51", got)
		}
	})

	t.Run("eagle in place twice", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if _, stderr, code := runBinary(t, bin, "eagle", lbr, "SLEEPY", "-i"); code != 0 {
				t.Fatalf("run %d: exit code %d, stderr:\n%s", i, code, stderr)
			}
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromFile(lbr); err != nil {
			t.Fatal(err)
		}
		if got := len(doc.FindElements("//package[@name='SLEEPY']")); got != 1 {
			t.Errorf("%d SLEEPY packages, want 1", got)
		}
		if got := len(doc.FindElements("//package[@name='SLEEPY']/wire")); got != 16 {
			t.Errorf("%d wires, want 16", got)
		}
	})

	t.Run("svg to file", func(t *testing.T) {
		out := filepath.Join(dir, "out.svg")
		stdout, stderr, code := runBinary(t, bin, "svg", svg, "-o", out)
		if code != 0 {
			t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
		}
		if stdout != "" {
			t.Errorf("document written to stdout as well")
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromFile(out); err != nil {
			t.Fatal(err)
		}
		if got := len(doc.FindElements("//g[@id='new']/path")); got != 7 {
			t.Errorf("%d paths, want 7", got)
		}
	})

	t.Run("usage errors", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
		}{
			{name: "missing package", args: []string{"eagle", lbr}},
			{name: "too many arguments", args: []string{"eagle", lbr, "SLEEPY", "21", "7", "extra"}},
			{name: "invalid size", args: []string{"eagle", lbr, "SLEEPY", "21", "big"}},
			{name: "missing layer", args: []string{"svg", svg, "--layer-id", "logo"}},
			{name: "missing input", args: []string{"svg", filepath.Join(dir, "nope.svg")}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				stdout, stderr, code := runBinary(t, bin, tt.args...)
				if code != 1 {
					t.Errorf("exit code %d, want 1", code)
				}
				if stdout != "" && !strings.Contains(stdout, "Usage:") {
					t.Errorf("unexpected stdout:\n%s", stdout)
				}
				if stderr == "" {
					t.Errorf("no error message on stderr")
				}
			})
		}
	})

	t.Run("version", func(t *testing.T) {
		stdout, _, code := runBinary(t, bin, "version")
		if code != 0 || !strings.HasPrefix(stdout, "sleepyeye version ") {
			t.Errorf("version = %q (exit %d)", stdout, code)
		}
	})
}
