package themecheck

import (
	"math"
	"os"
	"strings"
	"testing"
)

const messySVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.0.dtd" width="600" height="300" viewBox="0 0 600 300">
<sodipodi:namedview inkscape:zoom="1.5"/>
<rect inkscape:label="box" style="fill:red;-inkscape-font-specification:sans;" width="10" height="10"/>
</svg>
`

func TestSVGFormattingFixesThenPasses(t *testing.T) {
	th := testTheme(t)
	path := writeAsset(t, th, FolderVectorLogos, "nes.svg", []byte(messySVG))

	results, err := collect(t, th.checkSVGFormatting)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Kind != KindFix {
		t.Fatalf("expected one Fix on the first run, got %v", results)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	formatted := string(content)
	if strings.Contains(formatted, "inkscape") || strings.Contains(formatted, "sodipodi") {
		t.Errorf("expected editor residue to be stripped, got:\n%s", formatted)
	}
	if !strings.HasSuffix(formatted, "\n") || strings.HasSuffix(formatted, "\n\n") {
		t.Errorf("expected a single trailing newline, got %q", formatted)
	}

	results, err = collect(t, th.checkSVGFormatting)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Kind != KindSuccess {
		t.Fatalf("expected Success on the second run, got %v", results)
	}
}

func TestSVGFormattingUnparsableIsFailure(t *testing.T) {
	th := testTheme(t)
	writeAsset(t, th, FolderVectorLogos, "bad.svg", []byte("<svg><unclosed></svg>"))

	results, err := collect(t, th.checkSVGFormatting)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Kind != KindFailure {
		t.Fatalf("expected one Failure, got %v", results)
	}
	if !strings.Contains(results[0].Reason, "Could not parse SVG file") {
		t.Errorf("unexpected reason %q", results[0].Reason)
	}
}

func TestSVGStyleCleanupDropsEmptyStyle(t *testing.T) {
	out, err := canonicalSVG([]byte(`<svg><rect style="-inkscape-font-specification:sans;"/></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "style") {
		t.Errorf("expected the emptied style attribute to be removed, got:\n%s", out)
	}
}

func TestVectorDimensionsRescalesThenPasses(t *testing.T) {
	th := testTheme(t)
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="300" height="150" viewBox="0 0 300 150"><rect width="10" height="10"/></svg>`
	path := writeAsset(t, th, FolderVectorLogos, "nes.svg", []byte(svg))

	results, err := collect(t, th.checkVectorImageDimensions)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Kind != KindFix {
		t.Fatalf("expected one Fix on the first run, got %v", results)
	}
	if results[0].Reason != "Rescaled SVG" {
		t.Errorf("unexpected reason %q", results[0].Reason)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `width="600"`) || !strings.Contains(string(content), `height="300"`) {
		t.Errorf("expected the SVG to be rescaled to the target box, got:\n%s", content)
	}

	results, err = collect(t, th.checkVectorImageDimensions)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Kind != KindSuccess {
		t.Fatalf("expected Success on the second run, got %v", results)
	}
}

func TestVectorDimensionsAddsMissingViewBox(t *testing.T) {
	th := testTheme(t)
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="600" height="300"><rect width="10" height="10"/></svg>`
	path := writeAsset(t, th, FolderVectorLogos, "nes.svg", []byte(svg))

	results, err := collect(t, th.checkVectorImageDimensions)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Kind != KindFix {
		t.Fatalf("expected one Fix, got %v", results)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "viewBox") {
		t.Errorf("expected a viewBox to be added, got:\n%s", content)
	}
}

func TestVectorDimensionsMissingEverythingIsFailure(t *testing.T) {
	th := testTheme(t)
	writeAsset(t, th, FolderVectorLogos, "nes.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))

	results, err := collect(t, th.checkVectorImageDimensions)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Kind != KindFailure {
		t.Fatalf("expected one Failure, got %v", results)
	}
	if !strings.Contains(results[0].Reason, "viewBox") {
		t.Errorf("unexpected reason %q", results[0].Reason)
	}
}

func TestLengthInPixels(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"600", 600},
		{"600px", 600},
		{"480pt", 600},
		{"40pc", 600},
		{"6.25in", 600},
		{"2.54cm", 96},
		{"25.4mm", 96},
	}
	for _, tt := range tests {
		got, err := lengthInPixels(tt.in)
		if err != nil {
			t.Errorf("lengthInPixels(%q): %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("lengthInPixels(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := lengthInPixels("10furlongs"); err == nil {
		t.Error("expected an error for an unsupported unit")
	}
}
