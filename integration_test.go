package themecheck

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureSink records the final status of every check region.
type captureSink struct {
	status   string
	statuses []string
	lines    []string
}

func (s *captureSink) Begin(description string) { s.status = description }
func (s *captureSink) Update(status string)     { s.status = status }
func (s *captureSink) End()                     { s.statuses = append(s.statuses, s.status) }
func (s *captureSink) Print(line string)        { s.lines = append(s.lines, line) }

func fullMetadata(hardware string) string {
	return `<theme>
  <variables>
    <systemName>Some System</systemName>
    <systemDescription>A system</systemDescription>
    <systemManufacturer>Somebody</systemManufacturer>
    <systemReleaseYear>1990</systemReleaseYear>
    <systemHardwareType>` + hardware + `</systemHardwareType>
    <systemCoverSize>standard</systemCoverSize>
    <systemCartSize>standard</systemCartSize>
  </variables>
  <variables lang="fr">
    <systemName>Some System</systemName>
  </variables>
  <variables lang="de">
    <systemName>Some System</systemName>
  </variables>
</theme>
`
}

// buildFixtureTheme assembles a small but complete theme with two
// systems, one of which is a collection.
func buildFixtureTheme(t *testing.T) *Theme {
	t.Helper()
	th := testTheme(t)
	th.Config.Raster = RasterConfig{Width: 64, Height: 64}
	th.Config.Overlay.BlockSize = 32

	horizontal := encodePNG(t, 64, 64, func(x, y int) color.Color {
		if x < 32 {
			return color.NRGBA{A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	})
	vertical := encodePNG(t, 64, 64, func(x, y int) color.Color {
		if y < 32 {
			return color.NRGBA{A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	})

	// The extension convention asks for webp; the decoders sniff content,
	// so PNG data behind a .webp name keeps the fixture self-contained.
	writeAsset(t, th, FolderBackgrounds, "nes.webp", horizontal)
	writeAsset(t, th, FolderBackgrounds, "favorites.webp", vertical)
	writeAsset(t, th, FolderOverlays, "nes.webp", horizontal)
	for _, name := range []string{"nes", "favorites"} {
		writeAsset(t, th, FolderControllers, name+".webp", horizontal)
		writeAsset(t, th, FolderLogos, name+".webp", horizontal)
	}

	writeAsset(t, th, FolderVectorLogos, "nes.svg",
		[]byte(`<svg xmlns="http://www.w3.org/2000/svg" width="600" height="300" viewBox="0 0 600 300"><rect width="10" height="10"/></svg>`))

	writeAsset(t, th, FolderMetadata, "nes.xml", []byte(fullMetadata("console")))
	writeAsset(t, th, FolderMetadata, "favorites.xml", []byte(fullMetadata("${i18n.custom-collection}")))

	writeLanguageFile(t, th, themeLang)

	if err := os.WriteFile(th.CollectionsFile(), []byte("# collections\nfavorites\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	return th
}

func TestSuiteConvergesOnFixtureTheme(t *testing.T) {
	th := buildFixtureTheme(t)

	first := &captureSink{}
	suite := Suite{Checks: th.Checks(), Runner: Runner{Sink: first, BaseDir: string(th.Root)}}
	if !suite.Run(context.Background()) {
		t.Fatalf("expected the first run to succeed via fixes, statuses:\n%s\nlines:\n%s",
			strings.Join(first.statuses, "\n"), strings.Join(first.lines, "\n"))
	}

	fixed := 0
	for _, status := range first.statuses {
		if strings.Contains(status, "FIX") {
			fixed++
		}
	}
	if fixed == 0 {
		t.Error("expected the first run to fix the unformatted XML and SVG files")
	}

	second := &captureSink{}
	suite.Runner.Sink = second
	if !suite.Run(context.Background()) {
		t.Fatalf("expected the second run to succeed, statuses:\n%s\nlines:\n%s",
			strings.Join(second.statuses, "\n"), strings.Join(second.lines, "\n"))
	}
	for _, status := range second.statuses {
		if !strings.Contains(status, "PASS") {
			t.Errorf("expected every check to pass on the second run, got %q", status)
		}
	}
	if len(second.statuses) != len(th.Checks()) {
		t.Errorf("expected %d checks to run, got %d", len(th.Checks()), len(second.statuses))
	}
}

func TestSuiteReportsBrokenFixtureTheme(t *testing.T) {
	th := buildFixtureTheme(t)

	// Remove a required image.
	if err := os.Remove(filepath.Join(th.IncDir(), FolderControllers, "favorites.webp")); err != nil {
		t.Fatal(err)
	}

	sink := &captureSink{}
	suite := Suite{Checks: th.Checks(), Runner: Runner{Sink: sink, BaseDir: string(th.Root)}}
	if suite.Run(context.Background()) {
		t.Fatal("expected the suite to fail for an incomplete system")
	}

	joined := strings.Join(sink.lines, "\n")
	if !strings.Contains(joined, "Missing controller") {
		t.Errorf("expected a missing-controller failure, got:\n%s", joined)
	}
	verdict := sink.lines[len(sink.lines)-1]
	if !strings.Contains(verdict, "12 out of 13 checks passed") {
		t.Errorf("unexpected verdict %q", verdict)
	}
}
