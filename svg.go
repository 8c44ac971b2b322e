package themecheck

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

var inkscapeCSSRe = regexp.MustCompile(`-inkscape-[^;]+;?\s*`)

// checkSVGFormatting verifies that every SVG file under the include
// directory matches its canonical serialization, rewriting it when it
// does not.
func (th *Theme) checkSVGFormatting(ctx context.Context, report func(Result)) error {
	files, err := th.FindAll(".svg")
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		formatted, err := canonicalSVG(content)
		if err != nil {
			report(Fail(path, fmt.Sprintf("Could not parse SVG file: %v", err)))
			continue
		}

		if bytes.Equal(formatted, content) {
			report(Success(path))
			continue
		}

		if err := os.WriteFile(path, formatted, 0o644); err != nil {
			return err
		}

		report(Fix(path, "Formatted SVG file"))
	}

	return nil
}

// checkVectorImageDimensions verifies that every SVG logo fits the
// configured target bounding box, rescaling it when it does not.
func (th *Theme) checkVectorImageDimensions(ctx context.Context, report func(Result)) error {
	files, err := th.Files(FolderVectorLogos)
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(content); err != nil {
			report(Fail(path, fmt.Sprintf("Could not parse SVG file: %v", err)))
			continue
		}
		root := doc.Root()
		if root == nil {
			report(Fail(path, "Could not parse SVG file: no root element"))
			continue
		}

		viewBox := root.SelectAttrValue("viewBox", "")
		width := root.SelectAttrValue("width", "")
		height := root.SelectAttrValue("height", "")
		fixed := false

		if viewBox == "" && (width == "" || height == "") {
			report(Fail(path, "SVG must have a viewBox or both width and height"))
			continue
		}

		var w, h float64
		if width == "" || height == "" {
			_, _, w, h, err = parseViewBox(viewBox)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		} else {
			w, err = lengthInPixels(width)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			h, err = lengthInPixels(height)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}

		if viewBox == "" {
			root.CreateAttr("viewBox", fmt.Sprintf("0 0 %s %s", formatLength(w), formatLength(h)))
			fixed = true
		}

		targetW, targetH := th.Config.Vector.Width, th.Config.Vector.Height

		if w/h > targetW/targetH {
			if w != targetW {
				root.CreateAttr("width", formatLength(targetW))
				root.CreateAttr("height", formatLength(h*targetW/w))
				fixed = true
			}
		} else {
			if h != targetH {
				root.CreateAttr("height", formatLength(targetH))
				root.CreateAttr("width", formatLength(w*targetH/h))
				fixed = true
			}
		}

		if !fixed {
			report(Success(path))
			continue
		}

		formatted, err := serializeSVG(doc)
		if err != nil {
			return err
		}

		if bytes.Equal(formatted, content) {
			report(Success(path))
			continue
		}

		if err := os.WriteFile(path, formatted, 0o644); err != nil {
			return err
		}

		report(Fix(path, "Rescaled SVG"))
	}

	return nil
}

// canonicalSVG parses an SVG document, strips Inkscape and Sodipodi
// editor residue, and re-serializes it in canonical form.
func canonicalSVG(content []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("no root element")
	}

	stripEditorElements(root)
	stripEditorAttributes(root)
	cleanStyles(root)

	return serializeSVG(doc)
}

// serializeSVG renders an SVG document with an XML declaration, 4-space
// indentation and a single trailing newline.
func serializeSVG(doc *etree.Document) ([]byte, error) {
	ensureXMLDeclaration(doc)
	doc.Indent(4)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	return append(bytes.TrimRight(out, "\n"), '\n'), nil
}

func ensureXMLDeclaration(doc *etree.Document) {
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	doc.InsertChildAt(0, etree.NewProcInst("xml", `version="1.0" encoding="UTF-8"`))
}

func stripEditorElements(el *etree.Element) {
	for _, child := range el.ChildElements() {
		if isEditorName(child.Space) {
			el.RemoveChild(child)
			continue
		}
		stripEditorElements(child)
	}
}

func stripEditorAttributes(el *etree.Element) {
	var remove []string
	for _, attr := range el.Attr {
		if isEditorName(attr.Space) || isEditorName(attr.Key) {
			remove = append(remove, attr.FullKey())
		}
	}
	for _, key := range remove {
		el.RemoveAttr(key)
	}
	for _, child := range el.ChildElements() {
		stripEditorAttributes(child)
	}
}

func isEditorName(name string) bool {
	return strings.Contains(name, "inkscape") || strings.Contains(name, "sodipodi")
}

// cleanStyles removes -inkscape-* properties from style attributes,
// dropping the attribute entirely when nothing remains.
func cleanStyles(el *etree.Element) {
	if style := el.SelectAttrValue("style", ""); style != "" {
		cleaned := strings.TrimSpace(inkscapeCSSRe.ReplaceAllString(style, ""))
		cleaned = strings.TrimRight(cleaned, ";")
		if cleaned != "" {
			el.CreateAttr("style", cleaned)
		} else {
			el.RemoveAttr("style")
		}
	}
	for _, child := range el.ChildElements() {
		cleanStyles(child)
	}
}

// parseViewBox splits a viewBox attribute into its four numbers.
func parseViewBox(viewBox string) (x, y, w, h float64, err error) {
	fields := strings.Fields(strings.ReplaceAll(viewBox, ",", " "))
	if len(fields) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("malformed viewBox: %q", viewBox)
	}
	nums := make([]float64, 4)
	for i, f := range fields {
		nums[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, 0, 0, 0, fmt.Errorf("malformed viewBox: %q", viewBox)
		}
	}
	return nums[0], nums[1], nums[2], nums[3], nil
}

var lengthRe = regexp.MustCompile(`^([\d.]+)([a-z%]*)$`)

// lengthInPixels converts an SVG length attribute to pixels.
func lengthInPixels(value string) (float64, error) {
	m := lengthRe.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, fmt.Errorf("malformed length: %q", value)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed length: %q", value)
	}
	switch m[2] {
	case "", "px":
		return v, nil
	case "pt":
		return v * 1.25, nil
	case "pc":
		return v * 15, nil
	case "in":
		return v * 96, nil
	case "cm":
		return v * 96 / 2.54, nil
	case "mm":
		return v * 96 / 25.4, nil
	default:
		return 0, fmt.Errorf("unsupported unit: %q", m[2])
	}
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
