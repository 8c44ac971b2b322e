package themecheck

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// checkXMLFormatting verifies that every XML file under the include
// directory matches its canonical serialization, rewriting it when it
// does not. Comments are preserved.
func (th *Theme) checkXMLFormatting(ctx context.Context, report func(Result)) error {
	files, err := th.FindAll(".xml")
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

		formatted, err := canonicalXML(content)
		if err != nil {
			report(Fail(path, fmt.Sprintf("Could not parse XML file: %v", err)))
			continue
		}

		if bytes.Equal(formatted, content) {
			report(Success(path))
			continue
		}

		if err := os.WriteFile(path, formatted, 0o644); err != nil {
			return err
		}

		report(Fix(path, "Formatted XML file"))
	}

	return nil
}

// canonicalXML re-serializes an XML document with 2-space indentation, no
// XML declaration and a single trailing newline.
func canonicalXML(content []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("no root element")
	}

	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			doc.RemoveChild(pi)
			break
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	return append(bytes.TrimRight(out, "\n"), '\n'), nil
}

// checkMetadataIsComplete verifies that every system metadata file carries
// all required variables with non-empty values.
func (th *Theme) checkMetadataIsComplete(ctx context.Context, report func(Result)) error {
	files, err := th.Files(FolderMetadata)
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		root, err := parseXMLFile(path)
		if err != nil {
			return err
		}

		variables := root.SelectElement("variables")
		if variables == nil {
			report(Fail(path, "Missing primary <variables> tag"))
			continue
		}

		complete := true
		for _, tag := range th.Config.Metadata.RequiredTags {
			data := variables.SelectElement(tag)
			if data == nil {
				report(Fail(path, fmt.Sprintf("Missing <%s> tag in primary variables", tag)))
				complete = false
				continue
			}
			if strings.TrimSpace(data.Text()) == "" {
				report(Fail(path, fmt.Sprintf("Empty <%s> tag in primary variables", tag)))
				complete = false
			}
		}
		if complete {
			report(Success(path))
		}
	}

	return nil
}

// checkAllVariablesFullyTranslated verifies that every language block in
// the theme language file carries exactly the tag set of the primary
// variables block.
func (th *Theme) checkAllVariablesFullyTranslated(ctx context.Context, report func(Result)) error {
	langFile := th.LanguageFile()

	root, err := parseXMLFile(langFile)
	if err != nil {
		return err
	}

	primary := root.SelectElement("variables")
	if primary == nil {
		report(Fail(langFile, "Missing primary <variables> tag"))
		return nil
	}
	required := childTags(primary)

	complete := true
	for _, block := range root.FindElements("//variables") {
		attr := block.SelectAttr("lang")
		if attr == nil {
			continue
		}
		lang := strings.ToLower(strings.TrimSpace(attr.Value))

		langTags := childTags(block)
		for _, tag := range sortedKeys(required) {
			if !langTags[tag] {
				report(Fail(langFile, fmt.Sprintf("Missing <%s> in language: %s", tag, lang)))
				complete = false
				continue
			}
			delete(langTags, tag)
		}
		for _, tag := range sortedKeys(langTags) {
			report(Fail(langFile, fmt.Sprintf("Unexpected <%s> in language: %s", tag, lang)))
			complete = false
		}
	}

	if complete {
		report(Success(langFile))
	}
	return nil
}

// checkAllSystemsFullyTranslated verifies that every metadata file has a
// translation block for every language declared in the theme language
// file.
func (th *Theme) checkAllSystemsFullyTranslated(ctx context.Context, report func(Result)) error {
	langFile := th.LanguageFile()

	root, err := parseXMLFile(langFile)
	if err != nil {
		return err
	}

	required := make(map[string]bool)
	for _, block := range root.FindElements("//variables") {
		attr := block.SelectAttr("lang")
		if attr == nil {
			continue
		}
		required[strings.ToLower(strings.TrimSpace(attr.Value))] = true
	}

	if len(required) == 0 {
		report(Fail(langFile, "No languages found"))
		return nil
	}

	files, err := th.Files(FolderMetadata)
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		root, err := parseXMLFile(path)
		if err != nil {
			return err
		}

		expected := make(map[string]bool, len(required))
		for lang := range required {
			expected[lang] = true
		}

		complete := true
		for _, block := range root.SelectElements("variables") {
			attr := block.SelectAttr("lang")
			if attr == nil {
				continue
			}
			lang := strings.ToLower(strings.TrimSpace(attr.Value))
			if !expected[lang] {
				report(Fail(path, fmt.Sprintf("Unexpected language: %s", lang)))
				complete = false
				continue
			}
			delete(expected, lang)
		}

		if len(expected) > 0 {
			missing := strings.Join(sortedKeys(expected), ", ")
			report(Fail(path, fmt.Sprintf("Missing translations: %s", missing)))
			continue
		}
		if complete {
			report(Success(path))
		}
	}

	return nil
}

// parseXMLFile parses an XML file and returns its root element. A parse
// error here is a fault, not a finding; formatting checks report parse
// problems per file instead.
func parseXMLFile(path string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parse %s: no root element", path)
	}
	return root, nil
}

func childTags(el *etree.Element) map[string]bool {
	tags := make(map[string]bool)
	for _, child := range el.ChildElements() {
		tags[child.Tag] = true
	}
	return tags
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
