package themecheck

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// checkSystemsAreComplete verifies that each system with metadata also has
// all required images.
func (th *Theme) checkSystemsAreComplete(ctx context.Context, report func(Result)) error {
	backgrounds, err := th.Stems(FolderBackgrounds)
	if err != nil {
		return err
	}
	controllers, err := th.Stems(FolderControllers)
	if err != nil {
		return err
	}
	logos, err := th.Stems(FolderLogos)
	if err != nil {
		return err
	}

	systems, err := th.Files(FolderMetadata)
	if err != nil {
		return err
	}

	for _, system := range systems {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch name := stem(system); {
		case !backgrounds[name]:
			report(Fail(system, "Missing background"))
		case !controllers[name]:
			report(Fail(system, "Missing controller"))
		case !logos[name]:
			report(Fail(system, "Missing logo"))
		default:
			report(Success(system))
		}
	}

	return nil
}

// checkAllImagesHaveSystem verifies that every image has an associated
// system metadata file.
func (th *Theme) checkAllImagesHaveSystem(ctx context.Context, report func(Result)) error {
	systems, err := th.Stems(FolderMetadata)
	if err != nil {
		return err
	}

	folders := []string{FolderBackgrounds, FolderOverlays, FolderLogos, FolderControllers, FolderVectorLogos}
	for _, folder := range folders {
		files, err := th.Files(folder)
		if err != nil {
			return err
		}
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !systems[stem(f)] {
				report(Fail(f, "No associated system metadata"))
			} else {
				report(Success(f))
			}
		}
	}

	return nil
}

// checkFileExtensions verifies that every asset file carries the expected
// extension for its category folder.
func (th *Theme) checkFileExtensions(ctx context.Context, report func(Result)) error {
	folders := make([]string, 0, len(th.Config.Extensions))
	for folder := range th.Config.Extensions {
		folders = append(folders, folder)
	}
	sort.Strings(folders)

	for _, folder := range folders {
		ext := th.Config.Extensions[folder]
		files, err := th.Files(folder)
		if err != nil {
			return err
		}
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			if got := filepath.Ext(f); got != ext {
				report(Fail(f, fmt.Sprintf("Expected a %s file but got: %s", ext, got)))
			} else {
				report(Success(f))
			}
		}
	}

	return nil
}

// checkNoMissingCollections verifies that the collection systems declared
// in metadata and the entries of the collections reference list match
// exactly, reporting one Failure per entry present on only one side.
func (th *Theme) checkNoMissingCollections(ctx context.Context, report func(Result)) error {
	systems, err := th.Files(FolderMetadata)
	if err != nil {
		return err
	}

	collectionTypes := make(map[string]bool, len(th.Config.Metadata.CollectionTypes))
	for _, t := range th.Config.Metadata.CollectionTypes {
		collectionTypes[t] = true
	}

	var systemCollections []string
	for _, path := range systems {
		if err := ctx.Err(); err != nil {
			return err
		}
		root, err := parseXMLFile(path)
		if err != nil {
			return err
		}
		variables := root.SelectElement("variables")
		if variables == nil {
			return fmt.Errorf("%s: missing primary <variables> tag", path)
		}
		hardware := variables.SelectElement("systemHardwareType")
		if hardware == nil {
			return fmt.Errorf("%s: missing <systemHardwareType> tag", path)
		}
		if collectionTypes[hardware.Text()] {
			systemCollections = append(systemCollections, path)
		}
	}

	collectionsFile := th.CollectionsFile()
	themeCollections, err := readCollections(collectionsFile)
	if err != nil {
		return err
	}

	for _, system := range systemCollections {
		if !themeCollections[stem(system)] {
			report(Fail(system, "Collection not referenced"))
		} else {
			delete(themeCollections, stem(system))
			report(Success(system))
		}
	}

	for _, extra := range sortedKeys(themeCollections) {
		report(Fail(collectionsFile, fmt.Sprintf("Collections file has extra entry: %s", extra)))
	}

	return nil
}

// readCollections reads the flat collections reference list, skipping
// comments and blank lines.
func readCollections(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries[line] = true
	}
	return entries, scanner.Err()
}
