package themecheck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Asset category folders under the include directory.
const (
	FolderBackgrounds = "backgrounds"
	FolderControllers = "controllers"
	FolderLogos       = "logos"
	FolderOverlays    = "overlays"
	FolderVectorLogos = "logos-svg"
	FolderMetadata    = "metadata"
)

// Dir is the root directory of a theme repository.
type Dir string

// FilePath returns the full path of the given name joined with dir.
func (dir Dir) FilePath(name ...string) string {
	return filepath.Join(append([]string{string(dir)}, name...)...)
}

// Theme provides access to the asset tree of a theme repository according
// to its layout conventions.
type Theme struct {
	Root   Dir
	Config Config
}

// NewTheme returns a Theme rooted at the given directory with the given
// configuration.
func NewTheme(root string, config Config) *Theme {
	return &Theme{Root: Dir(filepath.Clean(root)), Config: config}
}

// IncDir returns the path of the include directory that holds the asset
// category folders.
func (th *Theme) IncDir() string {
	return th.Root.FilePath(th.Config.IncludeDir)
}

// LanguageFile returns the path of the theme language definition file.
func (th *Theme) LanguageFile() string {
	return filepath.Join(th.IncDir(), th.Config.UIComponentsDir, th.Config.LanguageFile)
}

// CollectionsFile returns the path of the collections reference list.
func (th *Theme) CollectionsFile() string {
	return th.Root.FilePath(th.Config.CollectionsFile)
}

// Files returns the files of one asset category folder in lexical order.
// Entries whose name starts with "_" are skipped. A missing folder or a
// nested directory entry is an error.
func (th *Theme) Files(folder string) ([]string, error) {
	dir := filepath.Join(th.IncDir(), folder)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid folder %q: %w", folder, err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "_") {
			continue
		}
		if entry.IsDir() {
			return nil, fmt.Errorf("found unexpected non-file: %s", filepath.Join(dir, entry.Name()))
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// Stems returns the set of file names, extension stripped, of one asset
// category folder.
func (th *Theme) Stems(folder string) (map[string]bool, error) {
	files, err := th.Files(folder)
	if err != nil {
		return nil, err
	}
	stems := make(map[string]bool, len(files))
	for _, f := range files {
		stems[stem(f)] = true
	}
	return stems, nil
}

// FindAll returns every file under the include directory with the given
// extension, in lexical order.
func (th *Theme) FindAll(ext string) ([]string, error) {
	pattern := "**/*." + strings.TrimPrefix(ext, ".")
	matches, err := doublestar.Glob(os.DirFS(th.IncDir()), pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, filepath.Join(th.IncDir(), filepath.FromSlash(m)))
	}
	return files, nil
}

// stem returns the file name without its extension.
func stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
