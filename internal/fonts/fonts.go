package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// ErrNotFound is returned when no font file matches a search.
var ErrNotFound = errors.New("font not found")

// BaseDirs returns candidate font directories, relative to the process working directory. The
// second entry covers running from cmd/<program>.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns the paths of all font files under dir, relative to dir and with forward
// slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// FindFont searches dirs in order for a font file whose relative path contains search, ignoring
// case, spaces, dashes and underscores. search may be a family ("Inter", "Google Sans") or a
// partial file name. An existing file path is returned as is. When several files match, one
// whose name contains "regular" wins.
func FindFont(dirs []string, search string) (string, error) {
	search = strings.TrimSpace(search)
	if isFont(search) {
		if _, err := os.Stat(search); err == nil {
			return search, nil
		}
		search = strings.TrimSuffix(filepath.Base(search), filepath.Ext(search))
	}
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", fmt.Errorf("font %q: %w", search, ErrNotFound)
	}
	var matches []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			return "", fmt.Errorf("scan %s: %w", base, err)
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("font %q: %w", search, ErrNotFound)
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
