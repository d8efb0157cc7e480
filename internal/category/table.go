package category

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultFallback is the folder for files no category claims.
const DefaultFallback = "Others"

// Category pairs a folder name with the extensions it owns.
type Category struct {
	Name       string
	Extensions []string
}

// Table classifies file names by extension.
type Table struct {
	categories []entry
	fallback   string
}

type entry struct {
	name       string
	extensions map[string]struct{}
}

// Casers keep state between calls, so each lookup builds its own.
func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// New validates and normalizes categories into a Table. An empty fallback
// selects DefaultFallback.
func New(categories []Category, fallback string) (*Table, error) {
	fallback = strings.TrimSpace(fallback)
	if fallback == "" {
		fallback = DefaultFallback
	}
	if err := validateName(fallback); err != nil {
		return nil, fmt.Errorf("fallback category: %w", err)
	}
	if len(categories) == 0 {
		return nil, errors.New("at least one category is required")
	}

	seen := map[string]struct{}{toLower(fallback): {}}
	entries := make([]entry, 0, len(categories))
	for i, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if err := validateName(name); err != nil {
			return nil, fmt.Errorf("category %d: %w", i+1, err)
		}
		key := toLower(name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("category %q is defined more than once or shadows the fallback", name)
		}
		seen[key] = struct{}{}

		if len(cat.Extensions) == 0 {
			return nil, fmt.Errorf("category %q has no extensions", name)
		}
		exts := make(map[string]struct{}, len(cat.Extensions))
		for _, raw := range cat.Extensions {
			ext, err := NormalizeExtension(raw)
			if err != nil {
				return nil, fmt.Errorf("category %q: %w", name, err)
			}
			exts[ext] = struct{}{}
		}
		entries = append(entries, entry{name: name, extensions: exts})
	}
	return &Table{categories: entries, fallback: fallback}, nil
}

// Default returns the built-in table: Images, Documents, Audio, Video and
// Archives, falling back to Others.
func Default() *Table {
	table, err := New(DefaultCategories(), DefaultFallback)
	if err != nil {
		panic(fmt.Sprintf("category: invalid default table: %v", err))
	}
	return table
}

// DefaultCategories returns a fresh copy of the built-in category list.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".tiff", ".ico", ".webp"}},
		{Name: "Documents", Extensions: []string{".pdf", ".docx", ".doc", ".txt", ".xlsx", ".xls", ".pptx", ".ppt", ".csv", ".md", ".odt"}},
		{Name: "Audio", Extensions: []string{".mp3", ".wav", ".aac", ".flac", ".ogg", ".m4a"}},
		{Name: "Video", Extensions: []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".iso"}},
	}
}

// NormalizeExtension trims, lower-cases and dot-prefixes an extension.
func NormalizeExtension(raw string) (string, error) {
	ext := strings.TrimSpace(raw)
	ext = strings.TrimLeft(ext, ".")
	if ext == "" {
		return "", fmt.Errorf("empty extension %q", raw)
	}
	if strings.ContainsAny(ext, `/\`) {
		return "", fmt.Errorf("extension %q contains a path separator", raw)
	}
	return "." + toLower(ext), nil
}

func validateName(name string) error {
	switch {
	case name == "":
		return errors.New("name must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("name %q is reserved", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("name %q contains a path separator", name)
	}
	return nil
}

// Classify returns the category folder for fileName. Matching is on the last
// extension only and ignores case; names without an extension fall back.
func (t *Table) Classify(fileName string) string {
	ext := Extension(fileName)
	if ext == "" {
		return t.fallback
	}
	ext = toLower(ext)
	for _, cat := range t.categories {
		if _, ok := cat.extensions[ext]; ok {
			return cat.name
		}
	}
	return t.fallback
}

// Names lists the category folders in match order, fallback last.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.categories)+1)
	for _, cat := range t.categories {
		names = append(names, cat.name)
	}
	return append(names, t.fallback)
}

// Fallback returns the folder used for unmatched files.
func (t *Table) Fallback() string {
	return t.fallback
}

// Categories returns a copy of the table with extensions sorted per category.
func (t *Table) Categories() []Category {
	out := make([]Category, 0, len(t.categories))
	for _, cat := range t.categories {
		exts := make([]string, 0, len(cat.extensions))
		for ext := range cat.extensions {
			exts = append(exts, ext)
		}
		slices.Sort(exts)
		out = append(out, Category{Name: cat.name, Extensions: exts})
	}
	return out
}

// Extension returns the final suffix of name including its dot. Dotfiles such
// as ".bashrc" and names ending in a dot have no extension.
func Extension(name string) string {
	_, ext := SplitExt(name)
	return ext
}

// SplitExt splits a base name into stem and extension using the same rules as
// Extension.
func SplitExt(name string) (string, string) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == "" || ext == "." || ext == base {
		return base, ""
	}
	return strings.TrimSuffix(base, ext), ext
}
