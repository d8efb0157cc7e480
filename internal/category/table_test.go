package category_test

import (
	"slices"
	"strings"
	"testing"

	"foldersort/internal/category"
)

func TestDefaultClassifiesKnownExtensions(t *testing.T) {
	table := category.Default()
	cases := map[string]string{
		"photo.JPG":      "Images",
		"icon.ico":       "Images",
		"notes.txt":      "Documents",
		"Report.PDF":     "Documents",
		"song.flac":      "Audio",
		"clip.mp4":       "Video",
		"movie.MKV":      "Video",
		"archive.zip":    "Archives",
		"backup.tar.gz":  "Archives",
		"disk.iso":       "Archives",
		"script.xyz":     "Others",
		"Makefile":       "Others",
		".bashrc":        "Others",
		"trailing.":      "Others",
		"photo.jpg.part": "Others",
	}
	for name, want := range cases {
		if got := table.Classify(name); got != want {
			t.Fatalf("Classify(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestDefaultNamesIncludeFallbackLast(t *testing.T) {
	got := category.Default().Names()
	want := []string{"Images", "Documents", "Audio", "Video", "Archives", "Others"}
	if !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestFirstMatchingCategoryWins(t *testing.T) {
	table, err := category.New([]category.Category{
		{Name: "Raw", Extensions: []string{"jpg"}},
		{Name: "Images", Extensions: []string{".jpg", ".png"}},
	}, "Misc")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := table.Classify("a.JPG"); got != "Raw" {
		t.Fatalf("expected first category to win, got %q", got)
	}
	if got := table.Classify("a.png"); got != "Images" {
		t.Fatalf("unexpected category for png: %q", got)
	}
	if got := table.Classify("a.doc"); got != "Misc" {
		t.Fatalf("expected custom fallback, got %q", got)
	}
}

func TestNewNormalizesExtensions(t *testing.T) {
	table, err := category.New([]category.Category{
		{Name: "Books", Extensions: []string{" EPUB ", "..Mobi"}},
	}, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if table.Fallback() != category.DefaultFallback {
		t.Fatalf("expected default fallback, got %q", table.Fallback())
	}
	cats := table.Categories()
	if len(cats) != 1 || !slices.Equal(cats[0].Extensions, []string{".epub", ".mobi"}) {
		t.Fatalf("unexpected normalized categories: %+v", cats)
	}
}

func TestNewRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name     string
		cats     []category.Category
		fallback string
		wantErr  string
	}{
		{name: "empty", cats: nil, wantErr: "at least one category"},
		{name: "blank name", cats: []category.Category{{Name: " ", Extensions: []string{".a"}}}, wantErr: "must not be empty"},
		{name: "separator", cats: []category.Category{{Name: "a/b", Extensions: []string{".a"}}}, wantErr: "path separator"},
		{name: "duplicate", cats: []category.Category{{Name: "A", Extensions: []string{".a"}}, {Name: "a", Extensions: []string{".b"}}}, wantErr: "more than once"},
		{name: "shadows fallback", cats: []category.Category{{Name: "others", Extensions: []string{".a"}}}, wantErr: "shadows the fallback"},
		{name: "no extensions", cats: []category.Category{{Name: "A"}}, wantErr: "no extensions"},
		{name: "empty extension", cats: []category.Category{{Name: "A", Extensions: []string{"."}}}, wantErr: "empty extension"},
		{name: "bad fallback", cats: category.DefaultCategories(), fallback: "..", wantErr: "reserved"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := category.New(tc.cats, tc.fallback)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestSplitExt(t *testing.T) {
	tests := []struct {
		in, stem, ext string
	}{
		{"report.pdf", "report", ".pdf"},
		{"backup.tar.gz", "backup.tar", ".gz"},
		{".bashrc", ".bashrc", ""},
		{"file.", "file.", ""},
		{"README", "README", ""},
	}
	for _, tc := range tests {
		stem, ext := category.SplitExt(tc.in)
		if stem != tc.stem || ext != tc.ext {
			t.Fatalf("SplitExt(%q) = (%q, %q), want (%q, %q)", tc.in, stem, ext, tc.stem, tc.ext)
		}
	}
}
