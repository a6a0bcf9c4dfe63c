package pdftext

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtract_MalformedPDF(t *testing.T) {
	if _, err := Extract([]byte("this is not a pdf document")); err == nil {
		t.Error("Extract() error = nil, want error for malformed PDF")
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	if _, err := Extract(nil); err == nil {
		t.Error("Extract() error = nil, want error for empty input")
	}
}

func TestCollectPageTexts(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"source_Content_page_1.txt": "page one text",
		"source_Content_page_2.txt": "page two text",
		"notes.txt":                 "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := collectPageTexts(dir)
	if err != nil {
		t.Fatalf("collectPageTexts() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("collectPageTexts() returned %d pages, want 2", len(got))
	}
	if got[1] != "page one text" || got[2] != "page two text" {
		t.Errorf("collectPageTexts() = %v, want pages keyed by number", got)
	}
}

func TestCollectPageTexts_MissingDir(t *testing.T) {
	// A vanished extraction dir must surface an error, not read as a PDF
	// with no text.
	_, err := collectPageTexts(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Error("collectPageTexts() error = nil, want error for missing dir")
	}
}

func TestPageNumber(t *testing.T) {
	cases := []struct {
		name string
		want int
		ok   bool
	}{
		{"source_Content_page_1.txt", 1, true},
		{"source_Content_page_12.txt", 12, true},
		{"Content_page_3.txt", 3, true},
		{"source.pdf", 0, false},
		{"Content_page_.txt", 0, false},
	}
	for _, c := range cases {
		got, ok := pageNumber(c.name)
		if ok != c.ok || got != c.want {
			t.Errorf("pageNumber(%q) = (%d, %v), want (%d, %v)", c.name, got, ok, c.want, c.ok)
		}
	}
}
