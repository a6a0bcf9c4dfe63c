// Package pdftext extracts plain text from PDF bytes. It is the single
// extraction routine shared by the web-PDF and storage-PDF source branches.
package pdftext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Extract concatenates the text of every page in order. Pages that yield no
// text contribute an empty string rather than failing; a document that
// cannot be read at all is an error. pdfcpu works on files, so the bytes
// take a round trip through a temp directory.
func Extract(pdf []byte) (string, error) {
	tempDir, err := os.MkdirTemp("", "docstats-pdf-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile := filepath.Join(tempDir, "source.pdf")
	if err := os.WriteFile(tempFile, pdf, 0o644); err != nil {
		return "", fmt.Errorf("failed to write temp PDF file: %w", err)
	}

	pdfCtx, err := api.ReadContextFile(tempFile)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}
	pageCount := pdfCtx.PageCount

	outDir := filepath.Join(tempDir, "pages")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create extraction dir: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractContentFile(tempFile, outDir, nil, conf); err != nil {
		return "", fmt.Errorf("failed to extract PDF content: %w", err)
	}

	pageTexts, err := collectPageTexts(outDir)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		// Missing pages contribute nothing, matching the empty-string
		// contract for unextractable pages.
		builder.WriteString(pageTexts[pageNum])
	}
	return builder.String(), nil
}

// collectPageTexts reads the per-page content files pdfcpu wrote into
// outDir, named <basename>_Content_page_<n>.txt, keyed by page number.
func collectPageTexts(outDir string) (map[int]string, error) {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list extracted pages: %w", err)
	}

	pageTexts := make(map[int]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		pageNum, ok := pageNumber(entry.Name())
		if !ok {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
		if err != nil {
			continue
		}
		pageTexts[pageNum] = string(content)
	}
	return pageTexts, nil
}

// pageNumber parses the page index out of an extracted content filename,
// tolerating whatever basename pdfcpu prepends.
func pageNumber(name string) (int, bool) {
	const marker = "Content_page_"
	i := strings.Index(name, marker)
	if i < 0 {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(name[i+len(marker):], "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}
