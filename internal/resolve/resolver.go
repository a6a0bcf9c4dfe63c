// Package resolve turns a validated source specification into plain text
// plus a provenance description, regardless of where the text came from.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/dtnitsch/docstats/models"
	"github.com/dtnitsch/docstats/pkg/fetcher"
	"github.com/dtnitsch/docstats/pkg/htmltext"
	"github.com/dtnitsch/docstats/pkg/pdftext"
)

// ResolutionError is the single error kind the resolver surfaces. The
// message always names the implicated URL or URI; callers never see the
// underlying library error types directly.
type ResolutionError struct {
	Message string
	Err     error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// BlobReader is the storage capability the resolver depends on. Satisfied
// by *gcs.Reader; stubbed in tests.
type BlobReader interface {
	Download(ctx context.Context, uri string) ([]byte, error)
}

type Resolver struct {
	fetcher *fetcher.Fetcher
	storage BlobReader
	logger  *slog.Logger
}

// New builds a Resolver. storage may be nil when the process runs without
// cloud credentials; storage-backed sources then fail cleanly at resolve
// time instead of at startup.
func New(f *fetcher.Fetcher, storage BlobReader, logger *slog.Logger) *Resolver {
	return &Resolver{fetcher: f, storage: storage, logger: logger}
}

// Resolve dispatches on the populated source variant and returns the plain
// text together with its provenance description. It never returns
// partially-resolved state: any failure is a *ResolutionError.
func (r *Resolver) Resolve(ctx context.Context, src models.Source) (string, string, error) {
	switch src.Kind() {
	case models.SourceText:
		return src.Value(), "direct text", nil
	case models.SourceWebURL:
		return r.resolveWebURL(ctx, src.Value())
	case models.SourceGCSPDF:
		return r.resolveGCSPDF(ctx, src.Value())
	default:
		// Unreachable after ParseSource, kept as a guard.
		return "", "", &ResolutionError{Message: "invalid source"}
	}
}

var (
	errNoTextInPDF    = errors.New("no text in PDF")
	errNoTextInWebPDF = errors.New("no text in web PDF")
	errNoTextFromURL  = errors.New("no text from URL")
)

func (r *Resolver) resolveWebURL(ctx context.Context, pageURL string) (string, string, error) {
	fail := func(err error) (string, string, error) {
		return "", "", &ResolutionError{
			Message: fmt.Sprintf("Web URL error (%s)", pageURL),
			Err:     err,
		}
	}

	body, contentType, err := r.fetcher.Get(ctx, pageURL)
	if err != nil {
		return fail(err)
	}

	if isPDF(contentType, pageURL) {
		text, err := pdftext.Extract(body)
		if err != nil {
			return fail(err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return fail(errNoTextInWebPDF)
		}
		return text, "Web PDF: " + pageURL, nil
	}

	text, err := htmltext.Extract(body)
	if err != nil {
		return fail(err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fail(errNoTextFromURL)
	}

	if meta := htmltext.ArticleMeta(pageURL, body); meta.Title != "" {
		r.logger.Debug("resolved web page", "url", pageURL, "title", meta.Title, "site", meta.SiteName)
	}
	return text, "URL: " + pageURL, nil
}

func (r *Resolver) resolveGCSPDF(ctx context.Context, uri string) (string, string, error) {
	fail := func(err error) (string, string, error) {
		return "", "", &ResolutionError{
			Message: fmt.Sprintf("GCS PDF error (%s)", uri),
			Err:     err,
		}
	}

	if r.storage == nil {
		return fail(errors.New("storage client not configured"))
	}

	pdf, err := r.storage.Download(ctx, uri)
	if err != nil {
		return fail(err)
	}

	text, err := pdftext.Extract(pdf)
	if err != nil {
		return fail(err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fail(errNoTextInPDF)
	}
	return text, "GCS: " + uri, nil
}

// isPDF reports whether the response should be treated as a PDF document,
// judged by the declared content type or the URL's extension.
func isPDF(contentType, rawURL string) bool {
	if strings.Contains(strings.ToLower(contentType), "application/pdf") {
		return true
	}
	if u, err := url.Parse(rawURL); err == nil {
		return strings.HasSuffix(strings.ToLower(u.Path), ".pdf")
	}
	return strings.HasSuffix(strings.ToLower(rawURL), ".pdf")
}
