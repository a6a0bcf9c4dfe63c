// Package models defines the data structures passed between the source
// resolver, the metrics engine, and the protocol adapters.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// GCSScheme is the URI prefix required for storage-backed PDF sources.
const GCSScheme = "gs://"

// SourceKind identifies which variant of a Source is populated.
type SourceKind int

const (
	SourceInvalid SourceKind = iota
	SourceText               // inline text, scored as-is
	SourceWebURL             // HTML page or PDF reachable over HTTP(S)
	SourceGCSPDF             // PDF object in Google Cloud Storage
)

func (k SourceKind) String() string {
	switch k {
	case SourceText:
		return "text"
	case SourceWebURL:
		return "web_url"
	case SourceGCSPDF:
		return "gcs_pdf_uri"
	default:
		return "invalid"
	}
}

// Source is a validated, tagged input source. The zero value is invalid;
// instances are only constructed through NewSource or ParseSource, so a
// Source in hand always satisfies the exactly-one-variant rule.
type Source struct {
	kind  SourceKind
	value string
}

// Kind reports which variant is populated.
func (s Source) Kind() SourceKind { return s.kind }

// Value returns the variant payload: the text itself, the URL, or the gs:// URI.
func (s Source) Value() string { return s.value }

// ErrExclusiveSource is returned when zero or more than one source field is
// populated.
var ErrExclusiveSource = errors.New("exactly one of text, web_url, or gcs_pdf_uri must be provided")

// ErrEmptyText is returned when the text field is present but empty. This is
// deliberately distinct from ErrExclusiveSource: an explicitly supplied empty
// string is a different caller mistake than omitting the field.
var ErrEmptyText = errors.New("text must not be empty")

// NewSource validates and constructs a Source from the three candidate
// fields. Empty strings count as absent.
func NewSource(text, webURL, gcsURI string) (Source, error) {
	var populated []Source
	if text != "" {
		populated = append(populated, Source{kind: SourceText, value: text})
	}
	if webURL != "" {
		populated = append(populated, Source{kind: SourceWebURL, value: webURL})
	}
	if gcsURI != "" {
		populated = append(populated, Source{kind: SourceGCSPDF, value: gcsURI})
	}
	if len(populated) != 1 {
		return Source{}, ErrExclusiveSource
	}

	src := populated[0]
	if src.kind == SourceGCSPDF && !strings.HasPrefix(src.value, GCSScheme) {
		return Source{}, fmt.Errorf("gcs_pdf_uri must be a valid %s URI", GCSScheme)
	}
	return src, nil
}

// ParseSource decodes the JSON request shape and validates it. Unlike
// NewSource it can tell a present-but-empty text field from an absent one.
func ParseSource(data []byte) (Source, error) {
	var raw struct {
		Text      *string `json:"text"`
		WebURL    *string `json:"web_url"`
		GCSPDFURI *string `json:"gcs_pdf_uri"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Source{}, fmt.Errorf("invalid request body: %w", err)
	}

	if raw.Text != nil && *raw.Text == "" {
		return Source{}, ErrEmptyText
	}

	var text, webURL, gcsURI string
	if raw.Text != nil {
		text = *raw.Text
	}
	if raw.WebURL != nil {
		webURL = *raw.WebURL
	}
	if raw.GCSPDFURI != nil {
		gcsURI = *raw.GCSPDFURI
	}
	return NewSource(text, webURL, gcsURI)
}
