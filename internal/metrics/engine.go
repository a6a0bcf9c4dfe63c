// Package metrics computes the readability score bundle for resolved text.
package metrics

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/dtnitsch/docstats/models"
	"github.com/dtnitsch/docstats/pkg/textstat"
)

// MetricsError marks input the engine refuses to score: empty text or text
// with no lexical words.
type MetricsError struct {
	Message string
}

func (e *MetricsError) Error() string { return e.Message }

// minWordsForStableScores is the input length below which the engine emits
// a warning; the classic indices stay defined, they just get noisy.
const minWordsForStableScores = 100

type Engine struct {
	logger   *slog.Logger
	detector lingua.LanguageDetector
}

// NewEngine builds the engine, including the language detector used for the
// non-English warning. The formulas are calibrated for English prose.
func NewEngine(logger *slog.Logger) *Engine {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Spanish,
			lingua.French,
			lingua.German,
			lingua.Italian,
			lingua.Portuguese,
		).
		Build()
	return &Engine{logger: logger, detector: detector}
}

// Score validates the text and computes the full bundle. provenance tags
// the warnings so operators can tell which source produced short or
// non-English input. Spache is the only metric allowed to degrade to null;
// every other failure is terminal for the request.
func (e *Engine) Score(text, provenance string) (*models.Scores, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &MetricsError{Message: "empty text"}
	}

	wc := textstat.LexiconCount(text)
	if wc == 0 {
		return nil, &MetricsError{Message: "zero words"}
	}
	if wc < minWordsForStableScores {
		e.logger.Warn("text below 100 words, scores may be unstable", "source", provenance, "word_count", wc)
	}

	if lang, ok := e.detector.DetectLanguageOf(text); ok && lang != lingua.English {
		e.logger.Warn("text does not appear to be English, formulas are English-calibrated",
			"source", provenance, "detected_language", lang.String())
	}

	scores := &models.Scores{
		SyllableCount: textstat.SyllableCount(text),
		WordCount:     wc,
		SentenceCount: textstat.SentenceCount(text),
	}
	scores.FleschReadingEase = ptr(textstat.FleschReadingEase(text))
	scores.FleschKincaidGrade = ptr(textstat.FleschKincaidGrade(text))
	scores.GunningFog = ptr(textstat.GunningFog(text))
	scores.SMOGIndex = ptr(textstat.SMOGIndex(text))
	scores.AutomatedReadabilityIndex = ptr(textstat.AutomatedReadabilityIndex(text))
	scores.ColemanLiauIndex = ptr(textstat.ColemanLiauIndex(text))
	scores.LinsearWriteFormula = ptr(textstat.LinsearWriteFormula(text))
	scores.DaleChallReadabilityScore = ptr(textstat.DaleChallReadabilityScore(text))
	scores.TextStandard = ptr(textstat.TextStandard(text))

	if spache, err := textstat.Spache(text); err != nil {
		if errors.Is(err, textstat.ErrShortText) {
			e.logger.Warn("spache score not computed", "source", provenance, "error", err)
		} else {
			e.logger.Error("unexpected spache failure", "source", provenance, "error", err)
		}
	} else {
		scores.Spache = &spache
	}

	return scores, nil
}

func ptr[T any](v T) *T { return &v }
