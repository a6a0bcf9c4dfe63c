package metrics

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func testEngine() *Engine {
	return NewEngine(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func longProse() string {
	paragraph := "The old dog walked down the long road to the farm. " +
		"He liked to stop and smell the green grass near the gate. " +
		"A small bird sat on the fence and sang a song in the morning sun. " +
		"The farmer waved to the dog and went back to his work in the field. "
	return strings.Repeat(paragraph, 3)
}

func TestScore_EmptyText(t *testing.T) {
	e := testEngine()
	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := e.Score(text, "direct text")
		if err == nil {
			t.Fatalf("Score(%q) error = nil, want empty-text error", text)
		}
		if _, ok := err.(*MetricsError); !ok {
			t.Errorf("Score(%q) error = %T, want *MetricsError", text, err)
		}
	}
}

func TestScore_ZeroWords(t *testing.T) {
	e := testEngine()
	_, err := e.Score("... !!! ???", "direct text")
	if err == nil {
		t.Fatal("Score() error = nil, want zero-words error")
	}
	metErr, ok := err.(*MetricsError)
	if !ok {
		t.Fatalf("Score() error = %T, want *MetricsError", err)
	}
	if metErr.Message != "zero words" {
		t.Errorf("Score() error message = %q, want %q", metErr.Message, "zero words")
	}
}

func TestScore_ShortText(t *testing.T) {
	e := testEngine()
	scores, err := e.Score("long black cat so nice and fat", "direct text")
	if err != nil {
		t.Fatalf("Score() error = %v, want nil", err)
	}

	if scores.WordCount != 7 {
		t.Errorf("WordCount = %d, want 7", scores.WordCount)
	}
	if scores.Spache != nil {
		t.Errorf("Spache = %v, want nil below 100 words", *scores.Spache)
	}

	classic := map[string]*float64{
		"flesch_reading_ease":          scores.FleschReadingEase,
		"flesch_kincaid_grade":         scores.FleschKincaidGrade,
		"gunning_fog":                  scores.GunningFog,
		"smog_index":                   scores.SMOGIndex,
		"automated_readability_index":  scores.AutomatedReadabilityIndex,
		"coleman_liau_index":           scores.ColemanLiauIndex,
		"linsear_write_formula":        scores.LinsearWriteFormula,
		"dale_chall_readability_score": scores.DaleChallReadabilityScore,
	}
	for name, v := range classic {
		if v == nil {
			t.Errorf("%s = nil, want value even for short text", name)
		}
	}
	if scores.TextStandard == nil {
		t.Error("TextStandard = nil, want value")
	}
}

func TestScore_LongText(t *testing.T) {
	e := testEngine()
	scores, err := e.Score(longProse(), "direct text")
	if err != nil {
		t.Fatalf("Score() error = %v, want nil", err)
	}
	if scores.WordCount < 100 {
		t.Fatalf("WordCount = %d, want >= 100 for this fixture", scores.WordCount)
	}
	if scores.Spache == nil {
		t.Error("Spache = nil, want value at >= 100 words")
	}
	if scores.SyllableCount <= 0 {
		t.Errorf("SyllableCount = %d, want > 0", scores.SyllableCount)
	}
	if scores.SentenceCount <= 0 {
		t.Errorf("SentenceCount = %d, want > 0", scores.SentenceCount)
	}
}

func TestScore_Idempotent(t *testing.T) {
	e := testEngine()
	text := "long black cat so nice and fat"

	s1, err := e.Score(text, "direct text")
	if err != nil {
		t.Fatalf("Score() first call error = %v", err)
	}
	s2, err := e.Score(text, "direct text")
	if err != nil {
		t.Fatalf("Score() second call error = %v", err)
	}

	j1, _ := json.Marshal(s1)
	j2, _ := json.Marshal(s2)
	if string(j1) != string(j2) {
		t.Errorf("bundles differ across calls:\n%s\n%s", j1, j2)
	}
}

func TestScore_JSONShape(t *testing.T) {
	e := testEngine()
	scores, err := e.Score("long black cat so nice and fat", "direct text")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	data, err := json.Marshal(scores)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if v, present := decoded["spache"]; !present || v != nil {
		t.Errorf("spache field = %v (present %v), want explicit null", v, present)
	}
	for _, key := range []string{
		"flesch_reading_ease", "flesch_kincaid_grade", "gunning_fog",
		"smog_index", "automated_readability_index", "coleman_liau_index",
		"linsear_write_formula", "dale_chall_readability_score",
		"text_standard", "syllable_count", "word_count", "sentence_count",
	} {
		if _, present := decoded[key]; !present {
			t.Errorf("output missing %q field", key)
		}
	}
}
