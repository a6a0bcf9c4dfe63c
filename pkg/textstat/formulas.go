package textstat

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrShortText is returned by formulas with a documented minimum input
// length, currently only Spache. Callers branch on it with errors.Is to
// tell the expected short-input case from real failures.
var ErrShortText = errors.New("text is shorter than the formula's 100 word minimum")

// stats bundles the counts every formula starts from. Divisors are floored
// at 1 so no formula divides by zero on degenerate input.
type stats struct {
	words     float64
	sentences float64
	syllables float64
	chars     float64
}

func gather(text string) stats {
	s := stats{
		words:     float64(LexiconCount(text)),
		sentences: float64(SentenceCount(text)),
		syllables: float64(SyllableCount(text)),
		chars:     float64(CharacterCount(text)),
	}
	if s.words < 1 {
		s.words = 1
	}
	if s.sentences < 1 {
		s.sentences = 1
	}
	return s
}

// FleschReadingEase returns the Flesch Reading Ease score (higher is easier).
func FleschReadingEase(text string) float64 {
	s := gather(text)
	return round2(206.835 - 1.015*(s.words/s.sentences) - 84.6*(s.syllables/s.words))
}

// FleschKincaidGrade returns the Flesch-Kincaid grade level.
func FleschKincaidGrade(text string) float64 {
	s := gather(text)
	return round2(0.39*(s.words/s.sentences) + 11.8*(s.syllables/s.words) - 15.59)
}

// GunningFog returns the Gunning Fog index.
func GunningFog(text string) float64 {
	s := gather(text)
	hard := float64(polysyllableCount(text))
	return round2(0.4 * ((s.words / s.sentences) + 100*(hard/s.words)))
}

// SMOGIndex returns the SMOG grade.
func SMOGIndex(text string) float64 {
	s := gather(text)
	poly := float64(polysyllableCount(text))
	return round2(1.043*math.Sqrt(poly*(30/s.sentences)) + 3.1291)
}

// AutomatedReadabilityIndex returns the ARI grade level.
func AutomatedReadabilityIndex(text string) float64 {
	s := gather(text)
	return round2(4.71*(s.chars/s.words) + 0.5*(s.words/s.sentences) - 21.43)
}

// ColemanLiauIndex returns the Coleman-Liau grade level.
func ColemanLiauIndex(text string) float64 {
	s := gather(text)
	l := s.chars / s.words * 100      // letters per 100 words
	sp := s.sentences / s.words * 100 // sentences per 100 words
	return round2(0.0588*l - 0.296*sp - 15.8)
}

// LinsearWriteFormula returns the Linsear Write grade, computed over a
// sample of the first 100 words.
func LinsearWriteFormula(text string) float64 {
	ws := words(text)
	if len(ws) > 100 {
		ws = ws[:100]
	}
	points := 0.0
	for _, w := range ws {
		if syllablesInWord(w) >= 3 {
			points += 3
		} else {
			points++
		}
	}
	sample := strings.Join(ws, " ")
	sentences := float64(SentenceCount(sample))
	if sentences < 1 {
		sentences = 1
	}
	score := points / sentences
	if score <= 20 {
		score -= 2
	}
	return round2(score / 2)
}

// DaleChallReadabilityScore returns the new Dale-Chall score, based on the
// share of words outside the familiar-word list.
func DaleChallReadabilityScore(text string) float64 {
	s := gather(text)
	difficult := float64(difficultWordCount(text, daleChallFamiliar))
	pctDifficult := difficult / s.words * 100
	score := 0.1579*pctDifficult + 0.0496*(s.words/s.sentences)
	if pctDifficult > 5 {
		score += 3.6365
	}
	return round2(score)
}

// Spache returns the revised Spache readability score. Texts under 100
// lexical words fail with ErrShortText; the formula's word sampling is not
// meaningful below that.
func Spache(text string) (float64, error) {
	s := gather(text)
	if LexiconCount(text) < 100 {
		return 0, fmt.Errorf("spache: %w", ErrShortText)
	}
	unfamiliar := float64(difficultWordCount(text, spacheFamiliar))
	pctUnfamiliar := unfamiliar / s.words * 100
	return round2(0.121*(s.words/s.sentences) + 0.082*pctUnfamiliar + 0.659), nil
}

// TextStandard returns the consensus grade level across the classic
// formulas, formatted with one decimal ("8.0"). Each formula votes with its
// rounded grade; the most common vote wins, ties going to the lower grade.
func TextStandard(text string) string {
	grades := []float64{
		FleschKincaidGrade(text),
		fleschToGrade(FleschReadingEase(text)),
		GunningFog(text),
		SMOGIndex(text),
		AutomatedReadabilityIndex(text),
		ColemanLiauIndex(text),
		LinsearWriteFormula(text),
		daleChallToGrade(DaleChallReadabilityScore(text)),
	}

	votes := make(map[int]int)
	for _, g := range grades {
		r := int(math.Round(g))
		if r < 0 {
			r = 0
		}
		votes[r]++
	}

	keys := make([]int, 0, len(votes))
	for k := range votes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	best, bestCount := 0, -1
	for _, k := range keys {
		if votes[k] > bestCount {
			best, bestCount = k, votes[k]
		}
	}
	return fmt.Sprintf("%.1f", float64(best))
}

// fleschToGrade maps a Flesch Reading Ease score onto a school grade band.
func fleschToGrade(score float64) float64 {
	switch {
	case score >= 90:
		return 5
	case score >= 80:
		return 6
	case score >= 70:
		return 7
	case score >= 60:
		return 8.5
	case score >= 50:
		return 11
	case score >= 30:
		return 13
	default:
		return 15
	}
}

// daleChallToGrade maps a Dale-Chall score onto the midpoint of its
// published grade range.
func daleChallToGrade(score float64) float64 {
	switch {
	case score < 5:
		return 4
	case score < 6:
		return 5.5
	case score < 7:
		return 7.5
	case score < 8:
		return 9.5
	case score < 9:
		return 11.5
	default:
		return 14
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
