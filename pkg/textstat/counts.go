// Package textstat implements the text statistics and readability formulas
// the metrics engine delegates to: lexicon, syllable, and sentence counts,
// the eight classic grade-level indices, a consensus text standard, and the
// Spache score with its 100-word precondition.
package textstat

import (
	"strings"
	"unicode"
)

// words splits text into lexical words: whitespace-separated tokens with
// surrounding punctuation stripped. Apostrophes and hyphens inside a word
// survive, so "don't" and "well-known" count as one word each.
func words(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// LexiconCount returns the number of lexical words in text.
func LexiconCount(text string) int {
	return len(words(text))
}

// SyllableCount returns the total syllable estimate across all words.
func SyllableCount(text string) int {
	total := 0
	for _, w := range words(text) {
		total += syllablesInWord(w)
	}
	return total
}

// syllablesInWord estimates syllables by counting vowel groups, discounting
// a trailing silent e. Every word has at least one syllable.
func syllablesInWord(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// SentenceCount returns the number of sentences, delimited by runs of
// sentence-ending punctuation. Text with words but no terminator counts as
// one sentence.
func SentenceCount(text string) int {
	count := 0
	inTerminator := false
	sawWord := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminator && sawWord {
				count++
			}
			inTerminator = true
		default:
			inTerminator = false
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				sawWord = true
			}
		}
	}
	if count == 0 && sawWord {
		return 1
	}
	return count
}

// CharacterCount returns the number of letters and digits, ignoring
// punctuation and whitespace. Used by the character-based indices.
func CharacterCount(text string) int {
	count := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// polysyllableCount returns the number of words with three or more syllables.
func polysyllableCount(text string) int {
	count := 0
	for _, w := range words(text) {
		if syllablesInWord(w) >= 3 {
			count++
		}
	}
	return count
}

// difficultWordCount returns the number of words of two or more syllables
// that are not on the familiar-word list.
func difficultWordCount(text string, familiar map[string]struct{}) int {
	count := 0
	for _, w := range words(text) {
		lw := strings.ToLower(w)
		if _, ok := familiar[lw]; ok {
			continue
		}
		if syllablesInWord(lw) >= 2 {
			count++
		}
	}
	return count
}
