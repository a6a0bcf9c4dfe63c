package models

// Scores is the full readability bundle for one request. Index fields are
// pointers so an uncomputable metric serializes as null rather than zero;
// the counts are always present.
type Scores struct {
	FleschReadingEase         *float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade        *float64 `json:"flesch_kincaid_grade"`
	GunningFog                *float64 `json:"gunning_fog"`
	SMOGIndex                 *float64 `json:"smog_index"`
	AutomatedReadabilityIndex *float64 `json:"automated_readability_index"`
	ColemanLiauIndex          *float64 `json:"coleman_liau_index"`
	LinsearWriteFormula       *float64 `json:"linsear_write_formula"`
	DaleChallReadabilityScore *float64 `json:"dale_chall_readability_score"`
	TextStandard              *string  `json:"text_standard"`
	Spache                    *float64 `json:"spache"`

	SyllableCount int `json:"syllable_count"`
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
}
