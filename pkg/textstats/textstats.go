package textstats

import (
	"math"
	"strings"
	"unicode"
)

// Filler words flagged in answer transcripts. Covers English and the
// Indonesian fillers Whisper commonly transcribes.
var fillerWords = map[string]struct{}{
	"um":        {},
	"uh":        {},
	"umm":       {},
	"uhh":       {},
	"er":        {},
	"erm":       {},
	"hmm":       {},
	"like":      {},
	"basically": {},
	"actually":  {},
	"literally": {},
	"anu":       {},
	"eee":       {},
	"apa":       {},
	"gitu":      {},
	"kayak":     {},
}

// DeliveryStats summarizes how an answer was spoken, independent of what
// was said.
type DeliveryStats struct {
	WordCount       int
	FillerWordCount int
	WordsPerMinute  int
}

// Analyze tokenizes a transcript and computes delivery statistics for the
// given speaking duration. A non-positive duration yields zero words per
// minute rather than a division blowup.
func Analyze(transcript string, durationSeconds float64) DeliveryStats {
	words := tokenize(transcript)

	stats := DeliveryStats{
		WordCount: len(words),
	}

	for _, w := range words {
		if _, ok := fillerWords[w]; ok {
			stats.FillerWordCount++
		}
	}

	if durationSeconds > 0 && stats.WordCount > 0 {
		stats.WordsPerMinute = int(math.Round(float64(stats.WordCount) / (durationSeconds / 60)))
	}

	return stats
}

func tokenize(transcript string) []string {
	fields := strings.FieldsFunc(transcript, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.ToLower(strings.Trim(f, "'"))
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
