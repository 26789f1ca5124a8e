package textstats

import "testing"

func TestAnalyzeCountsFillers(t *testing.T) {
	stats := Analyze("Um, I think, uh, my biggest strength is, like, persistence.", 30)

	if stats.WordCount != 11 {
		t.Errorf("expected 11 words, got %d", stats.WordCount)
	}
	if stats.FillerWordCount != 3 {
		t.Errorf("expected 3 filler words, got %d", stats.FillerWordCount)
	}
	if stats.WordsPerMinute != 22 {
		t.Errorf("expected 22 wpm, got %d", stats.WordsPerMinute)
	}
}

func TestAnalyzeEmptyTranscript(t *testing.T) {
	stats := Analyze("", 45)

	if stats.WordCount != 0 || stats.FillerWordCount != 0 || stats.WordsPerMinute != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestAnalyzeZeroDuration(t *testing.T) {
	stats := Analyze("short answer", 0)

	if stats.WordCount != 2 {
		t.Errorf("expected 2 words, got %d", stats.WordCount)
	}
	if stats.WordsPerMinute != 0 {
		t.Errorf("expected 0 wpm for zero duration, got %d", stats.WordsPerMinute)
	}
}
