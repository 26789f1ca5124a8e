package interviewService

import (
	"InterviewGolang/internal/entity"
	"testing"
)

func TestMergeDistributionsAveragesAcrossAnswers(t *testing.T) {
	answers := []entity.Answer{
		{PostureSummary: map[string]int{"good": 80, "slouch": 20}},
		{PostureSummary: map[string]int{"good": 40, "lean": 60}},
	}

	merged := mergeDistributions(answers, func(a entity.Answer) map[string]int {
		return a.PostureSummary
	})

	if merged["good"] != 60 {
		t.Errorf("expected good=60, got %d", merged["good"])
	}
	if merged["slouch"] != 10 {
		t.Errorf("expected slouch=10, got %d", merged["slouch"])
	}
	if merged["lean"] != 30 {
		t.Errorf("expected lean=30, got %d", merged["lean"])
	}
}

func TestMergeDistributionsEmpty(t *testing.T) {
	merged := mergeDistributions(nil, func(a entity.Answer) map[string]int {
		return a.PostureSummary
	})

	if len(merged) != 0 {
		t.Errorf("expected empty distribution, got %v", merged)
	}
}

func TestMergeDistributionsRounds(t *testing.T) {
	answers := []entity.Answer{
		{EmotionSummary: map[string]int{"neutral": 50}},
		{EmotionSummary: map[string]int{"neutral": 51}},
	}

	merged := mergeDistributions(answers, func(a entity.Answer) map[string]int {
		return a.EmotionSummary
	})

	if merged["neutral"] != 51 {
		t.Errorf("expected rounded average 51, got %d", merged["neutral"])
	}
}
