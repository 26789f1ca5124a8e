package interviewService

import "testing"

func TestParseQuestionListPlainArray(t *testing.T) {
	questions, err := parseQuestionList(`["What is a goroutine?", "Explain channels."]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0] != "What is a goroutine?" {
		t.Errorf("unexpected first question: %q", questions[0])
	}
}

func TestParseQuestionListWithSurroundingText(t *testing.T) {
	text := "Here are your questions:\n```json\n[\" Tell me about yourself. \", \"\", \"Why this role?\"]\n```\nGood luck!"

	questions, err := parseQuestionList(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected blank entries dropped, got %d questions", len(questions))
	}
	if questions[0] != "Tell me about yourself." {
		t.Errorf("expected trimmed question, got %q", questions[0])
	}
}

func TestParseQuestionListNoArray(t *testing.T) {
	if _, err := parseQuestionList("I cannot help with that."); err == nil {
		t.Fatal("expected error for response without a JSON array")
	}
}

func TestParseQuestionListAllBlank(t *testing.T) {
	if _, err := parseQuestionList(`["", "  "]`); err == nil {
		t.Fatal("expected error when every question is blank")
	}
}
