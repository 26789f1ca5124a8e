package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type IChatGPT interface {
	EvaluateAnswer(ctx context.Context, question string, transcript string) (*AnswerEvaluation, error)
}

type AnswerEvaluation struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

type chatGPTService struct {
	client *openai.Client
	model  string
}

func NewChatGPT() IChatGPT {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_CHAT_MODEL")

	if model == "" {
		model = openai.GPT4
	}

	return &chatGPTService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *chatGPTService) EvaluateAnswer(ctx context.Context, question string, transcript string) (*AnswerEvaluation, error) {
	systemPrompt := `You are an experienced interview coach. Evaluate the candidate's spoken answer
to an interview question. Respond ONLY with JSON in this exact shape:
{
	"score": 0-100,
	"feedback": "2-3 sentence summary of the answer quality",
	"strengths": ["..."],
	"improvements": ["..."]
}
Judge structure (STAR), relevance, specificity and clarity. Do not comment on
transcription artifacts.`

	userPrompt := fmt.Sprintf("Question: %s\n\nCandidate's answer (transcribed): %s", question, transcript)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseEvaluation(resp.Choices[0].Message.Content)
}

func parseEvaluation(response string) (*AnswerEvaluation, error) {
	jsonStart := strings.Index(response, "{")
	jsonEnd := strings.LastIndex(response, "}")

	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return nil, fmt.Errorf("cannot find valid JSON in response")
	}

	var evaluation AnswerEvaluation
	if err := json.Unmarshal([]byte(response[jsonStart:jsonEnd+1]), &evaluation); err != nil {
		return nil, err
	}

	if evaluation.Score < 0 || evaluation.Score > 100 {
		return nil, fmt.Errorf("evaluation score out of range: %d", evaluation.Score)
	}

	return &evaluation, nil
}
