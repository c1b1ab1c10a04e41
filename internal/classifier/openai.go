package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mindfulcare/risk-engine/internal/signal"
)

// #region prompts

const emotionSystemPrompt = `You are an emotion classification service for a Spanish/English therapeutic chat.
Given a user message, score each of these emotions independently from 0.0 to 1.0:
joy, sadness, anger, fear, surprise, disgust, neutral.
Respond with JSON only, no prose: {"emotions":[{"label":"sadness","score":0.82}, ...]}`

const sentimentSystemPrompt = `You are a sentiment classification service.
Classify the user message as positive, neutral, or negative with a confidence from 0.0 to 1.0.
Respond with JSON only, no prose: {"label":"negative","score":0.91}`

// #endregion prompts

// #region client

// OpenAIClassifier backs the classification capability with an OpenAI-style
// chat completion endpoint. API key and model come from the environment, so
// the same binary works against OpenAI or an OpenRouter-compatible proxy.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

// NewOpenAIClassifier reads OPENAI_API_KEY, OPENAI_BASE_URL, and
// OPENAI_MODEL_CLASSIFY from the environment and falls back to a small
// default model.
func NewOpenAIClassifier() *OpenAIClassifier {
	cfg := openai.DefaultConfig(os.Getenv("OPENAI_API_KEY"))
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	model := os.Getenv("OPENAI_MODEL_CLASSIFY")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClassifier{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// #endregion client

// #region classify-emotion

type emotionPayload struct {
	Emotions []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"emotions"`
}

// ClassifyEmotion scores the canonical emotion vocabulary for one message.
func (c *OpenAIClassifier) ClassifyEmotion(ctx context.Context, text string) ([]signal.LabelScore, error) {
	content, err := c.complete(ctx, emotionSystemPrompt, text)
	if err != nil {
		return nil, err
	}

	var payload emotionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("parse emotion response: %w", err)
	}
	if len(payload.Emotions) == 0 {
		return nil, fmt.Errorf("emotion response contained no scores")
	}

	scores := make([]signal.LabelScore, len(payload.Emotions))
	for i, e := range payload.Emotions {
		scores[i] = signal.LabelScore{Label: e.Label, Score: e.Score}
	}
	return scores, nil
}

// #endregion classify-emotion

// #region classify-sentiment

type sentimentPayload struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassifySentiment labels one message positive, neutral, or negative.
func (c *OpenAIClassifier) ClassifySentiment(ctx context.Context, text string) (signal.LabelScore, error) {
	content, err := c.complete(ctx, sentimentSystemPrompt, text)
	if err != nil {
		return signal.LabelScore{}, err
	}

	var payload sentimentPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return signal.LabelScore{}, fmt.Errorf("parse sentiment response: %w", err)
	}
	return signal.LabelScore{Label: payload.Label, Score: payload.Score}, nil
}

// #endregion classify-sentiment

// #region complete

func (c *OpenAIClassifier) complete(ctx context.Context, system, text string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return stripFences(resp.Choices[0].Message.Content), nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON
// in one.
func stripFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}

// #endregion complete
