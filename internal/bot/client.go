package bot

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"threads-backend/configs"
)

// Replier produces a bot reply for an assembled prompt.
type Replier interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// Client streams a chat completion from the GenAI API and reassembles the
// fragments into one reply.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient reads GOOGLE_API_KEY (and optionally BOT_MODEL) from the
// environment.
func NewClient(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GOOGLE_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := os.Getenv("BOT_MODEL")
	if model == "" {
		model = configs.DefaultBotModel
	}

	return &Client{
		client:  client,
		model:   model,
		timeout: configs.DefaultBotTimeout,
	}, nil
}

// Reply invokes the model with the fixed generation config and returns the
// trimmed, concatenated stream. The wait is bounded by the client timeout so
// a stalled model call cannot hold the HTTP request open indefinitely.
func (c *Client) Reply(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](configs.BotTemperature),
		TopP:            genai.Ptr[float32](configs.BotTopP),
		MaxOutputTokens: configs.BotMaxOutputTokens,
	}

	stream := c.client.Models.GenerateContentStream(ctx, c.model, genai.Text(prompt), cfg)

	text, err := Collect(stream)
	if err != nil {
		return "", fmt.Errorf("bot reply stream: %w", err)
	}
	if text == "" {
		return "", errors.New("bot returned an empty reply")
	}
	return text, nil
}

// Collect concatenates every streamed fragment in arrival order and trims
// surrounding whitespace. Keeping only the last fragment would drop most of
// the reply; all fragments count.
func Collect(stream iter.Seq2[*genai.GenerateContentResponse, error]) (string, error) {
	var b strings.Builder
	for chunk, err := range stream {
		if err != nil {
			return "", err
		}
		b.WriteString(chunkText(chunk))
	}
	return strings.TrimSpace(b.String()), nil
}

func chunkText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			out += part.Text
		}
	}
	return out
}
