// Package overview generates AI summaries for community-activity reports
// whose published JSON carries items but no overview text.
package overview

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the interface to the chat model.
type Client interface {
	// Chat sends messages to the model and returns the response text.
	Chat(ctx context.Context, messages []Message) (string, error)
}

// OpenAIClient implements Client against any OpenAI-compatible endpoint.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a client for the given model. baseURL may be empty
// for the default OpenAI endpoint.
func NewOpenAIClient(apiKey, model, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required (set PULSO_AI_API_KEY)")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Chat sends messages to the model and returns the response text.
func (c *OpenAIClient) Chat(ctx context.Context, messages []Message) (string, error) {
	openaiMessages := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case "system":
			openaiMessages[i] = openai.SystemMessage(msg.Content)
		case "assistant":
			openaiMessages[i] = openai.AssistantMessage(msg.Content)
		default:
			openaiMessages[i] = openai.UserMessage(msg.Content)
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: openaiMessages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
