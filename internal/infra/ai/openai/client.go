package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Laevateinn0131/callguard/internal/domain/ai"
	"github.com/Laevateinn0131/callguard/internal/infra/ai/prompt"
)

const maxTokens = 2048

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ai.ErrNotConfigured
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{Client: openai.NewClient(apiKey), Model: model}, nil
}

func (c *Client) AnalyzeNumber(ctx context.Context, req ai.NumberRequest) (*ai.NumberInsight, error) {
	raw, err := c.complete(ctx, prompt.NumberSystemPrompt(), prompt.NumberUserPrompt(req))
	if err != nil {
		return nil, err
	}
	return ai.ParseNumberInsight(raw), nil
}

func (c *Client) AnalyzeConversation(ctx context.Context, transcript string) (*ai.ConversationInsight, error) {
	raw, err := c.complete(ctx, prompt.ConversationSystemPrompt(), prompt.ConversationUserPrompt(transcript))
	if err != nil {
		return nil, err
	}
	return ai.ParseConversationInsight(raw), nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.Model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(c.Model, "o1") || strings.HasPrefix(c.Model, "o3") || strings.HasPrefix(c.Model, "o4") || strings.HasPrefix(c.Model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", ai.ErrQuotaExceeded
		}
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
