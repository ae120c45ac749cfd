package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/Laevateinn0131/callguard/internal/domain/ai"
	"github.com/Laevateinn0131/callguard/internal/infra/ai/prompt"
)

// Client talks to the Gemini API and asks for JSON-typed responses.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ai.ErrNotConfigured
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

func (c *Client) AnalyzeNumber(ctx context.Context, req ai.NumberRequest) (*ai.NumberInsight, error) {
	raw, err := c.generate(ctx, prompt.NumberSystemPrompt(), prompt.NumberUserPrompt(req))
	if err != nil {
		return nil, err
	}
	return ai.ParseNumberInsight(raw), nil
}

func (c *Client) AnalyzeConversation(ctx context.Context, transcript string) (*ai.ConversationInsight, error) {
	raw, err := c.generate(ctx, prompt.ConversationSystemPrompt(), prompt.ConversationUserPrompt(transcript))
	if err != nil {
		return nil, err
	}
	return ai.ParseConversationInsight(raw), nil
}

func (c *Client) generate(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			ResponseMIMEType:  "application/json",
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		},
	)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return "", ai.ErrQuotaExceeded
		}
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	return resp.Text(), nil
}
