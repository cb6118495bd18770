package provider

import (
	"context"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

// ClaudeAdapter calls the Anthropic Messages API.
type ClaudeAdapter struct {
	client *anthropic.Client
	model  string
}

// NewClaude creates a Claude adapter for the given model.
func NewClaude(apiKey, model string) *ClaudeAdapter {
	return &ClaudeAdapter{
		client: anthropic.NewClient(apiKey),
		model:  model,
	}
}

func (c *ClaudeAdapter) Name() string { return "claude/" + c.model }

// Generate sends one messages request and returns the first content
// block's text.
func (c *ClaudeAdapter) Generate(ctx context.Context, prompt, system string) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		MaxTokens: defaultMaxTokens,
		System:    system,
		Messages: []anthropic.Message{
			{
				Role:    anthropic.RoleUser,
				Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(prompt)},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude api: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("empty response from claude")
	}
	return resp.Content[0].GetText(), nil
}
