// Package completion wraps the external text-completion provider used by the
// chatbot.
package completion

import (
	"context"
	"errors"
	"strings"
	"time"

	"mindconnect/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

var ErrEmptyCompletion = errors.New("completion returned no text")

// Provider turns a system prompt and a user message into a reply. Errors
// are *domain.Error values of kind KindUpstream.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, message string) (string, error)
}

type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

type OpenAIProvider struct {
	client *openai.Client
	opts   Options
}

func NewOpenAIProvider(opts Options) *OpenAIProvider {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Model == "" {
		opts.Model = openai.GPT3Dot5Turbo
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), opts: opts}
}

func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt, message string) (string, error) {
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: p.opts.Temperature,
		MaxTokens:   p.opts.MaxTokens,
	})
	if err != nil {
		return "", domain.Upstream("completion request failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.Upstream("completion request failed", ErrEmptyCompletion)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", domain.Upstream("completion request failed", ErrEmptyCompletion)
	}
	return text, nil
}
