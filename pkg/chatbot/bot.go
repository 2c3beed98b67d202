// Package chatbot performs single, stateless wellness-chat exchanges against
// an OpenAI-compatible chat completions endpoint.
package chatbot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/tidwall/gjson"

	configpkg "github.com/minhyannv/medchat-go/pkg/config"
	loggerpkg "github.com/minhyannv/medchat-go/pkg/logger"
)

var (
	// ErrEmptyChoices is returned when the response carries no completion choices.
	ErrEmptyChoices = errors.New("empty completion choices")
	// ErrMissingContent is returned when the first choice has no message content.
	ErrMissingContent = errors.New("completion choice has no message content")
)

// Bot sends one user utterance per call. It keeps no conversation history.
type Bot struct {
	client  openai.Client
	model   string
	timeout time.Duration
	logger  loggerpkg.Logger
}

// New builds a Bot from a validated configuration.
func New(cfg configpkg.Config, opts ...Option) (*Bot, error) {
	cfg = configpkg.Normalize(cfg)
	if err := configpkg.Validate(cfg); err != nil {
		return nil, err
	}

	deps := botDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}
	if deps.logger == nil {
		deps.logger = loggerpkg.NopLogger{}
	}

	loggerpkg.Debug(deps.logger, "chatbot init", map[string]any{
		"base_url": cfg.BaseURL,
		"model":    cfg.Model,
		"timeout":  cfg.Timeout.String(),
	})

	return &Bot{
		client:  newOpenAIClient(cfg, deps),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  deps.logger,
	}, nil
}

func newOpenAIClient(cfg configpkg.Config, deps botDeps) openai.Client {
	opts := []option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(0),
	}
	if deps.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(deps.httpClient))
	}
	return openai.NewClient(opts...)
}

// Ask sends input verbatim alongside the system prompt and returns the
// content of the first completion choice.
func (b *Bot) Ask(ctx context.Context, input string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	loggerpkg.Debug(b.logger, "sending chat completion request", map[string]any{
		"model":       b.model,
		"input_bytes": len(input),
	})
	completion, err := b.client.Chat.Completions.New(ctx, b.newChatParams(input))
	if err != nil {
		b.logFailure(err)
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(completion.Choices) == 0 {
		b.logFailure(ErrEmptyChoices)
		return "", ErrEmptyChoices
	}

	// The SDK decodes a missing or null content as "", so check the raw body.
	message := completion.Choices[0].Message
	if content := gjson.Get(completion.RawJSON(), "choices.0.message.content"); content.Type != gjson.String {
		b.logFailure(ErrMissingContent)
		return "", ErrMissingContent
	}

	loggerpkg.Debug(b.logger, "chat completion received", map[string]any{
		"choices":       len(completion.Choices),
		"finish_reason": completion.Choices[0].FinishReason,
		"reply_bytes":   len(message.Content),
	})
	return message.Content, nil
}

func (b *Bot) newChatParams(input string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(b.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(input),
		},
	}
}

func (b *Bot) logFailure(err error) {
	fields := map[string]any{"error": err.Error()}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		fields["status_code"] = apiErr.StatusCode
	}
	if errors.Is(err, context.DeadlineExceeded) {
		fields["timeout"] = b.timeout.String()
	}
	loggerpkg.Warn(b.logger, "chat completion failed", fields)
}
