// Package llm wraps the OpenAI-compatible chat endpoints used by the
// pipeline: a vision model for material analysis and a text model for script
// generation. Both speak the Chat Completions API, so any provider exposing
// that surface works via base URL configuration.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/textloom/textloom/pkg/config"
)

// ErrEmptyCompletion is returned when the model responds without content.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// ChatCompleter is the slice of the OpenAI client the wrappers need.
// Tests substitute a fake.
type ChatCompleter interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Client is one configured chat endpoint with retry behavior.
type Client struct {
	chat        ChatCompleter
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	retries     int
	logger      *slog.Logger
}

// NewClient builds a chat client from one provider configuration.
func NewClient(cfg config.LLMProviderConfig, retries int, logger *slog.Logger) (*Client, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("LLM API key env %s is not set", cfg.APIKeyEnv)
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	oc := openai.NewClient(opts...)

	return &Client{
		chat:        &oc.Chat.Completions,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		retries:     retries,
		logger:      logger,
	}, nil
}

// NewClientWithCompleter wires a prebuilt completer. Used by tests.
func NewClientWithCompleter(chat ChatCompleter, model string, timeout time.Duration, retries int, logger *slog.Logger) *Client {
	return &Client{
		chat:    chat,
		model:   model,
		timeout: timeout,
		retries: retries,
		logger:  logger,
	}
}

// ChatText runs one text-only completion and returns the model output.
func (c *Client) ChatText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))

	return c.complete(ctx, messages)
}

// ChatVision runs one completion with the prompt plus attached image URLs.
// Video materials are analyzed by passing extracted keyframes here.
func (c *Client) ChatVision(ctx context.Context, prompt string, imageURLs []string) (string, error) {
	parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(imageURLs)+1)
	parts = append(parts, openai.TextContentPart(prompt))
	for _, url := range imageURLs {
		parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: url,
		}))
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(parts),
	}
	return c.complete(ctx, messages)
}

// complete issues the request with the per-call timeout and exponential
// backoff across transient failures.
func (c *Client) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: messages,
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.maxTokens))
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}

	var content string
	operation := func() error {
		callCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		resp, err := c.chat.New(callCtx, params)
		if err != nil {
			c.logger.Warn("Chat completion failed", "model", c.model, "error", err)
			return err
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return backoff.Permanent(ErrEmptyCompletion)
		}
		content = resp.Choices[0].Message.Content
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.retries)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("chat completion with model %s: %w", c.model, err)
	}

	return content, nil
}
