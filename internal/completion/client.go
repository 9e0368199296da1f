// Package completion talks to the OpenAI chat completions API.
package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/spec-kit/grievance-service/internal/config"
)

// SystemPrompt frames every fallback question.
const SystemPrompt = "You are an HR assistant. Answer questions clearly and concisely."

// ErrMissingAPIKey is reported as an authentication failure without any
// network call.
var ErrMissingAPIKey = errors.New("api key not configured")

// Gateway answers free-form questions.
type Gateway interface {
	Complete(ctx context.Context, question string) (string, error)
}

// AuthError means the API rejected or lacked the credential.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Error covers every other failure: transport, quota, decoding, timeouts.
type Error struct {
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Client is a Gateway backed by the OpenAI SDK.
type Client struct {
	apiKey      string
	model       string
	temperature float64
	timeout     time.Duration
	api         openai.Client
}

// NewClient builds a client from configuration. The SDK's own retries are
// disabled; a failed call is reported once.
func NewClient(cfg config.CompletionConfig) *Client {
	apiKey := strings.TrimSpace(cfg.APIKey)
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(cfg.Timeout()),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(withTrailingSlash(cfg.BaseURL)))
	}
	return &Client{
		apiKey:      apiKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout(),
		api:         openai.NewClient(opts...),
	}
}

// Complete sends question as the user turn and returns the first choice.
func (c *Client) Complete(ctx context.Context, question string) (string, error) {
	if c.apiKey == "" {
		return "", &AuthError{Err: ErrMissingAPIKey}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(question),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", classify(ctx, err)
	}
	if len(resp.Choices) == 0 {
		return "", &Error{StatusCode: http.StatusOK, Err: errors.New("empty choices")}
	}
	return resp.Choices[0].Message.Content, nil
}

func classify(ctx context.Context, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error()
		}
		wrapped := fmt.Errorf("status %d: %s", apiErr.StatusCode, msg)
		if apiErr.StatusCode == http.StatusUnauthorized {
			return &AuthError{Err: wrapped}
		}
		return &Error{StatusCode: apiErr.StatusCode, Err: wrapped}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &Error{Err: fmt.Errorf("%w: %v", ctxErr, err)}
	}
	return &Error{Err: err}
}

func withTrailingSlash(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}
