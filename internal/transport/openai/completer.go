package openai

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/domain"
	"github.com/kailas-cloud/lexdex/internal/metrics"
)

// Completer is a chat completion provider using the OpenAI-compatible API.
// It supports free-text completions and completions constrained to a JSON
// schema derived from a Go target type.
type Completer struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
	logger    *zap.Logger

	mu      sync.Mutex
	schemas map[reflect.Type]*jsonschema.Definition
}

// CompleterConfig holds the completion provider settings.
type CompleterConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
	Logger    *zap.Logger
}

// NewCompleter creates an OpenAI-compatible completion provider.
func NewCompleter(cfg *CompleterConfig) *Completer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Completer{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		logger:    cfg.Logger,
		schemas:   make(map[reflect.Type]*jsonschema.Definition),
	}
}

// Complete issues a free-text chat completion.
func (c *Completer) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	content, err := c.complete(ctx, req, nil, "")
	if err != nil {
		return "", err
	}
	return content, nil
}

// CompleteStructured issues a chat completion constrained to the JSON schema
// of out's type and unmarshals the response into out. A response that fails
// schema validation surfaces as domain.ErrCompletionProviderError.
func (c *Completer) CompleteStructured(
	ctx context.Context, req domain.CompletionRequest, schemaName string, out any,
) error {
	schema, err := c.schemaFor(out)
	if err != nil {
		return fmt.Errorf("generate schema %s: %w", schemaName, err)
	}

	content, err := c.complete(ctx, req, schema, schemaName)
	if err != nil {
		return err
	}

	if err := schema.Unmarshal(content, out); err != nil {
		metrics.CompletionRequestsTotal.WithLabelValues(schemaName, c.model, "parse_error").Inc()
		return fmt.Errorf("parse structured response %s: %w: %w",
			schemaName, err, domain.ErrCompletionProviderError)
	}
	return nil
}

func (c *Completer) complete(
	ctx context.Context, req domain.CompletionRequest,
	schema *jsonschema.Definition, schemaName string,
) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	operation := schemaName
	if operation == "" {
		operation = "completion"
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}

	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxCompletionTokens: maxTokens,
	}
	if schema != nil {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schemaName,
				Schema: schema,
				Strict: true,
			},
		}
	}

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)

	duration := time.Since(start)

	if err != nil {
		metrics.CompletionRequestsTotal.WithLabelValues(operation, c.model, "error").Inc()
		return "", fmt.Errorf("chat completion %s: %w: %w", operation, err, domain.ErrCompletionProviderError)
	}
	if len(resp.Choices) == 0 {
		metrics.CompletionRequestsTotal.WithLabelValues(operation, c.model, "error").Inc()
		return "", fmt.Errorf("empty completion response %s: %w", operation, domain.ErrCompletionProviderError)
	}

	metrics.CompletionRequestsTotal.WithLabelValues(operation, c.model, "success").Inc()
	metrics.CompletionRequestDuration.WithLabelValues(operation, c.model).Observe(duration.Seconds())
	if resp.Usage.TotalTokens > 0 {
		metrics.CompletionTokensTotal.WithLabelValues(operation, c.model, "prompt").
			Add(float64(resp.Usage.PromptTokens))
		metrics.CompletionTokensTotal.WithLabelValues(operation, c.model, "completion").
			Add(float64(resp.Usage.CompletionTokens))
	}

	c.logger.Debug("Completion request finished",
		zap.String("operation", operation),
		zap.String("model", c.model),
		zap.Duration("duration", duration),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}

// schemaFor returns the cached JSON schema for out's type, generating it on
// first use. Schema generation reflects over the type once per process.
func (c *Completer) schemaFor(out any) (*jsonschema.Definition, error) {
	t := reflect.TypeOf(out)

	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.schemas[t]; ok {
		return s, nil
	}

	s, err := jsonschema.GenerateSchemaForType(out)
	if err != nil {
		return nil, err
	}
	c.schemas[t] = s
	return s, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (c *Completer) HealthCheck(ctx context.Context) error {
	if _, err := c.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}
