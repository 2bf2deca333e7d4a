// =============================================================================
// Clarity OpenAI Provider
// =============================================================================
// Chat Completions client over plain net/http. The conversation
// orchestrator only needs non-streaming completions; upstream failures
// are mapped to llm.Error codes via providers.MapHTTPError so the
// orchestrator can fold them into user-visible error events.
// =============================================================================

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BaSui01/clarity/llm"
	"github.com/BaSui01/clarity/llm/providers"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o-mini"
	endpointPath   = "/v1/chat/completions"
)

// Config holds the configuration for the OpenAI provider.
type Config struct {
	// APIKey is the authentication key for the OpenAI API.
	APIKey string

	// BaseURL overrides the API base URL (e.g. a compatible gateway).
	BaseURL string

	// DefaultModel is the model to use when none is specified in the request.
	DefaultModel string

	// Organization is the optional OpenAI organization header.
	Organization string

	// Timeout is the HTTP client timeout. Defaults to 60s if zero.
	Timeout time.Duration
}

// Provider implements llm.Provider against the OpenAI Chat Completions API.
type Provider struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// New creates a new OpenAI provider with the given config.
func New(cfg Config, logger *zap.Logger) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = defaultModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger.With(zap.String("component", "openai_provider")),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return "openai" }

// Completion executes a single non-streaming chat completion.
func (p *Provider) Completion(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	body := providers.OpenAICompatRequest{
		Model:       providers.ChooseModel(req, p.cfg.DefaultModel, defaultModel),
		Messages:    providers.ConvertMessagesToOpenAI(req.Messages),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + endpointPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	p.buildHeaders(httpReq)

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &llm.Error{
			Code:       llm.ErrUpstreamError,
			Message:    err.Error(),
			HTTPStatus: http.StatusBadGateway,
			Retryable:  true,
			Provider:   p.Name(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg := providers.ReadErrorMessage(resp.Body)
		mapped := providers.MapHTTPError(resp.StatusCode, msg, p.Name())
		p.logger.Warn("completion failed",
			zap.Int("status", resp.StatusCode),
			zap.String("code", string(mapped.Code)),
		)
		return nil, mapped
	}

	var oaResp providers.OpenAICompatResponse
	if err := json.NewDecoder(resp.Body).Decode(&oaResp); err != nil {
		return nil, &llm.Error{
			Code:       llm.ErrUpstreamError,
			Message:    err.Error(),
			HTTPStatus: http.StatusBadGateway,
			Retryable:  true,
			Provider:   p.Name(),
		}
	}

	p.logger.Debug("completion ok",
		zap.String("model", oaResp.Model),
		zap.Duration("duration", time.Since(start)),
		zap.Int("total_tokens", func() int {
			if oaResp.Usage != nil {
				return oaResp.Usage.TotalTokens
			}
			return 0
		}()),
	)

	return providers.ToLLMChatResponse(oaResp, p.Name()), nil
}

// buildHeaders applies bearer auth and the optional organization header.
func (p *Provider) buildHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if p.cfg.Organization != "" {
		req.Header.Set("OpenAI-Organization", p.cfg.Organization)
	}
}
