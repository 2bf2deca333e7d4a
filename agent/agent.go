// Package agent provides AutoGen-style chat agents and the round-robin
// group chat used by environment sessions. A ChatAgent binds one persona
// to an llm.Provider; a group chat streams labeled replies from an
// ordered participant list.
package agent

import (
	"context"
	"strings"

	"github.com/BaSui01/clarity/llm"
	"github.com/BaSui01/clarity/persona"
	"go.uber.org/zap"
)

// Options carries the model parameters shared by all agents in a session.
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// DefaultOptions matches the model client settings the conversation
// service was tuned for: short, in-character replies.
func DefaultOptions() Options {
	return Options{
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   300,
	}
}

// ChatAgent is a single scripted participant. Key is the internal
// agent identifier (persona.AgentKey of the display name); replies in a
// group chat stream are labeled with it.
type ChatAgent struct {
	Key     string
	Persona persona.Persona

	provider llm.Provider
	opts     Options
	logger   *zap.Logger
}

// New creates a chat agent for the given persona.
func New(p persona.Persona, provider llm.Provider, opts Options, logger *zap.Logger) *ChatAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatAgent{
		Key:      persona.AgentKey(p.Name),
		Persona:  p,
		provider: provider,
		opts:     opts,
		logger:   logger.With(zap.String("agent", persona.AgentKey(p.Name))),
	}
}

// Run executes a single task against the agent's persona and returns the
// reply text. The task is sent as a user message under the persona's
// system prompt; blocking follows the provider call, nothing else suspends.
func (a *ChatAgent) Run(ctx context.Context, task string) (string, error) {
	req := &llm.ChatRequest{
		Model: a.opts.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: a.Persona.SystemPrompt},
			{Role: llm.RoleUser, Content: task},
		},
		MaxTokens:   a.opts.MaxTokens,
		Temperature: a.opts.Temperature,
	}

	resp, err := a.provider.Completion(ctx, req)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	a.logger.Debug("agent reply", zap.Int("len", len(text)))
	return text, nil
}

// NewRoster builds one ChatAgent per persona, preserving order.
func NewRoster(personas []persona.Persona, provider llm.Provider, opts Options, logger *zap.Logger) []*ChatAgent {
	agents := make([]*ChatAgent, 0, len(personas))
	for _, p := range personas {
		agents = append(agents, New(p, provider, opts, logger))
	}
	return agents
}
