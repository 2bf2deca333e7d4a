// Package session owns the in-memory conversation session state: the
// per-session history, the mode-specific turn counters, and the stores
// that map session ids to sessions. Sessions live only in memory and
// are destroyed on explicit reset or process exit.
package session

import (
	"strings"
	"sync"

	"github.com/BaSui01/clarity/agent"
	"github.com/BaSui01/clarity/llm"
	"github.com/BaSui01/clarity/persona"
	"github.com/BaSui01/clarity/types"
	"go.uber.org/zap"
)

// Limits bounds a session's turn-taking. Zero values are replaced by
// DefaultLimits at construction.
type Limits struct {
	// MaxQuestions caps jury questions before the panel closes.
	MaxQuestions int
	// MaxConversationTurns caps environment turns; later user messages
	// are ignored.
	MaxConversationTurns int
	// ContextWindow is the number of trailing history entries included
	// in model prompts.
	ContextWindow int
}

// DefaultLimits returns the limits the service ships with.
func DefaultLimits() Limits {
	return Limits{
		MaxQuestions:         4,
		MaxConversationTurns: 20,
		ContextWindow:        10,
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxQuestions <= 0 {
		l.MaxQuestions = d.MaxQuestions
	}
	if l.MaxConversationTurns <= 0 {
		l.MaxConversationTurns = d.MaxConversationTurns
	}
	if l.ContextWindow <= 0 {
		l.ContextWindow = d.ContextWindow
	}
	return l
}

// Session is one conversation. All mutable state is guarded by the
// session lock; the orchestrator holds it for a whole turn, which gives
// the single-writer-per-session discipline (a second channel on the
// same id serializes behind the first instead of interleaving).
type Session struct {
	ID              string
	Mode            types.Mode
	EnvironmentType string
	Personas        []persona.Persona
	Agents          []*agent.ChatAgent
	// NameMapping maps internal agent keys to display names.
	NameMapping map[string]string
	Limits      Limits

	mu      sync.Mutex
	history []types.HistoryEntry

	// Jury mode counters.
	JuryIndex         int
	QuestionsAsked    int
	LastAgentWhoAsked string
	// Closing caches the terminal thank-you message once generated.
	Closing string

	// Environment mode counter.
	ConversationTurns int
}

// New builds a session with its agent roster for the given mode.
func New(id string, mode types.Mode, environmentType string, provider llm.Provider, opts agent.Options, limits Limits, logger *zap.Logger) *Session {
	if mode == types.ModeEnvironment && environmentType == "" {
		environmentType = types.DefaultEnvironmentType
	}

	personas := persona.ForMode(mode, environmentType)
	agents := agent.NewRoster(personas, provider, opts, logger)

	mapping := make(map[string]string, len(personas))
	for _, p := range personas {
		mapping[persona.AgentKey(p.Name)] = p.Name
	}

	return &Session{
		ID:              id,
		Mode:            mode,
		EnvironmentType: environmentType,
		Personas:        personas,
		Agents:          agents,
		NameMapping:     mapping,
		Limits:          limits.withDefaults(),
	}
}

// Lock acquires the per-session exclusion lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session exclusion lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// AppendUser appends a user utterance to the history.
// Caller must hold the session lock.
func (s *Session) AppendUser(speaker, message string) {
	s.history = append(s.history, types.NewUserEntry(speaker, message))
}

// AppendAgent appends an agent reply to the history.
// Caller must hold the session lock.
func (s *Session) AppendAgent(speaker, message string) {
	s.history = append(s.history, types.NewAgentEntry(speaker, message))
}

// HistoryLen returns the number of history entries.
// Caller must hold the session lock.
func (s *Session) HistoryLen() int { return len(s.history) }

// History returns a copy of the full history.
// Caller must hold the session lock.
func (s *Session) History() []types.HistoryEntry {
	out := make([]types.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Context formats the trailing ContextWindow history entries as
// "Speaker: Message" lines for model prompts.
// Caller must hold the session lock.
func (s *Session) Context() string {
	entries := s.history
	if n := s.Limits.ContextWindow; len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Speaker+": "+e.Message)
	}
	return strings.Join(lines, "\n")
}

// DisplayName resolves an internal agent key to its display name,
// falling back to the key itself.
func (s *Session) DisplayName(key string) string {
	if name, ok := s.NameMapping[key]; ok {
		return name
	}
	return key
}

// PersonaByName returns the persona with the given display name.
func (s *Session) PersonaByName(name string) (persona.Persona, bool) {
	for _, p := range s.Personas {
		if p.Name == name {
			return p, true
		}
	}
	return persona.Persona{}, false
}

// PersonaByKey resolves an internal agent key to its persona.
func (s *Session) PersonaByKey(key string) (persona.Persona, bool) {
	return s.PersonaByName(s.DisplayName(key))
}

// AgentByName returns the chat agent backing the given display name.
func (s *Session) AgentByName(name string) (*agent.ChatAgent, bool) {
	for _, a := range s.Agents {
		if a.Persona.Name == name {
			return a, true
		}
	}
	return nil, false
}

// IsKnownAgent reports whether key names one of this session's agents.
func (s *Session) IsKnownAgent(key string) bool {
	_, ok := s.NameMapping[key]
	return ok
}
