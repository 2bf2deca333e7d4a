package conversation

import (
	"time"

	"github.com/BaSui01/clarity/persona"
)

// Event is one outbound conversation event. The concrete types marshal
// directly to the websocket wire shape, Type discriminator included.
type Event interface {
	isEvent()
}

// AgentMessage is a single in-character utterance from one agent.
type AgentMessage struct {
	Type      string    `json:"type"`
	AgentName string    `json:"agent_name"`
	Message   string    `json:"message"`
	Gender    string    `json:"agent_gender"`
	VoiceID   string    `json:"voice_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (AgentMessage) isEvent() {}

// ErrorEvent carries a user-safe failure description. At most one is
// emitted per turn; it always terminates the turn.
type ErrorEvent struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (ErrorEvent) isEvent() {}

// EmitFunc delivers one event to the client. A non-nil error aborts the
// turn; the orchestrator does not retry delivery.
type EmitFunc func(Event) error

func newAgentMessage(p persona.Persona, message string) AgentMessage {
	return AgentMessage{
		Type:      "agent_message",
		AgentName: p.Name,
		Message:   message,
		Gender:    string(p.Gender),
		VoiceID:   p.VoiceID,
		Timestamp: time.Now(),
	}
}

func newErrorEvent(message string) ErrorEvent {
	return ErrorEvent{
		Type:      "error",
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewSessionNotFoundEvent is the error event for a channel whose session
// id is absent from every store, e.g. after a reset.
func NewSessionNotFoundEvent() ErrorEvent {
	return newErrorEvent("Session not found")
}
