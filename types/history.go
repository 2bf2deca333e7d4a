package types

import "time"

// EntryKind distinguishes user utterances from agent replies in the
// conversation history.
type EntryKind string

const (
	EntryUser  EntryKind = "user"
	EntryAgent EntryKind = "agent"
)

// HistoryEntry is one line of conversation history. Entries are
// append-only per session; ordering is list insertion order.
type HistoryEntry struct {
	Speaker   string    `json:"speaker"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Kind      EntryKind `json:"type"`
}

// NewUserEntry creates a history entry for a user utterance.
func NewUserEntry(speaker, message string) HistoryEntry {
	return HistoryEntry{
		Speaker:   speaker,
		Message:   message,
		Timestamp: time.Now(),
		Kind:      EntryUser,
	}
}

// NewAgentEntry creates a history entry for an agent reply.
func NewAgentEntry(speaker, message string) HistoryEntry {
	return HistoryEntry{
		Speaker:   speaker,
		Message:   message,
		Timestamp: time.Now(),
		Kind:      EntryAgent,
	}
}
