// Package persona holds the static registry of scripted chat personas
// for every conversation mode. Prompt templates are pure data, loaded
// once at package init and never mutated.
package persona

import (
	"strings"

	"github.com/BaSui01/clarity/types"
)

// Persona is a named scripted chat participant with a fixed system
// prompt, voice id, and gender tag. Immutable once loaded; sessions
// reference personas, they never own them.
type Persona struct {
	Name         string       `json:"name"`
	SystemPrompt string       `json:"system_prompt"`
	Tag          string       `json:"persona"`
	Gender       types.Gender `json:"gender"`
	VoiceID      string       `json:"voice_id"`
}

// AgentKey returns the internal agent key for a display name: lowercase
// with spaces and hyphens replaced by underscores. Group chat replies
// are labeled with this key; the session maps it back to the display name.
func AgentKey(name string) string {
	key := strings.ReplaceAll(name, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return strings.ToLower(key)
}

// ForMode returns the ordered persona roster for the given mode.
// environmentType is only consulted for types.ModeEnvironment; an
// unrecognized type falls back to the school roster. Deterministic,
// no side effects.
func ForMode(mode types.Mode, environmentType string) []Persona {
	if mode == types.ModeJury {
		return juryPersonas
	}
	return forEnvironment(environmentType)
}

// BackgroundAudioEnabled reports whether the client should play ambient
// background audio for the mode. True only for environment sessions.
func BackgroundAudioEnabled(mode types.Mode) bool {
	return mode == types.ModeEnvironment
}

func forEnvironment(environmentType string) []Persona {
	if roster, ok := environmentPersonas[environmentType]; ok {
		return roster
	}
	return environmentPersonas[types.DefaultEnvironmentType]
}
