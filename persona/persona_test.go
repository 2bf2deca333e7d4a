package persona

import (
	"testing"

	"github.com/BaSui01/clarity/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForMode_Jury(t *testing.T) {
	t.Parallel()

	roster := ForMode(types.ModeJury, "")
	require.Len(t, roster, 3)
	assert.Equal(t, "Sarah Chen", roster[0].Name)
	assert.Equal(t, "Alex Thompson", roster[1].Name)
	assert.Equal(t, "Marcus Rodriguez", roster[2].Name)
	assert.Equal(t, types.GenderFemale, roster[0].Gender)
	assert.Equal(t, "technical_expert", roster[1].Tag)

	for _, p := range roster {
		assert.NotEmpty(t, p.SystemPrompt)
		assert.NotEmpty(t, p.VoiceID)
	}
}

func TestForMode_EnvironmentSchool_Idempotent(t *testing.T) {
	t.Parallel()

	first := ForMode(types.ModeEnvironment, "school")
	require.Len(t, first, 3)

	// Repeated lookups return the same personas in the same order.
	for i := 0; i < 5; i++ {
		again := ForMode(types.ModeEnvironment, "school")
		require.Len(t, again, 3)
		for j := range first {
			assert.Equal(t, first[j].Name, again[j].Name)
			assert.Equal(t, first[j].VoiceID, again[j].VoiceID)
		}
	}

	assert.Equal(t, []string{"Max", "Luna", "Jordan"},
		[]string{first[0].Name, first[1].Name, first[2].Name})
}

func TestForMode_EnvironmentOffice(t *testing.T) {
	t.Parallel()

	roster := ForMode(types.ModeEnvironment, "office")
	require.Len(t, roster, 2)
	assert.Equal(t, "David Kim", roster[0].Name)
	assert.Equal(t, "Maria Garcia", roster[1].Name)
}

func TestForMode_UnknownEnvironmentFallsBackToSchool(t *testing.T) {
	t.Parallel()

	roster := ForMode(types.ModeEnvironment, "submarine")
	school := ForMode(types.ModeEnvironment, "school")
	require.Len(t, roster, len(school))
	for i := range roster {
		assert.Equal(t, school[i].Name, roster[i].Name)
	}
}

func TestBackgroundAudioEnabled(t *testing.T) {
	t.Parallel()

	assert.True(t, BackgroundAudioEnabled(types.ModeEnvironment))
	assert.False(t, BackgroundAudioEnabled(types.ModeJury))
}

func TestAgentKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Sarah Chen", "sarah_chen"},
		{"Marcus Rodriguez", "marcus_rodriguez"},
		{"Max", "max"},
		{"Jean-Luc Picard", "jean_luc_picard"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AgentKey(tt.name))
	}
}
