package session

import (
	"fmt"
	"testing"

	"github.com/BaSui01/clarity/agent"
	"github.com/BaSui01/clarity/testutil/mocks"
	"github.com/BaSui01/clarity/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJurySession(id string) *Session {
	return New(id, types.ModeJury, "", mocks.NewMockProvider(), agent.DefaultOptions(), DefaultLimits(), nil)
}

func TestNew_JuryRoster(t *testing.T) {
	t.Parallel()

	sess := newJurySession("s1")
	require.Len(t, sess.Personas, 3)
	require.Len(t, sess.Agents, 3)
	assert.Equal(t, "Sarah Chen", sess.DisplayName("sarah_chen"))
	assert.True(t, sess.IsKnownAgent("alex_thompson"))
	assert.False(t, sess.IsKnownAgent("impostor"))
	assert.Equal(t, 4, sess.Limits.MaxQuestions)
}

func TestNew_EnvironmentDefaultsToSchool(t *testing.T) {
	t.Parallel()

	sess := New("s2", types.ModeEnvironment, "", mocks.NewMockProvider(), agent.DefaultOptions(), Limits{}, nil)
	assert.Equal(t, "school", sess.EnvironmentType)
	assert.Len(t, sess.Personas, 3)
	assert.Equal(t, 20, sess.Limits.MaxConversationTurns)
}

func TestSession_ContextWindow(t *testing.T) {
	t.Parallel()

	sess := newJurySession("s3")
	sess.Lock()
	defer sess.Unlock()

	for i := 0; i < 15; i++ {
		sess.AppendUser("Alice", fmt.Sprintf("message %d", i))
	}

	ctx := sess.Context()
	assert.NotContains(t, ctx, "message 4")
	assert.Contains(t, ctx, "message 5")
	assert.Contains(t, ctx, "message 14")
	assert.Contains(t, ctx, "Alice: message 14")
}

func TestSession_HistoryKinds(t *testing.T) {
	t.Parallel()

	sess := newJurySession("s4")
	sess.Lock()
	defer sess.Unlock()

	sess.AppendUser("Alice", "hello")
	sess.AppendAgent("Sarah Chen", "hi!")

	hist := sess.History()
	require.Len(t, hist, 2)
	assert.Equal(t, types.EntryUser, hist[0].Kind)
	assert.Equal(t, types.EntryAgent, hist[1].Kind)
	assert.False(t, hist[1].Timestamp.IsZero())
}

func TestStore_CreateGetDeleteClear(t *testing.T) {
	t.Parallel()

	store := NewStore()
	assert.Nil(t, store.Get("missing"))

	sess := newJurySession("s5")
	store.Create(sess)
	assert.Same(t, sess, store.Get("s5"))
	assert.Equal(t, 1, store.Len())

	// Last write wins on duplicate ids.
	replacement := newJurySession("s5")
	store.Create(replacement)
	assert.Same(t, replacement, store.Get("s5"))
	assert.Equal(t, 1, store.Len())

	store.Delete("s5")
	assert.Nil(t, store.Get("s5"))

	store.Create(newJurySession("a"))
	store.Create(newJurySession("b"))
	store.Clear()
	assert.Equal(t, 0, store.Len())
}

func TestRegistry_LookupTriesJuryFirst(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	jury := newJurySession("shared")
	env := New("shared", types.ModeEnvironment, "office", mocks.NewMockProvider(), agent.DefaultOptions(), DefaultLimits(), nil)
	reg.Jury.Create(jury)
	reg.Environment.Create(env)

	found, ok := reg.Lookup("shared")
	require.True(t, ok)
	assert.Same(t, jury, found)

	reg.Jury.Delete("shared")
	found, ok = reg.Lookup("shared")
	require.True(t, ok)
	assert.Same(t, env, found)
}

func TestRegistry_ResetAndResetAll(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Jury.Create(newJurySession("j1"))
	reg.Environment.Create(New("e1", types.ModeEnvironment, "school", mocks.NewMockProvider(), agent.DefaultOptions(), DefaultLimits(), nil))

	reg.Reset("j1")
	_, ok := reg.Lookup("j1")
	assert.False(t, ok)

	reg.ResetAll()
	assert.Equal(t, 0, reg.Jury.Len())
	assert.Equal(t, 0, reg.Environment.Len())
}
