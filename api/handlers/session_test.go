package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BaSui01/clarity/agent"
	"github.com/BaSui01/clarity/api"
	"github.com/BaSui01/clarity/session"
	"github.com/BaSui01/clarity/testutil/mocks"
	"github.com/BaSui01/clarity/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionHandler() (*SessionHandler, *session.Registry) {
	registry := session.NewRegistry()
	h := NewSessionHandler(registry, mocks.NewMockProvider(), agent.DefaultOptions(), session.DefaultLimits(), nil, nil)
	return h, registry
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleCreateSession_Jury(t *testing.T) {
	t.Parallel()

	h, registry := newSessionHandler()
	rec := postJSON(t, h.HandleCreateSession, "/session", api.SessionRequest{Mode: types.ModeJury})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, types.ModeJury, resp.Mode)
	assert.False(t, resp.BackgroundAudioEnabled)
	require.Len(t, resp.Agents, 3)
	assert.Equal(t, "Sarah Chen", resp.Agents[0].Name)
	assert.Equal(t, "ux_specialist", resp.Agents[0].Persona)
	assert.Equal(t, "female", resp.Agents[0].Gender)

	assert.NotNil(t, registry.Jury.Get(resp.SessionID))
	assert.Nil(t, registry.Environment.Get(resp.SessionID))
}

func TestHandleCreateSession_EnvironmentOffice(t *testing.T) {
	t.Parallel()

	h, registry := newSessionHandler()
	rec := postJSON(t, h.HandleCreateSession, "/session", api.SessionRequest{
		Mode:            types.ModeEnvironment,
		EnvironmentType: "office",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.BackgroundAudioEnabled)
	require.Len(t, resp.Agents, 2)
	assert.Equal(t, "David Kim", resp.Agents[0].Name)
	assert.NotNil(t, registry.Environment.Get(resp.SessionID))
}

func TestHandleCreateSession_UnknownModeRejected(t *testing.T) {
	t.Parallel()

	h, _ := newSessionHandler()
	rec := postJSON(t, h.HandleCreateSession, "/session", map[string]string{"mode": "debate-club"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(types.ErrInvalidMode), resp.Error.Code)
}

func TestHandleReset_SingleSession(t *testing.T) {
	t.Parallel()

	h, registry := newSessionHandler()
	sess := session.New("target", types.ModeJury, "", mocks.NewMockProvider(), agent.DefaultOptions(), session.DefaultLimits(), nil)
	registry.Jury.Create(sess)
	other := session.New("other", types.ModeEnvironment, "school", mocks.NewMockProvider(), agent.DefaultOptions(), session.DefaultLimits(), nil)
	registry.Environment.Create(other)

	req := httptest.NewRequest(http.MethodPost, "/reset?session_id=target", nil)
	rec := httptest.NewRecorder()
	h.HandleReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.ResetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "reset", resp.Status)
	assert.Equal(t, "target", resp.SessionID)

	assert.Nil(t, registry.Jury.Get("target"))
	assert.NotNil(t, registry.Environment.Get("other"))
}

func TestHandleReset_BodySessionID(t *testing.T) {
	t.Parallel()

	h, registry := newSessionHandler()
	registry.Environment.Create(session.New("env-id", types.ModeEnvironment, "school", mocks.NewMockProvider(), agent.DefaultOptions(), session.DefaultLimits(), nil))

	rec := postJSON(t, h.HandleReset, "/reset", map[string]string{"session_id": "env-id"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, registry.Environment.Get("env-id"))
}

func TestHandleReset_All(t *testing.T) {
	t.Parallel()

	h, registry := newSessionHandler()
	registry.Jury.Create(session.New("a", types.ModeJury, "", mocks.NewMockProvider(), agent.DefaultOptions(), session.DefaultLimits(), nil))
	registry.Environment.Create(session.New("b", types.ModeEnvironment, "school", mocks.NewMockProvider(), agent.DefaultOptions(), session.DefaultLimits(), nil))

	req := httptest.NewRequest(http.MethodPost, "/reset", nil)
	rec := httptest.NewRecorder()
	h.HandleReset(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.ResetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "all_sessions_reset", resp.Status)
	assert.Equal(t, 0, registry.Jury.Len())
	assert.Equal(t, 0, registry.Environment.Len())
}

func TestHandleMessage_Acknowledges(t *testing.T) {
	t.Parallel()

	h, _ := newSessionHandler()
	rec := postJSON(t, h.HandleMessage, "/message", api.MessageRequest{SessionID: "x", Content: "hi"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "received", resp.Status)
}
