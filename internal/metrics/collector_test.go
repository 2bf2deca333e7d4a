package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewCollector("clarity", reg, nil), reg
}

func TestCollector_HTTPMetrics(t *testing.T) {
	c, reg := newTestCollector(t)

	c.RecordHTTPRequest("POST", "/session", 200, 15*time.Millisecond)
	c.RecordHTTPRequest("POST", "/session", 400, 2*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.httpRequestsTotal.WithLabelValues("POST", "/session", "2xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.httpRequestsTotal.WithLabelValues("POST", "/session", "4xx")))

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, strings.Join(names, ","), "clarity_http_request_duration_seconds")
}

func TestCollector_SessionMetrics(t *testing.T) {
	c, _ := newTestCollector(t)

	c.RecordSessionCreated("environment")
	c.RecordSessionCreated("environment")
	c.SetSessionsActive("environment", 2)
	c.RecordConversationTurn("environment")
	c.RecordAgentMessage("environment", "Max")

	assert.Equal(t, float64(2), testutil.ToFloat64(c.sessionsCreatedTotal.WithLabelValues("environment")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.sessionsActive.WithLabelValues("environment")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.conversationTurns.WithLabelValues("environment")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.agentMessagesTotal.WithLabelValues("environment", "Max")))
}

func TestCollector_WSMetrics(t *testing.T) {
	c, _ := newTestCollector(t)

	c.WSConnectionOpened()
	c.WSConnectionOpened()
	c.WSConnectionClosed()
	c.RecordWSMessage("inbound", "user_message")

	assert.Equal(t, float64(1), testutil.ToFloat64(c.wsConnectionsActive))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.wsMessagesTotal.WithLabelValues("inbound", "user_message")))
}

func TestCollector_LLMMetrics(t *testing.T) {
	c, _ := newTestCollector(t)

	c.RecordLLMRequest("openai", "gpt-4o-mini", "success", 800*time.Millisecond, 120, 45)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.llmRequestsTotal.WithLabelValues("openai", "gpt-4o-mini", "success")))
	assert.Equal(t, float64(120), testutil.ToFloat64(c.llmTokensUsed.WithLabelValues("openai", "gpt-4o-mini", "prompt")))
	assert.Equal(t, float64(45), testutil.ToFloat64(c.llmTokensUsed.WithLabelValues("openai", "gpt-4o-mini", "completion")))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, "2xx", statusCode(204))
	assert.Equal(t, "3xx", statusCode(301))
	assert.Equal(t, "4xx", statusCode(404))
	assert.Equal(t, "5xx", statusCode(502))
	assert.Equal(t, "unknown", statusCode(42))
}
