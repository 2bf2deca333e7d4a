package handlers

import (
	"net/http"
	"time"

	"github.com/BaSui01/clarity/agent"
	"github.com/BaSui01/clarity/api"
	"github.com/BaSui01/clarity/internal/metrics"
	"github.com/BaSui01/clarity/llm"
	"github.com/BaSui01/clarity/persona"
	"github.com/BaSui01/clarity/session"
	"github.com/BaSui01/clarity/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// =============================================================================
// 🗂️ 会话 Handler
// =============================================================================

// SessionHandler 会话生命周期处理器
type SessionHandler struct {
	registry  *session.Registry
	provider  llm.Provider
	opts      agent.Options
	limits    session.Limits
	collector *metrics.Collector
	logger    *zap.Logger
}

// NewSessionHandler 创建会话处理器。collector 可为 nil。
func NewSessionHandler(registry *session.Registry, provider llm.Provider, opts agent.Options, limits session.Limits, collector *metrics.Collector, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{
		registry:  registry,
		provider:  provider,
		opts:      opts,
		limits:    limits,
		collector: collector,
		logger:    logger,
	}
}

// HandleCreateSession 处理 POST /session
// @Summary 创建会话
// @Accept json
// @Produce json
// @Success 200 {object} api.SessionResponse "会话已创建"
// @Failure 400 {object} Response "未知模式"
// @Router /session [post]
func (h *SessionHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req api.SessionRequest
	if err := DecodeJSONBody(w, r, &req, h.logger); err != nil {
		return
	}

	if !req.Mode.Valid() {
		WriteErrorMessage(w, http.StatusBadRequest, types.ErrInvalidMode,
			"mode must be \"presentation-jury-mode\" or \"environment\"", h.logger)
		return
	}

	sessionID := uuid.NewString()
	sess := session.New(sessionID, req.Mode, req.EnvironmentType, h.provider, h.opts, h.limits, h.logger)

	// 按模式落到对应的 store，WebSocket 路由按 jury → environment 查找
	if req.Mode == types.ModeJury {
		h.registry.Jury.Create(sess)
	} else {
		h.registry.Environment.Create(sess)
	}

	if h.collector != nil {
		h.collector.RecordSessionCreated(string(req.Mode))
		h.collector.SetSessionsActive(string(types.ModeJury), h.registry.Jury.Len())
		h.collector.SetSessionsActive(string(types.ModeEnvironment), h.registry.Environment.Len())
	}

	h.logger.Info("session created",
		zap.String("session_id", sessionID),
		zap.String("mode", string(req.Mode)),
		zap.String("environment_type", sess.EnvironmentType),
		zap.Int("agents", len(sess.Personas)),
	)

	agents := make([]api.AgentInfo, 0, len(sess.Personas))
	for _, p := range sess.Personas {
		agents = append(agents, api.AgentInfo{
			Name:    p.Name,
			Persona: p.Tag,
			Gender:  string(p.Gender),
			VoiceID: p.VoiceID,
		})
	}

	WriteJSON(w, http.StatusOK, api.SessionResponse{
		SessionID:              sessionID,
		Mode:                   req.Mode,
		Agents:                 agents,
		BackgroundAudioEnabled: persona.BackgroundAudioEnabled(req.Mode),
	})
}

// HandleReset 处理 POST /reset
// 带 session_id（查询参数或 JSON 体）时清除该会话，否则清空全部会话。
// @Summary 重置会话
// @Produce json
// @Success 200 {object} api.ResetResponse "已重置"
// @Router /reset [post]
func (h *SessionHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" && r.Body != nil && r.ContentLength > 0 {
		var req struct {
			SessionID string `json:"session_id"`
		}
		if err := DecodeJSONBody(w, r, &req, h.logger); err != nil {
			return
		}
		sessionID = req.SessionID
	}

	if sessionID != "" {
		// 两个 store 都尝试删除，不存在的 ID 为空操作
		h.registry.Reset(sessionID)
		h.logger.Info("session reset", zap.String("session_id", sessionID))
		WriteJSON(w, http.StatusOK, api.ResetResponse{Status: "reset", SessionID: sessionID})
	} else {
		h.registry.ResetAll()
		h.logger.Info("all sessions reset")
		WriteJSON(w, http.StatusOK, api.ResetResponse{Status: "all_sessions_reset"})
	}

	if h.collector != nil {
		h.collector.SetSessionsActive(string(types.ModeJury), h.registry.Jury.Len())
		h.collector.SetSessionsActive(string(types.ModeEnvironment), h.registry.Environment.Len())
	}
}

// HandleMessage 处理 POST /message（遗留接口，实际对话走 WebSocket）
// @Summary 文本消息确认
// @Produce json
// @Success 200 {object} api.MessageResponse "已接收"
// @Router /message [post]
func (h *SessionHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req api.MessageRequest
	if err := DecodeJSONBody(w, r, &req, h.logger); err != nil {
		return
	}

	WriteJSON(w, http.StatusOK, api.MessageResponse{
		Status:    "received",
		Message:   "Message sent to agents",
		Timestamp: time.Now(),
	})
}

// HandleStream 处理 GET /stream（指引客户端使用 WebSocket）
// @Summary 流式接口指引
// @Produce json
// @Router /stream [get]
func (h *SessionHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":        "websocket_required",
		"message":       "Use WebSocket connection at /ws/{session_id} for real-time streaming",
		"websocket_url": "/ws/{session_id}",
	})
}
