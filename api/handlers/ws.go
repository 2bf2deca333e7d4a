package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/BaSui01/clarity/api"
	"github.com/BaSui01/clarity/conversation"
	"github.com/BaSui01/clarity/internal/metrics"
	"github.com/BaSui01/clarity/session"
	"github.com/BaSui01/clarity/types"
	"github.com/coder/websocket"
	"go.uber.org/zap"
)

// =============================================================================
// 🔌 WebSocket Handler
// =============================================================================

// Orchestrator 由两种模式的轮次编排器实现
type Orchestrator interface {
	HandleUserMessage(ctx context.Context, sess *session.Session, text, userName string, emit conversation.EmitFunc) error
}

// WSHandler 处理 /ws/{session_id} 双工通道。
// 入站消息串行处理：一条 user_message 的整个轮次（包括所有外部调用与
// 节奏延迟）完成后才读取下一条。一个通道对应一个会话 ID；同一会话
// 开两个通道时由会话锁串行化，属调用方约定违规。
type WSHandler struct {
	registry    *session.Registry
	jury        Orchestrator
	environment Orchestrator
	collector   *metrics.Collector
	logger      *zap.Logger
}

// NewWSHandler 创建 WebSocket 处理器。collector 可为 nil。
func NewWSHandler(registry *session.Registry, jury, environment Orchestrator, collector *metrics.Collector, logger *zap.Logger) *WSHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WSHandler{
		registry:    registry,
		jury:        jury,
		environment: environment,
		collector:   collector,
		logger:      logger,
	}
}

// HandleWS 处理 GET /ws/{session_id}
func (h *WSHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	logger := h.logger.With(zap.String("session_id", sessionID))

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		logger.Warn("websocket accept failed", zap.Error(err))
		return
	}
	defer conn.Close(websocket.StatusInternalError, "connection closed")

	if h.collector != nil {
		h.collector.WSConnectionOpened()
		defer h.collector.WSConnectionClosed()
	}
	logger.Info("websocket connected")

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			logger.Info("websocket disconnected", zap.Error(err))
			return
		}

		var frame api.InboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			logger.Warn("invalid frame", zap.Error(err))
			continue
		}
		if h.collector != nil {
			h.collector.RecordWSMessage("inbound", frame.Type)
		}

		switch frame.Type {
		case api.FramePing:
			if err := h.writeJSON(ctx, conn, api.NewPongFrame()); err != nil {
				return
			}

		case api.FrameUserMessage:
			if err := h.handleUserMessage(ctx, conn, sessionID, frame, logger); err != nil {
				logger.Warn("channel delivery failed", zap.Error(err))
				return
			}

		default:
			logger.Warn("unknown frame type", zap.String("type", frame.Type))
		}
	}
}

// handleUserMessage 执行一条 user_message 的完整轮次。
// 返回的 error 表示通道本身写入失败；编排层的业务错误已作为
// error 事件发给了客户端，不会到这里。
func (h *WSHandler) handleUserMessage(ctx context.Context, conn *websocket.Conn, sessionID string, frame api.InboundFrame, logger *zap.Logger) error {
	userName := frame.UserName
	if userName == "" {
		userName = types.DefaultUserName
	}

	// 先回执，再编排
	if err := h.writeJSON(ctx, conn, api.NewAckFrame("Processing your message...")); err != nil {
		return err
	}

	sess, ok := h.registry.Lookup(sessionID)
	if !ok {
		logger.Warn("session not found")
		return h.emitEvent(ctx, conn, "", conversation.NewSessionNotFoundEvent())
	}

	orch := h.environment
	if sess.Mode == types.ModeJury {
		orch = h.jury
	}

	if h.collector != nil {
		h.collector.RecordConversationTurn(string(sess.Mode))
	}

	emit := func(e conversation.Event) error {
		return h.emitEvent(ctx, conn, string(sess.Mode), e)
	}
	return orch.HandleUserMessage(ctx, sess, frame.Content, userName, emit)
}

func (h *WSHandler) emitEvent(ctx context.Context, conn *websocket.Conn, mode string, e conversation.Event) error {
	if h.collector != nil {
		switch ev := e.(type) {
		case conversation.AgentMessage:
			h.collector.RecordWSMessage("outbound", ev.Type)
			if mode != "" {
				h.collector.RecordAgentMessage(mode, ev.AgentName)
			}
		case conversation.ErrorEvent:
			h.collector.RecordWSMessage("outbound", ev.Type)
		}
	}
	return h.writeJSON(ctx, conn, e)
}

func (h *WSHandler) writeJSON(ctx context.Context, conn *websocket.Conn, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
