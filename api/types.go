package api

import (
	"time"

	"github.com/BaSui01/clarity/types"
)

// =============================================================================
// 会话生命周期类型
// =============================================================================

// SessionRequest 代表会话创建请求。
// @Description 会话创建请求结构
type SessionRequest struct {
	// 会话模式（presentation-jury-mode 或 environment）
	Mode types.Mode `json:"mode" example:"environment"`
	// 环境类型（school、office），仅 environment 模式使用
	EnvironmentType string `json:"environment_type,omitempty" example:"school"`
	// 用户显示名，缺省为 "User"
	UserName string `json:"user_name,omitempty" example:"Alice"`
}

// AgentInfo 单个 Agent 的公开元数据
type AgentInfo struct {
	// 显示名
	Name string `json:"name" example:"Sarah Chen"`
	// 角色标签
	Persona string `json:"persona" example:"ux_specialist"`
	// 性别（male/female/neutral），前端据此选择头像
	Gender string `json:"gender" example:"female"`
	// 语音合成的声音 ID
	VoiceID string `json:"voice_id" example:"v3V1d2rk6528UrLKRuy8"`
}

// SessionResponse 表示会话创建响应。
// @Description 会话创建响应结构
type SessionResponse struct {
	// 会话 ID（UUID）
	SessionID string `json:"session_id" example:"3f1a2b44-9c1d-4e0f-8a3b-1d2e3f4a5b6c"`
	// 会话模式
	Mode types.Mode `json:"mode" example:"environment"`
	// Agent 元数据列表（按注册顺序）
	Agents []AgentInfo `json:"agents"`
	// 是否播放环境背景音
	BackgroundAudioEnabled bool `json:"background_audio_enabled"`
}

// ResetResponse 会话重置响应
type ResetResponse struct {
	// "reset" 或 "all_sessions_reset"
	Status string `json:"status" example:"reset"`
	// 被清除的会话 ID（清除全部时省略）
	SessionID string `json:"session_id,omitempty"`
}

// MessageRequest 文本消息请求（遗留接口，实际会话走 WebSocket）
type MessageRequest struct {
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
	UserName  string `json:"user_name,omitempty"`
}

// MessageResponse 文本消息确认
type MessageResponse struct {
	Status    string    `json:"status" example:"received"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// =============================================================================
// WebSocket 帧类型
// =============================================================================

// 入站帧类型
const (
	FrameUserMessage = "user_message"
	FramePing        = "ping"
)

// 出站帧类型
const (
	FrameMessageReceived = "message_received"
	FramePong            = "pong"
)

// InboundFrame WebSocket 入站帧。Type 决定其余字段的含义。
type InboundFrame struct {
	Type     string `json:"type"`
	Content  string `json:"content,omitempty"`
	UserName string `json:"user_name,omitempty"`
}

// AckFrame message_received 确认帧
type AckFrame struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// PongFrame ping 响应帧
type PongFrame struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAckFrame 创建 message_received 帧
func NewAckFrame(content string) AckFrame {
	return AckFrame{Type: FrameMessageReceived, Content: content, Timestamp: time.Now()}
}

// NewPongFrame 创建 pong 帧
func NewPongFrame() PongFrame {
	return PongFrame{Type: FramePong, Timestamp: time.Now()}
}
