// Copyright (c) Clarity Authors.
// Licensed under the MIT License.

/*
Package handlers 提供 Clarity HTTP/WebSocket API 的请求处理器实现。

# 概述

handlers 包实现了会话生命周期、实时对话通道、健康检查以及
统一的响应/错误处理。所有 Handler 均遵循标准 net/http 接口。

# 核心类型

  - SessionHandler  — 会话创建（/session）、重置（/reset）与遗留文本接口
  - WSHandler       — /ws/{session_id} 双工通道，串行处理入站消息
  - HealthHandler   — 服务健康检查（/health, /healthz, /ready, /version）
  - Response        — 统一 JSON 响应结构（success + data + error + timestamp）
  - ErrorInfo       — 结构化错误信息，含 code、message、retryable 标记
  - ResponseWriter  — 包装 http.ResponseWriter 以捕获状态码

# 主要能力

  - 统一响应格式：WriteSuccess / WriteError / WriteJSON 辅助函数
  - 请求验证：DecodeJSONBody（严格模式拒绝未知字段）
  - ErrorCode → HTTP 状态码自动映射（4xx/5xx）
  - WebSocket 通道：一个通道对应一个会话 ID，入站消息串行处理，
    编排器按 jury → environment 的顺序路由会话查找
*/
package handlers
