package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BaSui01/clarity/agent"
	"github.com/BaSui01/clarity/api/handlers"
	"github.com/BaSui01/clarity/config"
	"github.com/BaSui01/clarity/conversation"
	"github.com/BaSui01/clarity/internal/metrics"
	"github.com/BaSui01/clarity/internal/server"
	"github.com/BaSui01/clarity/llm/providers/openai"
	"github.com/BaSui01/clarity/session"
)

// =============================================================================
// 🖥️ Server 结构
// =============================================================================

// Server 是 Clarity 的主服务器
type Server struct {
	cfg    *config.Config
	logger *zap.Logger

	// 服务器管理器
	httpManager    *server.Manager
	metricsManager *server.Manager

	// Handlers
	healthHandler  *handlers.HealthHandler
	sessionHandler *handlers.SessionHandler
	wsHandler      *handlers.WSHandler

	// 会话注册表与指标收集器
	registry         *session.Registry
	metricsCollector *metrics.Collector

	// Rate limiter 生命周期管理
	rateLimiterCancel context.CancelFunc

	wg sync.WaitGroup
}

// NewServer 创建新的服务器实例
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
	}
}

// =============================================================================
// 🚀 启动流程
// =============================================================================

// Start 启动所有服务
func (s *Server) Start() error {
	// 1. 初始化指标收集器（nil registry 使用 prometheus 默认注册表）
	s.metricsCollector = metrics.NewCollector("clarity", nil, s.logger)

	// 2. 初始化 Handlers
	if err := s.initHandlers(); err != nil {
		return fmt.Errorf("failed to init handlers: %w", err)
	}

	// 3. 启动 HTTP 服务器
	if err := s.startHTTPServer(); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	// 4. 启动 Metrics 服务器
	if err := s.startMetricsServer(); err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	s.logger.Info("All servers started",
		zap.Int("http_port", s.cfg.Server.HTTPPort),
		zap.Int("metrics_port", s.cfg.Server.MetricsPort),
	)

	return nil
}

// =============================================================================
// 🔧 初始化方法
// =============================================================================

// initHandlers 初始化所有 handlers
func (s *Server) initHandlers() error {
	// 健康检查 handler
	s.healthHandler = handlers.NewHealthHandler(s.logger)

	// LLM Provider。API Key 缺失时仍创建 provider，请求会在调用时
	// 返回认证错误并转化为面向用户的错误事件。
	if s.cfg.LLM.APIKey == "" {
		s.logger.Warn("LLM API key not configured, agent replies will fail")
	}
	provider := openai.New(openai.Config{
		APIKey:       s.cfg.LLM.APIKey,
		BaseURL:      s.cfg.LLM.BaseURL,
		DefaultModel: s.cfg.LLM.Model,
		Timeout:      s.cfg.LLM.Timeout,
	}, s.logger)

	// 就绪检查：API Key 已配置即视为 provider 可用
	apiKey := s.cfg.LLM.APIKey
	s.healthHandler.RegisterCheck(handlers.NewProviderHealthCheck(provider.Name(), func(ctx context.Context) error {
		if apiKey == "" {
			return fmt.Errorf("LLM API key not configured")
		}
		return nil
	}))

	opts := agent.Options{
		Model:       s.cfg.LLM.Model,
		Temperature: float32(s.cfg.LLM.Temperature),
		MaxTokens:   s.cfg.LLM.MaxTokens,
	}
	limits := session.Limits{
		MaxQuestions:         s.cfg.Conversation.MaxQuestions,
		MaxConversationTurns: s.cfg.Conversation.MaxConversationTurns,
		ContextWindow:        s.cfg.Conversation.ContextWindow,
	}

	s.registry = session.NewRegistry()
	s.sessionHandler = handlers.NewSessionHandler(s.registry, provider, opts, limits, s.metricsCollector, s.logger)

	jury := conversation.NewJuryOrchestrator(s.cfg.Conversation.JuryAckDelay, s.logger)
	environment := conversation.NewEnvironmentOrchestrator(s.cfg.Conversation.EnvironmentReplyDelay, s.logger)
	s.wsHandler = handlers.NewWSHandler(s.registry, jury, environment, s.metricsCollector, s.logger)

	s.logger.Info("Handlers initialized", zap.String("llm_provider", provider.Name()))
	return nil
}

// =============================================================================
// 🌐 HTTP 服务器
// =============================================================================

// startHTTPServer 启动 HTTP 服务器
func (s *Server) startHTTPServer() error {
	mux := http.NewServeMux()

	// ========================================
	// 健康检查端点
	// ========================================
	mux.HandleFunc("GET /health", s.healthHandler.HandleHealth)
	mux.HandleFunc("GET /healthz", s.healthHandler.HandleHealthz)
	mux.HandleFunc("GET /ready", s.healthHandler.HandleReady)
	mux.HandleFunc("GET /readyz", s.healthHandler.HandleReady)

	// 版本信息端点
	mux.HandleFunc("GET /version", s.healthHandler.HandleVersion(Version, BuildTime, GitCommit))

	// ========================================
	// 会话 API 路由
	// ========================================
	mux.HandleFunc("POST /session", s.sessionHandler.HandleCreateSession)
	mux.HandleFunc("POST /reset", s.sessionHandler.HandleReset)
	mux.HandleFunc("POST /message", s.sessionHandler.HandleMessage)
	mux.HandleFunc("GET /stream", s.sessionHandler.HandleStream)

	// WebSocket 对话通道
	mux.HandleFunc("GET /ws/{session_id}", s.wsHandler.HandleWS)

	// ========================================
	// 构建中间件链
	// ========================================
	rateLimiterCtx, rateLimiterCancel := context.WithCancel(context.Background())
	s.rateLimiterCancel = rateLimiterCancel
	handler := Chain(mux,
		Recovery(s.logger),
		RequestID(),
		SecurityHeaders(),
		RequestLogger(s.logger),
		Metrics(s.metricsCollector),
		CORS(s.cfg.Server.CORSAllowedOrigins),
		RateLimiter(rateLimiterCtx, float64(s.cfg.Server.RateLimitRPS), s.cfg.Server.RateLimitBurst, s.logger),
	)

	// ========================================
	// 使用 internal/server.Manager
	// ========================================
	serverConfig := server.Config{
		Addr:            fmt.Sprintf(":%d", s.cfg.Server.HTTPPort),
		ReadTimeout:     s.cfg.Server.ReadTimeout,
		// WebSocket 连接生命周期长，写超时为 0 表示不限制
		WriteTimeout:    0,
		IdleTimeout:     2 * s.cfg.Server.ReadTimeout,
		MaxHeaderBytes:  1 << 20, // 1 MB
		ShutdownTimeout: s.cfg.Server.ShutdownTimeout,
	}

	s.httpManager = server.NewManager(handler, serverConfig, s.logger)

	// 启动服务器（非阻塞）
	if err := s.httpManager.Start(); err != nil {
		return err
	}

	s.logger.Info("HTTP server started", zap.Int("port", s.cfg.Server.HTTPPort))
	return nil
}

// =============================================================================
// 📊 Metrics 服务器
// =============================================================================

// startMetricsServer 启动 Metrics 服务器
func (s *Server) startMetricsServer() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	serverConfig := server.Config{
		Addr:            fmt.Sprintf(":%d", s.cfg.Server.MetricsPort),
		ReadTimeout:     s.cfg.Server.ReadTimeout,
		WriteTimeout:    s.cfg.Server.WriteTimeout,
		ShutdownTimeout: s.cfg.Server.ShutdownTimeout,
	}

	s.metricsManager = server.NewManager(mux, serverConfig, s.logger)

	// 启动服务器（非阻塞）
	if err := s.metricsManager.Start(); err != nil {
		return err
	}

	s.logger.Info("Metrics server started", zap.Int("port", s.cfg.Server.MetricsPort))
	return nil
}

// =============================================================================
// 🛑 关闭流程
// =============================================================================

// WaitForShutdown 等待关闭信号并优雅关闭
func (s *Server) WaitForShutdown() {
	// 使用 httpManager 的 WaitForShutdown（它会监听信号）
	if s.httpManager != nil {
		s.httpManager.WaitForShutdown()
	}

	// 执行清理
	s.Shutdown()
}

// Shutdown 优雅关闭所有服务
func (s *Server) Shutdown() {
	s.logger.Info("Starting graceful shutdown...")

	ctx := context.Background()

	// 1. 停止 rate limiter 清理 goroutine
	if s.rateLimiterCancel != nil {
		s.rateLimiterCancel()
	}

	// 2. 关闭 HTTP 服务器
	if s.httpManager != nil {
		if err := s.httpManager.Shutdown(ctx); err != nil {
			s.logger.Error("HTTP server shutdown error", zap.Error(err))
		}
	}

	// 3. 关闭 Metrics 服务器
	if s.metricsManager != nil {
		if err := s.metricsManager.Shutdown(ctx); err != nil {
			s.logger.Error("Metrics server shutdown error", zap.Error(err))
		}
	}

	// 4. 清空会话，等待所有 goroutine 完成
	if s.registry != nil {
		s.registry.ResetAll()
	}
	s.wg.Wait()

	s.logger.Info("Graceful shutdown completed")
}
