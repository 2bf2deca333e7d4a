// =============================================================================
// 📦 Clarity 默认配置
// =============================================================================
// 提供所有配置项的合理默认值
// =============================================================================
package config

import "time"

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Server:       DefaultServerConfig(),
		LLM:          DefaultLLMConfig(),
		Conversation: DefaultConversationConfig(),
		Log:          DefaultLogConfig(),
	}
}

// DefaultServerConfig 返回默认服务器配置
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		HTTPPort:        8000,
		MetricsPort:     9091,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    120 * time.Second,
		ShutdownTimeout: 15 * time.Second,
		CORSAllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		RateLimitRPS:   100,
		RateLimitBurst: 200,
	}
}

// DefaultLLMConfig 返回默认 LLM 配置
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Provider:    "openai",
		APIKey:      "",
		BaseURL:     "",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   300,
		Timeout:     60 * time.Second,
	}
}

// DefaultConversationConfig 返回默认对话编排配置
func DefaultConversationConfig() ConversationConfig {
	return ConversationConfig{
		MaxQuestions:          4,
		MaxConversationTurns:  20,
		ContextWindow:         10,
		JuryAckDelay:          2 * time.Second,
		EnvironmentReplyDelay: 2500 * time.Millisecond,
	}
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "info",
		Format:           "json",
		OutputPaths:      []string{"stdout"},
		EnableCaller:     true,
		EnableStacktrace: false,
	}
}
