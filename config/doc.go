// Package config 提供 Clarity 的统一配置加载与验证。
package config
