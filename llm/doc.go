// Package llm 定义统一的模型补全 Provider 抽象。
//
// 会话编排层只依赖本包的 Provider 接口与错误码，
// 具体的上游实现位于 llm/providers 子包。
package llm
