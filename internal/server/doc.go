// Package server 提供 HTTP 服务器生命周期管理（内部包）。
package server
