// Package api defines the HTTP and WebSocket wire types for the Clarity
// conversational learning backend.
//
// # API Overview
//
// Clarity exposes a small REST surface for session lifecycle plus one
// duplex WebSocket channel per session:
//   - POST /session  — create a jury or environment session
//   - POST /reset    — clear one session or all sessions
//   - POST /message  — fire-and-forget text acknowledgment (legacy)
//   - GET  /ws/{session_id} — real-time conversation channel
//   - GET  /health, /healthz, /ready, /version — service health
//
// # WebSocket protocol
//
// Inbound frames:
//
//	{"type":"user_message","content":"...","user_name":"..."}
//	{"type":"ping"}
//
// Outbound frames:
//
//	{"type":"message_received","content":"...","timestamp":"..."}
//	{"type":"agent_message","agent_name":"...","message":"...","agent_gender":"...","voice_id":"...","timestamp":"..."}
//	{"type":"error","message":"...","timestamp":"..."}
//	{"type":"pong","timestamp":"..."}
//
// One channel maps to exactly one session id. Speech synthesis and
// transcription are handled entirely by the frontend; the backend only
// deals in text.
package api
