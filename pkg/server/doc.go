// Package server is the keepfocus playground service.
//
// Routes:
//
//	GET  /healthz     liveness and open session count
//	POST /v1/patch    stateless patch of two JSON descriptions
//	GET  /v1/session  websocket; JSON requests in, binary patch frames out
//	GET  /metrics     Prometheus metrics, when a handler is configured
//
// A session owns one host.Document for the lifetime of its connection.
// Each text message is
//
//	{"next": <description or null>, "focus": "0/1"}
//
// where focus, if present, is applied to the current tree before the
// patch runs, the way a user focuses an input before the app re-renders.
// The reply is a FramePatches frame carrying every host mutation of the
// request, or a FrameError frame.
package server
