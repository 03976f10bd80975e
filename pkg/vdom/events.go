package vdom

import "sync/atomic"

// Event is delivered to a handler when the host dispatches an event.
type Event struct {
	Type  string // "input", "click", ...
	Value string // Current value for form events
}

// HandlerFunc is the callable behind a Handler.
type HandlerFunc func(Event)

// Handler is an opaque, comparable handler reference.
// Two bindings are the same binding only if they share the *Handler.
type Handler struct {
	id   uint64
	name string
	fn   HandlerFunc
}

var handlerSeq atomic.Uint64

// NewHandler wraps fn in a new Handler reference.
// name is informational (logs, journals, the JSON wire form).
func NewHandler(name string, fn HandlerFunc) *Handler {
	return &Handler{id: handlerSeq.Add(1), name: name, fn: fn}
}

// Name returns the handler's informational name.
func (h *Handler) Name() string {
	if h == nil {
		return ""
	}
	return h.name
}

// ID returns a process-unique identifier for the reference.
func (h *Handler) ID() uint64 {
	if h == nil {
		return 0
	}
	return h.id
}

// Call invokes the handler. A nil Handler or nil func is a no-op.
func (h *Handler) Call(ev Event) {
	if h == nil || h.fn == nil {
		return
	}
	h.fn(ev)
}

// EventHandler binds a Handler to an event name ("input", not "oninput").
type EventHandler struct {
	Event   string
	Handler *Handler
}

// handlerOf normalizes the accepted handler shapes into a *Handler.
func handlerOf(name string, handler any) *Handler {
	switch h := handler.(type) {
	case *Handler:
		return h
	case HandlerFunc:
		return NewHandler(name, h)
	case func(Event):
		return NewHandler(name, h)
	case func():
		return NewHandler(name, func(Event) { h() })
	case nil:
		return nil
	default:
		return nil
	}
}

// On binds handler to the named event. handler may be a *Handler,
// a HandlerFunc, func(Event), or func().
func On(name string, handler any) EventHandler {
	return EventHandler{Event: name, Handler: handlerOf(name, handler)}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return On("click", handler) }

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return On("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) EventHandler { return On("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return On("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return On("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return On("blur", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return On("keydown", handler) }
