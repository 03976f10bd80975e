package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/protocol"
	"github.com/vango-dev/keepfocus/pkg/reconcile"
	"github.com/vango-dev/keepfocus/pkg/vdom"
)

// sessionMessage is one client request.
type sessionMessage struct {
	// Next is absent for a focus-only request and null to remove the tree.
	Next json.RawMessage `json:"next,omitempty"`

	// Focus is a path below the current root.
	Focus *string `json:"focus,omitempty"`
}

// session owns one document. Only its read loop touches the document.
type session struct {
	id     uint64
	conn   *websocket.Conn
	engine *reconcile.Engine
	logger *slog.Logger

	doc      *host.Document
	handlers *vdom.HandlerSet
	recorder *protocol.Recorder
	root     *host.Node

	writeTimeout time.Duration
	closeOnce    sync.Once
}

// handleSession serves GET /v1/session.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(s.config.MaxMessageBytes)

	s.mu.Lock()
	s.nextID++
	sess := newSession(s.nextID, conn, s.engine, s.logger)
	sess.writeTimeout = s.config.WriteTimeout
	s.sessions[sess] = struct{}{}
	s.mu.Unlock()

	if s.metrics != nil {
		sess.doc.Observe(s.metrics.ObserveMutation)
		s.metrics.SessionOpened()
		defer s.metrics.SessionClosed()
	}
	defer func() {
		s.mu.Lock()
		delete(s.sessions, sess)
		s.mu.Unlock()
	}()

	sess.run(r.Context())
}

func newSession(id uint64, conn *websocket.Conn, engine *reconcile.Engine, logger *slog.Logger) *session {
	sess := &session{
		id:       id,
		conn:     conn,
		engine:   engine,
		logger:   logger.With("session", id),
		doc:      host.NewDocument(),
		recorder: protocol.NewRecorder(),
	}
	sess.handlers = vdom.NewHandlerSet(func(name string, ev vdom.Event) {
		sess.logger.Debug("handler called", "handler", name, "event", ev.Type)
	})
	sess.doc.Observe(sess.recorder.Observe)
	return sess
}

func (sess *session) run(ctx context.Context) {
	defer sess.close()
	sess.logger.Debug("session opened")

	for {
		msgType, msg, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				sess.logger.Warn("read error", "error", err)
			}
			sess.logger.Debug("session closed")
			return
		}
		if msgType != websocket.TextMessage {
			err := errors.New("E021").WithDetail("requests are JSON text messages")
			if !sess.send(protocol.ErrorFrame(protocol.ErrorMessageFrom(err, false))) {
				return
			}
			continue
		}

		for _, f := range sess.handle(ctx, msg) {
			if !sess.send(f) {
				return
			}
		}
	}
}

// handle applies one request and returns the frames to send. Mutations
// that did happen are always sent, even when the request then fails, so
// the client mirror never drifts from the document.
func (sess *session) handle(ctx context.Context, msg []byte) []*protocol.Frame {
	err := sess.apply(ctx, msg)

	var frames []*protocol.Frame
	if sess.recorder.Pending() > 0 || err == nil {
		frames = append(frames, protocol.PatchFrames(sess.recorder.Flush())...)
	}
	if err != nil {
		sess.logger.Debug("request failed", "error", err)
		frames = append(frames, protocol.ErrorFrame(protocol.ErrorMessageFrom(err, false)))
	}
	return frames
}

func (sess *session) apply(ctx context.Context, msg []byte) error {
	var m sessionMessage
	if err := json.Unmarshal(msg, &m); err != nil {
		return errors.FromError(err, "E040")
	}

	var next *vdom.VNode
	hasNext := len(m.Next) > 0
	if hasNext && !bytes.Equal(bytes.TrimSpace(m.Next), []byte("null")) {
		var err error
		if next, err = vdom.DecodeJSON(m.Next, sess.handlers); err != nil {
			return err
		}
	}

	// First render: mount, then focus inside the new tree.
	if sess.root == nil {
		if next != nil {
			root, err := sess.doc.Mount(next)
			if err != nil {
				return err
			}
			sess.root = root
		}
		return sess.focus(m.Focus)
	}

	if err := sess.focus(m.Focus); err != nil {
		return err
	}
	if !hasNext {
		return nil
	}

	res, err := sess.engine.Patch(ctx, sess.doc, sess.root, next)
	if err != nil {
		return err
	}
	sess.root = res.Node
	sess.logger.Debug("patched", "outcome", res.Outcome.String(), "mutations", sess.recorder.Pending())
	return nil
}

func (sess *session) focus(path *string) error {
	if path == nil {
		return nil
	}
	if sess.root == nil {
		return errors.New("E043").WithDetail("nothing is mounted")
	}
	p, err := host.ParsePath(*path)
	if err != nil {
		return err
	}
	n := sess.root.Descend(p)
	if n == nil || !n.IsElement() {
		return errors.New("E043").WithDetail("no element at " + p.String())
	}
	sess.doc.Focus(n)
	return nil
}

// send writes one frame as a binary message. It reports false when the
// connection is unusable. A frame that cannot be encoded is replaced by
// an error frame and the session stays open.
func (sess *session) send(f *protocol.Frame) bool {
	data, err := f.Encode()
	if err != nil {
		sess.logger.Error("frame encode failed", "error", err, "type", f.Type.String())
		if data, err = protocol.ErrorFrame(protocol.ErrorMessageFrom(err, false)).Encode(); err != nil {
			return false
		}
	}
	if sess.writeTimeout > 0 {
		_ = sess.conn.SetWriteDeadline(time.Now().Add(sess.writeTimeout))
	}
	if err := sess.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		sess.logger.Warn("write error", "error", err)
		return false
	}
	return true
}

func (sess *session) close() {
	sess.closeOnce.Do(func() {
		_ = sess.conn.Close()
	})
}
