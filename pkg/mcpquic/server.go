package mcpquic

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/quic-go/quic-go"

	"github.com/hazyhaar/voicenorm/pkg/kit"
)

// Handler serves MCP sessions on QUIC connections it is handed. It owns no
// listener; the chassis demuxes connections by ALPN and passes MCP ones here.
type Handler struct {
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

func NewHandler(mcpSrv *server.MCPServer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{mcpServer: mcpSrv, logger: logger}
}

// ServeConn runs one MCP session on the first stream of conn: newline
// delimited JSON-RPC messages in both directions until the stream ends.
func (h *Handler) ServeConn(ctx context.Context, conn *quic.Conn) {
	remote := conn.RemoteAddr().String()

	stream, err := conn.AcceptStream(ctx)
	if err != nil {
		h.logger.Warn("MCP accept stream failed", "remote", remote, "error", err)
		conn.CloseWithError(ConnErrorProtocolViolation, "stream accept failed")
		return
	}
	if err := ReadPreamble(stream); err != nil {
		h.logger.Warn("MCP preamble rejected", "remote", remote, "error", err)
		stream.CancelWrite(StreamErrorProtocolConfusion)
		stream.CancelRead(StreamErrorProtocolConfusion)
		conn.CloseWithError(ConnErrorProtocolViolation, "invalid preamble")
		return
	}

	sess := newSession("quic_"+uuid.NewString(), stream)
	if err := h.mcpServer.RegisterSession(ctx, sess); err != nil {
		h.logger.Error("MCP session register failed", "session", sess.id, "error", err)
		stream.Close()
		return
	}
	defer h.mcpServer.UnregisterSession(ctx, sess.id)
	h.logger.Info("MCP session started", "session", sess.id, "remote", remote)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctx = kit.WithTransport(ctx, "mcp_quic")
	ctx = h.mcpServer.WithContext(ctx, sess)
	go sess.forwardNotifications(ctx)

	reader := bufio.NewReader(stream)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 1 {
			if !h.handle(ctx, sess, line) {
				break
			}
		}
		if err != nil {
			if err != io.EOF && ctx.Err() == nil {
				h.logger.Warn("MCP read failed", "session", sess.id, "error", err)
			}
			break
		}
	}

	stream.Close()
	h.logger.Info("MCP session ended", "session", sess.id, "remote", remote)
}

// handle answers one message; false means the stream is no longer writable.
func (h *Handler) handle(ctx context.Context, sess *session, line []byte) bool {
	ctx = kit.WithRequestID(ctx, uuid.NewString())
	response := h.mcpServer.HandleMessage(ctx, json.RawMessage(line))
	if response == nil {
		return true
	}
	if err := sess.send(response); err != nil {
		h.logger.Warn("MCP write failed", "session", sess.id, "error", err)
		return false
	}
	return true
}

// session implements server.ClientSession for one QUIC stream. Responses and
// notifications share the stream, so writes are serialized.
type session struct {
	id            string
	notifications chan mcp.JSONRPCNotification
	initialized   atomic.Bool

	mu sync.Mutex
	w  io.Writer
}

func newSession(id string, w io.Writer) *session {
	return &session{
		id:            id,
		notifications: make(chan mcp.JSONRPCNotification, 100),
		w:             w,
	}
}

func (s *session) SessionID() string                                   { return s.id }
func (s *session) NotificationChannel() chan<- mcp.JSONRPCNotification { return s.notifications }
func (s *session) Initialize()                                         { s.initialized.Store(true) }
func (s *session) Initialized() bool                                   { return s.initialized.Load() }

func (s *session) send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.w.Write(data)
	return err
}

func (s *session) forwardNotifications(ctx context.Context) {
	for {
		select {
		case n := <-s.notifications:
			if err := s.send(n); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
