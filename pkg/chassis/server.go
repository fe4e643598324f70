// Package chassis serves the voicenorm API on one port over two transports:
//
//   - TCP: HTTP/1.1 and HTTP/2 over TLS
//   - UDP: QUIC, demuxed by ALPN into HTTP/3 ("h3") or MCP JSON-RPC
//     (mcpquic.ALPNProtocolMCP)
//
// HTTP responses advertise HTTP/3 through Alt-Svc. Without cert files a
// self-signed development certificate is generated.
package chassis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"
	"golang.org/x/sync/errgroup"

	"github.com/hazyhaar/voicenorm/pkg/mcpquic"
)

const shutdownTimeout = 5 * time.Second

// Config holds configuration for the chassis server.
type Config struct {
	Addr      string            // TCP and UDP listen address, e.g. ":8443"
	TLS       *tls.Config       // nil: load CertFile/KeyFile or self-sign
	CertFile  string
	KeyFile   string
	Handler   http.Handler
	MCPServer *server.MCPServer // nil disables MCP over QUIC
	Logger    *slog.Logger
}

// Server runs the TCP and QUIC listeners.
type Server struct {
	addr       string
	logger     *slog.Logger
	tlsCfg     *tls.Config
	handler    http.Handler
	mcpHandler *mcpquic.Handler

	mu        sync.Mutex
	tcpServer *http.Server
	h3Server  *http3.Server
	quicLn    *quic.Listener
}

func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	tlsCfg := cfg.TLS
	var err error
	switch {
	case tlsCfg != nil:
	case cfg.CertFile != "" && cfg.KeyFile != "":
		if tlsCfg, err = ProductionTLSConfig(cfg.CertFile, cfg.KeyFile); err != nil {
			return nil, fmt.Errorf("load TLS cert: %w", err)
		}
		cfg.Logger.Info("TLS: certificate loaded", "cert", cfg.CertFile)
	default:
		if tlsCfg, err = DevelopmentTLSConfig(); err != nil {
			return nil, fmt.Errorf("generate dev TLS: %w", err)
		}
		cfg.Logger.Warn("TLS: self-signed development certificate")
	}

	s := &Server{
		addr:    cfg.Addr,
		logger:  cfg.Logger,
		tlsCfg:  tlsCfg,
		handler: securityHeaders(altSvc(cfg.Addr, cfg.Handler)),
	}
	if cfg.MCPServer != nil {
		s.mcpHandler = mcpquic.NewHandler(cfg.MCPServer, cfg.Logger)
	}
	return s, nil
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// altSvc advertises HTTP/3 on the same port.
func altSvc(addr string, next http.Handler) http.Handler {
	_, port, _ := net.SplitHostPort(addr)
	if port == "" {
		port = "8443"
	}
	value := fmt.Sprintf(`h3=":%s"; ma=86400`, port)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Alt-Svc", value)
		next.ServeHTTP(w, r)
	})
}

// Start listens on TCP and UDP and serves until ctx is cancelled or a
// listener fails; both listeners are shut down before it returns.
func (s *Server) Start(ctx context.Context) error {
	tcpTLS := s.tlsCfg.Clone()
	tcpTLS.NextProtos = []string{"h2", "http/1.1"}
	tcpLn, err := tls.Listen("tcp", s.addr, tcpTLS)
	if err != nil {
		return fmt.Errorf("TCP listen: %w", err)
	}
	quicLn, err := quic.ListenAddr(s.addr, s.tlsCfg, mcpquic.QUICConfig())
	if err != nil {
		tcpLn.Close()
		return fmt.Errorf("QUIC listen: %w", err)
	}

	tcpServer := &http.Server{Handler: s.handler, ReadHeaderTimeout: 10 * time.Second}
	h3Server := &http3.Server{Handler: s.handler}
	s.mu.Lock()
	s.tcpServer, s.h3Server, s.quicLn = tcpServer, h3Server, quicLn
	s.mu.Unlock()

	s.logger.Info("chassis started",
		"addr", s.addr,
		"tcp", "HTTP/1.1+HTTP/2 (TLS)",
		"udp", "QUIC (HTTP/3 + MCP)",
		"mcp", s.mcpHandler != nil,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := tcpServer.Serve(tcpLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("TCP: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return s.acceptQUIC(gctx, quicLn, h3Server)
	})
	g.Go(func() error {
		<-gctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Stop(stopCtx)
	})
	return g.Wait()
}

func (s *Server) acceptQUIC(ctx context.Context, ln *quic.Listener, h3 *http3.Server) error {
	for {
		conn, err := ln.Accept(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, quic.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("QUIC accept: %w", err)
		}

		switch alpn := conn.ConnectionState().TLS.NegotiatedProtocol; alpn {
		case http3.NextProtoH3:
			go func() {
				if err := h3.ServeQUICConn(conn); err != nil {
					s.logger.Debug("HTTP/3 conn done", "remote", conn.RemoteAddr(), "error", err)
				}
			}()
		case mcpquic.ALPNProtocolMCP:
			if s.mcpHandler == nil {
				conn.CloseWithError(mcpquic.ConnErrorMCPDisabled, "MCP not enabled")
				continue
			}
			go s.mcpHandler.ServeConn(ctx, conn)
		default:
			s.logger.Warn("unknown ALPN, closing", "alpn", alpn, "remote", conn.RemoteAddr())
			conn.CloseWithError(mcpquic.ConnErrorUnsupportedALPN, "unsupported ALPN: "+alpn)
		}
	}
}

// Stop shuts down both listeners. It is safe to call more than once.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if s.tcpServer != nil {
		errs = append(errs, s.tcpServer.Shutdown(ctx))
		s.tcpServer = nil
	}
	if s.h3Server != nil {
		errs = append(errs, s.h3Server.Close())
		s.h3Server = nil
	}
	if s.quicLn != nil {
		errs = append(errs, s.quicLn.Close())
		s.quicLn = nil
	}
	s.logger.Info("chassis stopped")
	return errors.Join(errs...)
}
