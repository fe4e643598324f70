package mcpquic

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quic-go/quic-go"
)

// Client calls MCP tools on a server over QUIC.
type Client struct {
	addr    string
	tlsCfg  *tls.Config
	name    string
	version string

	conn   *quic.Conn
	stream *quic.Stream
	mcp    *client.Client
}

// NewClient prepares a client for addr. A nil tlsCfg trusts any certificate,
// which suits self-signed development servers only.
func NewClient(addr string, tlsCfg *tls.Config, name, version string) *Client {
	if tlsCfg == nil {
		tlsCfg = ClientTLSConfig(true)
	}
	return &Client{addr: addr, tlsCfg: tlsCfg, name: name, version: version}
}

// Connect dials, opens the MCP stream and runs the MCP initialize handshake.
func (c *Client) Connect(ctx context.Context) error {
	conn, err := quic.DialAddr(ctx, c.addr, c.tlsCfg, QUICConfig())
	if err != nil {
		return fmt.Errorf("quic dial %s: %w", c.addr, err)
	}
	if alpn := conn.ConnectionState().TLS.NegotiatedProtocol; alpn != ALPNProtocolMCP {
		conn.CloseWithError(ConnErrorUnsupportedALPN, "bad ALPN")
		return fmt.Errorf("%w: got %q", ErrUnsupportedALPN, alpn)
	}

	stream, err := conn.OpenStreamSync(ctx)
	if err != nil {
		conn.CloseWithError(ConnErrorProtocolViolation, "stream open failed")
		return fmt.Errorf("open stream: %w", err)
	}
	c.conn, c.stream = conn, stream

	if err := WritePreamble(stream); err != nil {
		c.closeTransport()
		return err
	}

	mc := client.NewClient(transport.NewIO(stream, stream, io.NopCloser(eofReader{})))
	if err := mc.Start(ctx); err != nil {
		c.closeTransport()
		return fmt.Errorf("mcp start: %w", err)
	}

	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: c.name, Version: c.version}

	initCtx, cancel := context.WithTimeout(ctx, InitializeTimeout)
	defer cancel()
	if _, err := mc.Initialize(initCtx, req); err != nil {
		mc.Close()
		c.closeTransport()
		return fmt.Errorf("mcp initialize: %w", err)
	}

	c.mcp = mc
	return nil
}

func (c *Client) ListTools(ctx context.Context) (*mcp.ListToolsResult, error) {
	if c.mcp == nil {
		return nil, ErrNotConnected
	}
	return c.mcp.ListTools(ctx, mcp.ListToolsRequest{})
}

// CallTool invokes a tool by name.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	if c.mcp == nil {
		return nil, ErrNotConnected
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return c.mcp.CallTool(ctx, req)
}

func (c *Client) Ping(ctx context.Context) error {
	if c.mcp == nil {
		return ErrNotConnected
	}
	return c.mcp.Ping(ctx)
}

func (c *Client) Close() error {
	if c.mcp != nil {
		c.mcp.Close()
		c.mcp = nil
	}
	return c.closeTransport()
}

func (c *Client) closeTransport() error {
	if c.stream != nil {
		c.stream.Close()
		c.stream = nil
	}
	if c.conn != nil {
		err := c.conn.CloseWithError(ConnErrorNoError, "client closing")
		c.conn = nil
		return err
	}
	return nil
}

// eofReader feeds the stdio transport's stderr reader, which QUIC has no use for.
type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
