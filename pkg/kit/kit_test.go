package kit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "http", GetTransport(ctx))
	assert.Empty(t, GetRequestID(ctx))

	ctx = WithTransport(WithRequestID(ctx, "r1"), "mcp_quic")
	assert.Equal(t, "mcp_quic", GetTransport(ctx))
	assert.Equal(t, "r1", GetRequestID(ctx))
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Endpoint) Endpoint {
			return func(ctx context.Context, req any) (any, error) {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}
	ep := Chain(mark("a"), mark("b"), mark("c"))(func(context.Context, any) (any, error) {
		order = append(order, "endpoint")
		return nil, nil
	})
	_, _ = ep(context.Background(), nil)
	assert.Equal(t, []string{"a", "b", "c", "endpoint"}, order)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	ep := RequestID()(func(ctx context.Context, _ any) (any, error) {
		seen = GetRequestID(ctx)
		return nil, nil
	})

	_, _ = ep(context.Background(), nil)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err, "generated id %q", seen)

	_, _ = ep(WithRequestID(context.Background(), "given"), nil)
	assert.Equal(t, "given", seen)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ok := Logging(logger, "normalize")(func(context.Context, any) (any, error) { return "x", nil })
	resp, err := ok(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "x", resp)
	assert.Contains(t, buf.String(), "endpoint=normalize")
	assert.Contains(t, buf.String(), "level=DEBUG")

	buf.Reset()
	bad := Logging(logger, "batch")(func(context.Context, any) (any, error) { return nil, errors.New("boom") })
	_, err = bad(context.Background(), nil)
	assert.EqualError(t, err, "boom")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "error=boom")
}

type toolReply struct {
	Result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
}

func callTool(t *testing.T, srv *server.MCPServer, name string, args map[string]any) toolReply {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params":  map[string]any{"name": name, "arguments": args},
	})
	require.NoError(t, err)
	raw, err := json.Marshal(srv.HandleMessage(context.Background(), msg))
	require.NoError(t, err)
	var reply toolReply
	require.NoError(t, json.Unmarshal(raw, &reply))
	require.NotEmpty(t, reply.Result.Content, string(raw))
	return reply
}

func TestRegisterMCPTool(t *testing.T) {
	srv := server.NewMCPServer("test", "0.0.0", server.WithToolCapabilities(false))
	tool := mcp.NewTool("echo", mcp.WithString("text", mcp.Required()))

	RegisterMCPTool(srv, tool, func(ctx context.Context, req any) (any, error) {
		text := req.(string)
		if text == "fail" {
			return nil, errors.New("endpoint failed")
		}
		return map[string]string{"text": strings.ToUpper(text), "transport": GetTransport(ctx)}, nil
	}, func(req mcp.CallToolRequest) (*MCPDecodeResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return nil, err
		}
		return &MCPDecodeResult{Request: text}, nil
	})

	reply := callTool(t, srv, "echo", map[string]any{"text": "ok"})
	assert.False(t, reply.Result.IsError)
	assert.JSONEq(t, `{"text":"OK","transport":"mcp"}`, reply.Result.Content[0].Text)

	reply = callTool(t, srv, "echo", map[string]any{"text": "fail"})
	assert.True(t, reply.Result.IsError)
	assert.Equal(t, "endpoint failed", reply.Result.Content[0].Text)

	reply = callTool(t, srv, "echo", map[string]any{})
	assert.True(t, reply.Result.IsError)
	assert.Contains(t, reply.Result.Content[0].Text, "invalid arguments")
}
