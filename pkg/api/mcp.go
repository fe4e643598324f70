package api

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/voicenorm/pkg/kit"
)

// RegisterMCPTools registers the voicenorm MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, svc Services) {
	eps := newEndpoints(svc)

	kit.RegisterMCPTool(srv, mcp.NewTool("normalize_text",
		mcp.WithDescription("Rewrite spoken Wolof/French numerals in an utterance into canonical text (USSD codes, data quantities, FCFA amounts, phone numbers). Returns the output and each rewrite."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The utterance to normalize")),
	), eps.normalize, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		text, err := req.RequireString("text")
		if err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &normalizeReq{Text: text}}, nil
	})

	kit.RegisterMCPTool(srv, mcp.NewTool("normalize_batch",
		mcp.WithDescription(fmt.Sprintf("Normalize up to %d utterances in one call.", maxBatch)),
		mcp.WithArray("texts", mcp.Required(), mcp.WithStringItems(), mcp.Description("Utterances to normalize")),
	), eps.batch, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		texts, err := req.RequireStringSlice("texts")
		if err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &batchReq{Texts: texts}}, nil
	})

	kit.RegisterMCPTool(srv, mcp.NewTool("classify_word",
		mcp.WithDescription("Look a word up in every lexicon class (numerals, connectors, markers) and report which pack defined it."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The word to classify, e.g. ñaar or dièse")),
	), eps.classify, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		word, err := req.RequireString("word")
		if err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &classifyReq{Word: word}}, nil
	})

	kit.RegisterMCPTool(srv, mcp.NewTool("list_lexicon",
		mcp.WithDescription("List loaded lexicon packs with metadata and entry counts per class."),
	), eps.lexicon, func(mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{}, nil
	})
}
