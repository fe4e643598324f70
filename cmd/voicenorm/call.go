// CLAUDE:SUMMARY CLI subcommand that calls the MCP tools of a running chassis over QUIC.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hazyhaar/voicenorm/pkg/mcpquic"
)

func cmdCall(args []string) {
	fs := flag.NewFlagSet("call", flag.ExitOnError)
	addr := fs.String("addr", "localhost:8443", "chassis QUIC address")
	insecure := fs.Bool("insecure", false, "skip certificate verification (self-signed dev chassis)")
	list := fs.Bool("list", false, "list the available tools")
	rawArgs := fs.String("args", "{}", "tool arguments as a JSON object")
	timeout := fs.Duration("timeout", 30*time.Second, "overall timeout")
	fs.Parse(args)

	if !*list && fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  voicenorm call [-addr host:port] [-insecure] -list")
		fmt.Fprintln(os.Stderr, `  voicenorm call [-addr host:port] [-insecure] -args '{"text":"..."}' <tool>`)
		os.Exit(1)
	}

	var toolArgs map[string]any
	if err := json.Unmarshal([]byte(*rawArgs), &toolArgs); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -args: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := mcpquic.NewClient(*addr, mcpquic.ClientTLSConfig(*insecure), "voicenorm-cli", version)
	if err := c.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "connect %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer c.Close()

	if *list {
		res, err := c.ListTools(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "list tools: %v\n", err)
			os.Exit(1)
		}
		for _, t := range res.Tools {
			fmt.Printf("  %-18s  %s\n", t.Name, t.Description)
		}
		return
	}

	res, err := c.CallTool(ctx, fs.Arg(0), toolArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "call %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}
	for _, content := range res.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			fmt.Println(text.Text)
		}
	}
	if res.IsError {
		os.Exit(1)
	}
}
