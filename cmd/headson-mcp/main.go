// Package main implements headson-mcp, a Model Context Protocol server that
// exposes the summarize operation as a tool over stdio. An agent holding a
// large JSON/YAML document in context can ask for a budget-bounded view of it
// instead of re-reading the whole thing.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/headsonhq/headson/internal/buildinfo"
	"github.com/headsonhq/headson/internal/config"
	"github.com/headsonhq/headson/internal/headson"
)

// summarizeInput is the tool's parameter surface, mirroring the library's
// RawRequest one-to-one (legacy aliases included, since MCP callers may be
// ports of older bindings).
type summarizeInput struct {
	Text            string `json:"text" jsonschema:"the document to summarize"`
	InputFormat     string `json:"input_format,omitempty" jsonschema:"input syntax: json, yaml, or text (default: detect)"`
	Format          string `json:"format,omitempty" jsonschema:"output format: auto, json, yaml, text, pseudo, or js"`
	Style           string `json:"style,omitempty" jsonschema:"marker style: strict, default, or detailed"`
	Skew            string `json:"skew,omitempty" jsonschema:"which end of containers to keep: balanced, head, or tail"`
	CharacterBudget *int   `json:"character_budget,omitempty" jsonschema:"maximum output length in characters"`
	Template        string `json:"template,omitempty" jsonschema:"legacy template alias: json, pseudo, js, yaml, yml"`
}

// summarizeOutput is the tool's structured result.
type summarizeOutput struct {
	Summary string `json:"summary"`
}

func summarize(_ context.Context, _ *mcp.CallToolRequest, in summarizeInput) (*mcp.CallToolResult, summarizeOutput, error) {
	out, err := headson.Summarize(headson.RawRequest{
		Text:            in.Text,
		InputFormat:     in.InputFormat,
		Format:          in.Format,
		Style:           in.Style,
		Skew:            in.Skew,
		CharacterBudget: in.CharacterBudget,
		Template:        in.Template,
	})
	if err != nil {
		return nil, summarizeOutput{}, err
	}
	return nil, summarizeOutput{Summary: out}, nil
}

func main() {
	config.SetupLogging(config.ResolveLogLevel(false, false), config.ResolveLogFormat())

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "headson",
		Version: buildinfo.Version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name: "headson_summarize",
		Description: "Summarize a JSON, YAML, or plain-text document to fit a character " +
			"budget, preserving its shape while eliding interior content.",
	}, summarize)

	slog.Info("headson-mcp listening on stdio", "version", buildinfo.Version)
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
