package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/dfa/internal/presentation/graph"
	"github.com/aretw0/dfa/internal/trace"
	dfahttp "github.com/aretw0/dfa/pkg/adapters/http"
	"github.com/aretw0/dfa/pkg/automaton"
	"github.com/aretw0/dfa/pkg/ports"
)

// AcceptResponse aligns with the HTTP adapter and provides a unified structure across adapters.
type AcceptResponse struct {
	Name     string        `json:"name" jsonschema_description:"The automaton queried"`
	Input    string        `json:"input" jsonschema_description:"The input string"`
	Accepted bool          `json:"accepted" jsonschema_description:"Whether the automaton accepts the input"`
	Trace    *trace.Result `json:"trace,omitempty" jsonschema_description:"Replayed path, when requested"`
}

// Server exposes a set of automata as an MCP Server.
type Server struct {
	loader    ports.DefinitionLoader
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(loader ports.DefinitionLoader, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		loader:    loader,
		logger:    logger,
		mcpServer: server.NewMCPServer("dfa-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE until ctx is canceled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	return dfahttp.ListenAndServe(ctx, addr, mux, s.logger)
}

func (s *Server) registerTools() {
	// TOOL: list_automata
	s.mcpServer.AddTool(mcp.NewTool("list_automata",
		mcp.WithDescription("List the names of all available automata."),
	), s.handleList)

	// TOOL: is_accepted
	acceptTool := mcp.NewTool("is_accepted",
		mcp.WithDescription("Decide whether an automaton accepts an input string."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input string, consumed one character at a time")),
		mcp.WithBoolean("trace", mcp.Description("Include the replayed path and where the input got stuck")),
		mcp.WithOutputSchema[AcceptResponse](),
	)
	s.mcpServer.AddTool(acceptTool, mcp.NewStructuredToolHandler(s.handleIsAccepted))

	// TOOL: render_graph
	s.mcpServer.AddTool(mcp.NewTool("render_graph",
		mcp.WithDescription("Render an automaton as a Mermaid flowchart, a Graphviz digraph or a transition list."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithString("format", mcp.Description("mermaid (default), dot or text")),
	), s.handleRenderGraph)
}

func (s *Server) registerResources() {
	// EXPOSE: dfa://automata
	s.mcpServer.AddResource(mcp.NewResource("dfa://automata", "Available Automata",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.loader.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list automata: %w", err)
		}
		jsonBytes, _ := json.Marshal(names)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "dfa://automata",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.loader.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	jsonBytes, _ := json.Marshal(names)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleIsAccepted(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AcceptResponse, error) {
	name, _ := args["name"].(string)
	input, _ := args["input"].(string)
	withTrace, _ := args["trace"].(bool)

	if len(input) > dfahttp.MaxInputLength {
		s.logger.Warn("MCP is_accepted: Input rejected", "size", len(input))
		return AcceptResponse{}, fmt.Errorf("input rejected: too long")
	}

	def, err := s.loader.Get(ctx, name)
	if err != nil {
		return AcceptResponse{}, fmt.Errorf("load failed: %w", err)
	}
	eng := automaton.New(*def)

	resp := AcceptResponse{Name: name, Input: input, Accepted: eng.IsAccepted(input)}
	if withTrace {
		res := trace.Run(eng, input)
		resp.Trace = &res
	}
	return resp, nil
}

func (s *Server) handleRenderGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	name, _ := args["name"].(string)
	format, _ := args["format"].(string)

	def, err := s.loader.Get(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	eng := automaton.New(*def)

	switch format {
	case "", "mermaid":
		return mcp.NewToolResultText(graph.GenerateMermaid(eng, nil)), nil
	case "dot":
		return mcp.NewToolResultText(graph.GenerateDOT(eng, name)), nil
	case "text":
		var sb strings.Builder
		_ = graph.WriteTransitions(&sb, eng)
		return mcp.NewToolResultText(sb.String()), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", format)), nil
	}
}
