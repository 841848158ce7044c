// Package mcp exposes the Braid pipeline as MCP tools so agent hosts can
// validate and plan GRDs without shelling out to the CLI.
package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/braid"
	"github.com/aretw0/braid/pkg/grd"
)

// ParseResponse is the structured result of the parse_grd tool.
type ParseResponse struct {
	Direction grd.Direction `json:"direction" jsonschema_description:"Layout direction from the diagram header"`
	Nodes     []grd.Node    `json:"nodes" jsonschema_description:"Nodes in declaration order"`
	Edges     []grd.Edge    `json:"edges" jsonschema_description:"Edges in source order"`
}

// ValidateResponse is the structured result of the validate_grd tool.
type ValidateResponse struct {
	Valid bool     `json:"valid" jsonschema_description:"Whether the diagram is a well-formed GRD"`
	Error string   `json:"error,omitempty" jsonschema_description:"First structural problem found"`
	Notes []string `json:"notes,omitempty" jsonschema_description:"Non-fatal observations"`
}

// PlanResponse is the structured result of the plan_grd tool.
type PlanResponse struct {
	Steps []grd.Step `json:"steps" jsonschema_description:"Execution steps in dependency order"`
}

// Server wraps a braid.Parser and exposes it as an MCP server.
type Server struct {
	parser    *braid.Parser
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers the tools.
func NewServer(parser *braid.Parser) *Server {
	s := &Server{
		parser:    parser,
		mcpServer: server.NewMCPServer("braid-mcp", strings.TrimSpace(braid.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	parseTool := mcp.NewTool("parse_grd",
		mcp.WithDescription("Parse a Guided Reasoning Diagram (Mermaid flowchart) into its nodes and edges. Accepts raw flowchart source or markdown with a fenced mermaid block."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text containing the diagram")),
		mcp.WithOutputSchema[ParseResponse](),
	)
	s.mcpServer.AddTool(parseTool, mcp.NewStructuredToolHandler(s.handleParse))

	validateTool := mcp.NewTool("validate_grd",
		mcp.WithDescription("Check whether a Guided Reasoning Diagram is structurally valid: parseable, acyclic, with a usable start node."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text containing the diagram")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	planTool := mcp.NewTool("plan_grd",
		mcp.WithDescription("Derive the deterministic execution order for a Guided Reasoning Diagram. Each step lists the steps it depends on."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text containing the diagram")),
		mcp.WithOutputSchema[PlanResponse](),
	)
	s.mcpServer.AddTool(planTool, mcp.NewStructuredToolHandler(s.handlePlan))
}

func (s *Server) handleParse(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ParseResponse, error) {
	text, _ := args["text"].(string)

	structure, err := s.parser.Parse(text)
	if err != nil {
		return ParseResponse{}, err
	}
	return ParseResponse{
		Direction: structure.Direction(),
		Nodes:     structure.Nodes(),
		Edges:     structure.Edges(),
	}, nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	text, _ := args["text"].(string)

	valid, message := s.parser.Validate(text)
	resp := ValidateResponse{Valid: valid, Error: message}
	if valid {
		if structure, err := s.parser.Parse(text); err == nil {
			resp.Notes = s.parser.Notes(structure)
		}
	}
	return resp, nil
}

func (s *Server) handlePlan(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PlanResponse, error) {
	text, _ := args["text"].(string)

	steps, err := s.parser.Plan(text)
	if err != nil {
		return PlanResponse{}, err
	}
	return PlanResponse{Steps: steps}, nil
}
