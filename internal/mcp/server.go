// Package mcp provides Model Context Protocol server functionality.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/helixml/almanac/application/service"
	"github.com/helixml/almanac/domain/almanac"
	"github.com/helixml/almanac/domain/puzzle"
	"github.com/helixml/almanac/infrastructure/almanacdoc"
)

// SolutionRunner lists and runs puzzle solutions.
type SolutionRunner interface {
	Solutions() []service.SolutionInfo
	RunInput(ctx context.Context, day int, part puzzle.Part, input string) (service.Result, error)
}

// MinimumFinder answers minimum-reachable queries over documents.
type MinimumFinder interface {
	Minimum(ctx context.Context, doc almanac.Document, mode service.SeedMode) (service.Minimum, error)
}

// Server wraps the MCP server with the almanac tools.
type Server struct {
	mcpServer *server.MCPServer
	runner    SolutionRunner
	almanac   MinimumFinder
	logger    *slog.Logger
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(runner SolutionRunner, finder MinimumFinder, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{runner: runner, almanac: finder, logger: logger}

	mcpServer := server.NewMCPServer(
		"almanac",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(mcp.NewTool("list_solutions",
		mcp.WithDescription("List the puzzle days that have a solution"),
	), s.handleListSolutions)

	mcpServer.AddTool(mcp.NewTool("solve",
		mcp.WithDescription("Solve one part of a puzzle day against the given input text"),
		mcp.WithNumber("day",
			mcp.Required(),
			mcp.Description("Puzzle day, 1-25"),
		),
		mcp.WithString("part",
			mcp.Required(),
			mcp.Description("Puzzle part: a or b"),
		),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("Raw puzzle input"),
		),
	), s.handleSolve)

	mcpServer.AddTool(mcp.NewTool("almanac_minimum",
		mcp.WithDescription("Push seeds through an almanac document and return the lowest reachable value"),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("Almanac document as JSON or YAML: seeds plus ordered stages of [dest, source, length] rules"),
		),
		mcp.WithString("mode",
			mcp.Description("points (each seed is a value) or ranges (seeds are start/length pairs); default points"),
			mcp.Enum("points", "ranges"),
		),
		mcp.WithString("format",
			mcp.Description("json or yaml; detected from the document when omitted"),
			mcp.Enum("json", "yaml"),
		),
	), s.handleMinimum)
}

func (s *Server) handleListSolutions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type solutionResult struct {
		Day  int    `json:"day"`
		Name string `json:"name"`
	}

	infos := s.runner.Solutions()
	results := make([]solutionResult, 0, len(infos))
	for _, info := range infos {
		results = append(results, solutionResult{Day: info.Day, Name: info.Name})
	}
	return jsonResult(results)
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day := request.GetInt("day", 0)
	if err := puzzle.ValidateDay(day); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	partArg, err := request.RequireString("part")
	if err != nil {
		return mcp.NewToolResultError("part is required"), nil
	}
	part, err := puzzle.ParsePart(partArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	input, err := request.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError("input is required"), nil
	}

	result, err := s.runner.RunInput(ctx, day, part, input)
	if err != nil {
		s.logger.Warn("solve failed", "day", day, "part", part.Upper(), "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
	}

	return jsonResult(struct {
		Day       int    `json:"day"`
		Part      string `json:"part"`
		Name      string `json:"name"`
		Answer    string `json:"answer"`
		ElapsedNS int64  `json:"elapsed_ns"`
	}{
		Day:       result.Day,
		Part:      result.Part.Upper(),
		Name:      result.Name,
		Answer:    result.Answer.String(),
		ElapsedNS: result.Elapsed.Nanoseconds(),
	})
}

func (s *Server) handleMinimum(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("document is required"), nil
	}
	mode, err := service.ParseSeedMode(request.GetString("mode", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	format := almanacdoc.Format(strings.ToLower(request.GetString("format", "")))
	if format == "" {
		format = detectFormat(raw)
	}
	doc, err := almanacdoc.Decode(strings.NewReader(raw), format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.almanac.Minimum(ctx, doc, mode)
	if err != nil {
		s.logger.Warn("almanac query failed", "mode", mode, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}

	intervals := make([]string, 0, len(result.Intervals))
	for _, iv := range result.Intervals {
		intervals = append(intervals, iv.String())
	}
	return jsonResult(struct {
		Minimum   uint64   `json:"minimum"`
		Mode      string   `json:"mode"`
		Intervals []string `json:"intervals"`
	}{
		Minimum:   result.Value,
		Mode:      string(mode),
		Intervals: intervals,
	})
}

func detectFormat(raw string) almanacdoc.Format {
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return almanacdoc.FormatJSON
	}
	return almanacdoc.FormatYAML
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
