// Package mcp provides an MCP (Model Context Protocol) server for qlr.
// Agents send a job sheet as text and get back the rendered locate report or
// its page listing.
package mcp

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/quadralocate/qlr/internal/intake"
	"github.com/quadralocate/qlr/internal/output"
)

// Version is reported to MCP clients during initialization.
const Version = "1.0.0"

// Server wraps the MCP server with qlr-specific functionality
type Server struct {
	mcpServer    *server.MCPServer
	decoder      *intake.Decoder
	logger       *zap.Logger
	section      output.Section
	lineEnding   output.LineEnding
	tools        map[string]bool
	lastActivity time.Time
	timeout      time.Duration
	mu           sync.RWMutex
}

// Config holds server configuration
type Config struct {
	Tools   []string      // Which tools to expose (empty = all)
	Timeout time.Duration // Inactivity timeout (0 = no timeout)

	// Section and LineEnding are used when a call does not name them
	Section    output.Section
	LineEnding output.LineEnding

	// Lenient skips job sheet validation
	Lenient bool

	Logger *zap.Logger
}

// AllTools lists all available tools
var AllTools = []string{"qlr_render", "qlr_pages"}

// New creates a new MCP server for qlr
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	section := cfg.Section
	if section == "" {
		section = output.DefaultSection
	}
	lineEnding := cfg.LineEnding
	if lineEnding == "" {
		lineEnding = output.DefaultLineEnding
	}

	mcpServer := server.NewMCPServer(
		"qlr",
		Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcpServer:    mcpServer,
		decoder:      intake.NewDecoder(logger, cfg.Lenient),
		logger:       logger,
		section:      section,
		lineEnding:   lineEnding,
		tools:        make(map[string]bool),
		lastActivity: time.Now(),
		timeout:      cfg.Timeout,
	}

	toolsToRegister := cfg.Tools
	if len(toolsToRegister) == 0 {
		toolsToRegister = AllTools
	}

	for _, toolName := range toolsToRegister {
		if err := s.registerTool(toolName); err != nil {
			return nil, fmt.Errorf("failed to register tool %s: %w", toolName, err)
		}
		s.tools[toolName] = true
	}

	return s, nil
}

// registerTool registers a single tool with the MCP server
func (s *Server) registerTool(name string) error {
	switch name {
	case "qlr_render":
		return s.registerRenderTool()
	case "qlr_pages":
		return s.registerPagesTool()
	default:
		return fmt.Errorf("unknown tool: %s", name)
	}
}

// ServeStdio starts the server using stdio transport
func (s *Server) ServeStdio() error {
	if s.timeout > 0 {
		go s.timeoutChecker()
	}

	return server.ServeStdio(s.mcpServer)
}

// timeoutChecker monitors for inactivity and exits if timeout exceeded
func (s *Server) timeoutChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if s.idleFor() > s.timeout {
			s.logger.Info("Shutting down after inactivity", zap.Duration("timeout", s.timeout))
			_ = s.logger.Sync()
			os.Exit(0)
		}
	}
}

func (s *Server) idleFor() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.lastActivity)
}

// updateActivity updates the last activity timestamp
func (s *Server) updateActivity() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// ListTools returns the registered tool names in sorted order
func (s *Server) ListTools() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]string, 0, len(s.tools))
	for t := range s.tools {
		tools = append(tools, t)
	}
	sort.Strings(tools)
	return tools
}

// ToolSchema describes a tool's name, description, and parameters.
type ToolSchema struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Parameters  []ParameterSchema `json:"parameters" yaml:"parameters"`
}

// ParameterSchema describes a single tool parameter.
type ParameterSchema struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
}

const (
	renderDescription = "Render a locate report from a job sheet. Returns the billing details and/or the combined report text."
	pagesDescription  = "List the photo pages with content and the drawings of a job sheet, for document assembly."

	sheetParamDescription      = "The job sheet document text"
	formatParamDescription     = "Job sheet encoding: yaml, json, json5 (default: yaml)"
	sectionParamDescription    = "Report part: combined, billing, all"
	lineEndingParamDescription = "Line separator: cr, lf, crlf"
)

// toolSchemaRegistry holds the schema definitions for all tools.
// These mirror the mcp.NewTool() definitions in the register*Tool() functions.
var toolSchemaRegistry = map[string]ToolSchema{
	"qlr_render": {
		Name:        "qlr_render",
		Description: renderDescription,
		Parameters: []ParameterSchema{
			{Name: "sheet", Type: "string", Description: sheetParamDescription, Required: true},
			{Name: "format", Type: "string", Description: formatParamDescription},
			{Name: "section", Type: "string", Description: sectionParamDescription},
			{Name: "line_ending", Type: "string", Description: lineEndingParamDescription},
		},
	},
	"qlr_pages": {
		Name:        "qlr_pages",
		Description: pagesDescription,
		Parameters: []ParameterSchema{
			{Name: "sheet", Type: "string", Description: sheetParamDescription, Required: true},
			{Name: "format", Type: "string", Description: formatParamDescription},
		},
	},
}

// GetToolSchemas returns schemas for all registered tools, sorted by name.
func (s *Server) GetToolSchemas() []ToolSchema {
	names := s.ListTools()
	schemas := make([]ToolSchema, 0, len(names))
	for _, name := range names {
		if schema, ok := toolSchemaRegistry[name]; ok {
			schemas = append(schemas, schema)
		}
	}
	return schemas
}

// CallTool dispatches a tool call by name with the given arguments.
// Returns the result text or an error.
func (s *Server) CallTool(name string, args map[string]interface{}) (string, error) {
	s.mu.RLock()
	registered := s.tools[name]
	s.mu.RUnlock()

	if !registered {
		return "", fmt.Errorf("unknown tool: %s", name)
	}

	sheet, _ := args["sheet"].(string)
	format, _ := args["format"].(string)

	switch name {
	case "qlr_render":
		section, _ := args["section"].(string)
		lineEnding, _ := args["line_ending"].(string)
		return s.executeRender(sheet, format, section, lineEnding)

	case "qlr_pages":
		return s.executePages(sheet, format)

	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

// registerRenderTool registers the qlr_render tool
func (s *Server) registerRenderTool() error {
	tool := mcp.NewTool("qlr_render",
		mcp.WithDescription(renderDescription),
		mcp.WithString("sheet",
			mcp.Required(),
			mcp.Description(sheetParamDescription),
		),
		mcp.WithString("format",
			mcp.Description(formatParamDescription),
		),
		mcp.WithString("section",
			mcp.Description(sectionParamDescription),
		),
		mcp.WithString("line_ending",
			mcp.Description(lineEndingParamDescription),
		),
	)

	s.mcpServer.AddTool(tool, s.handleRender)
	return nil
}

// registerPagesTool registers the qlr_pages tool
func (s *Server) registerPagesTool() error {
	tool := mcp.NewTool("qlr_pages",
		mcp.WithDescription(pagesDescription),
		mcp.WithString("sheet",
			mcp.Required(),
			mcp.Description(sheetParamDescription),
		),
		mcp.WithString("format",
			mcp.Description(formatParamDescription),
		),
	)

	s.mcpServer.AddTool(tool, s.handlePages)
	return nil
}

func (s *Server) handleRender(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	sheet, ok := args["sheet"].(string)
	if !ok || sheet == "" {
		return mcp.NewToolResultError("sheet parameter is required"), nil
	}
	format, _ := args["format"].(string)
	section, _ := args["section"].(string)
	lineEnding, _ := args["line_ending"].(string)

	result, err := s.executeRender(sheet, format, section, lineEnding)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handlePages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	sheet, ok := args["sheet"].(string)
	if !ok || sheet == "" {
		return mcp.NewToolResultError("sheet parameter is required"), nil
	}
	format, _ := args["format"].(string)

	result, err := s.executePages(sheet, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}
