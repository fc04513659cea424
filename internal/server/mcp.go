package server

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mwarzynski/uw-turing-machine/internal/compiler"
	"github.com/mwarzynski/uw-turing-machine/internal/interpreter"
	"github.com/mwarzynski/uw-turing-machine/internal/parser"
	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// MCP exposes the translator as an MCP server so agent tooling can
// translate and run machines without shelling out.
type MCP struct {
	mcpServer *mcpserver.MCPServer
}

// NewMCP creates the MCP server and registers its tools.
func NewMCP(version string) *MCP {
	s := &MCP{
		mcpServer: mcpserver.NewMCPServer("uwtm-mcp", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *MCP) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcpServer)
}

func (s *MCP) registerTools() {
	// TOOL: translate
	translateTool := mcp.NewTool("translate",
		mcp.WithDescription("Translate a two-tape Turing machine description (8-field lines) into an equivalent single-tape table."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Two-tape machine description text")),
	)
	s.mcpServer.AddTool(translateTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description, err := request.RequireString("machine")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		transitions, err := parser.ParseTwoTape(bytes.NewReader([]byte(description)))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("parse failed: %v", err)), nil
		}
		rows := compiler.Translate(transitions)
		return mcp.NewToolResultText(machine.RenderTable(rows)), nil
	})

	// TOOL: run
	runTool := mcp.NewTool("run",
		mcp.WithDescription("Run a single-tape machine description (5-field lines) against an input tape with a step bound. Answers YES or NO."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Single-tape machine description text")),
		mcp.WithString("tape", mcp.Description("Input tape, one letter per rune")),
		mcp.WithNumber("steps", mcp.Description("Maximum steps to execute (default 100000)")),
	)
	s.mcpServer.AddTool(runTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description, err := request.RequireString("machine")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		rows, err := parser.ParseSingleTape(bytes.NewReader([]byte(description)))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("parse failed: %v", err)), nil
		}

		args := request.GetArguments()
		tape, _ := args["tape"].(string)
		steps := 100000
		if raw, ok := args["steps"].(float64); ok && raw > 0 {
			steps = int(raw)
		}

		m := interpreter.New(interpreter.NewDefinition(rows))
		res := m.Run(steps, interpreter.TapeFromString(tape))
		answer := "NO"
		if res.Accepted {
			answer = "YES"
		}
		return mcp.NewToolResultText(answer), nil
	})
}
