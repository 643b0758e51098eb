package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quadralocate/qlr/internal/intake"
	"github.com/quadralocate/qlr/internal/mcp"
)

var (
	callList bool
	callPipe bool
	callFile string
)

var callCmd = &cobra.Command{
	Use:   "call [tool] [json-args]",
	Short: "Call an MCP tool from the command line",
	Long: `Call a qlr MCP tool with JSON arguments, without starting a server.

Modes:
  qlr call --list                              List all tools and parameters
  qlr call <tool> '{"sheet":"..."}'            Call a tool with JSON args
  qlr call <tool> '{"section":"billing"}' --sheet job.yaml
  qlr call --pipe                              Read JSON lines from stdin

Tool names accept shorthand: "render" is equivalent to "qlr_render".
--sheet reads the job sheet from a file into the "sheet" argument and sets
"format" from its extension.

Examples:
  qlr call --list
  qlr call render '{}' --sheet job.yaml
  qlr call pages '{"sheet":"{\"utilities\":{}}","format":"json"}'
  echo '{"tool":"qlr_render","args":{"sheet":"..."}}' | qlr call --pipe`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().BoolVar(&callList, "list", false, "List all available tools and their parameters")
	callCmd.Flags().BoolVar(&callPipe, "pipe", false, "Read JSON lines from stdin (pipe mode)")
	callCmd.Flags().StringVar(&callFile, "sheet", "", "Read the job sheet argument from a file")
}

// newCallServer builds an in-process server exposing every tool.
func newCallServer() (*mcp.Server, error) {
	serverCfg, err := mcpConfig("", "")
	if err != nil {
		return nil, err
	}
	serverCfg.Tools = mcp.AllTools
	serverCfg.Timeout = 0

	srv, err := mcp.New(serverCfg)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}
	return srv, nil
}

func runCall(cmd *cobra.Command, args []string) error {
	if callList {
		return runCallList(cmd)
	}
	if callPipe {
		return runCallPipe(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	if len(args) == 0 {
		return fmt.Errorf("tool name required (run 'qlr call --list' to see available tools)")
	}
	return runCallSingle(cmd, args)
}

func runCallList(cmd *cobra.Command) error {
	srv, err := newCallServer()
	if err != nil {
		return err
	}
	return writeListing(cmd.OutOrStdout(), srv.GetToolSchemas())
}

func runCallSingle(cmd *cobra.Command, args []string) error {
	toolName := normalizeToolName(args[0])

	toolArgs := make(map[string]interface{})
	if len(args) >= 2 {
		if err := json.Unmarshal([]byte(args[1]), &toolArgs); err != nil {
			return fmt.Errorf("invalid JSON args: %w", err)
		}
	}

	if callFile != "" {
		data, err := os.ReadFile(callFile)
		if err != nil {
			return fmt.Errorf("reading job sheet: %w", err)
		}
		toolArgs["sheet"] = string(data)
		if _, ok := toolArgs["format"]; !ok {
			if format, err := intake.FormatFromPath(callFile); err == nil {
				toolArgs["format"] = string(format)
			}
		}
	}

	srv, err := newCallServer()
	if err != nil {
		return err
	}

	result, err := srv.CallTool(toolName, toolArgs)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// pipeRequest is the JSON format for pipe mode input.
type pipeRequest struct {
	Tool string                 `json:"tool"`
	Args map[string]interface{} `json:"args"`
}

// pipeResponse is the JSON format for pipe mode output.
type pipeResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func runCallPipe(in io.Reader, out io.Writer) error {
	srv, err := newCallServer()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	scanner := bufio.NewScanner(in)
	// Job sheets with long notes can exceed the default token size
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req pipeRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			enc.Encode(pipeResponse{Error: fmt.Sprintf("invalid JSON: %v", err)})
			continue
		}

		if req.Args == nil {
			req.Args = make(map[string]interface{})
		}

		result, err := srv.CallTool(normalizeToolName(req.Tool), req.Args)
		if err != nil {
			enc.Encode(pipeResponse{Error: err.Error()})
			continue
		}
		enc.Encode(pipeResponse{Result: result})
	}

	return scanner.Err()
}

// normalizeToolName converts shorthand names to full tool names.
// "render" -> "qlr_render", "qlr_render" -> "qlr_render"
func normalizeToolName(name string) string {
	if !strings.HasPrefix(name, "qlr_") {
		return "qlr_" + name
	}
	return name
}
