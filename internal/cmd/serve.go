package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quadralocate/qlr/internal/config"
	"github.com/quadralocate/qlr/internal/mcp"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server for agent integration",
	Long: `Start an MCP (Model Context Protocol) server over stdio.

Agents send the job sheet text with each call and get back the report text or
the page listing, without writing the sheet to disk.

Available Tools:
  qlr_render   Render billing details and/or the combined report
  qlr_pages    List photo pages with content and drawings

Tools, timeout, default section and line ending come from .qlr/config.yaml
unless given on the command line.

Examples:
  qlr serve --mcp                     # Start with configured tools
  qlr serve --mcp --tools render      # Expose qlr_render only
  qlr serve --mcp --timeout 30m       # Auto-stop after 30 minutes idle
  qlr serve --status                  # Check if server is running
  qlr serve --stop                    # Stop running server
  qlr serve --list-tools              # Show available tools`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveMCP       bool
	serveTools     string
	serveTimeout   string
	serveStatus    bool
	serveStop      bool
	serveListTools bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveMCP, "mcp", false, "Start MCP server (stdio transport)")
	serveCmd.Flags().StringVar(&serveTools, "tools", "", "Comma-separated list of tools to expose (default from config)")
	serveCmd.Flags().StringVar(&serveTimeout, "timeout", "", "Inactivity timeout, 0 for none (default from config)")
	serveCmd.Flags().BoolVar(&serveStatus, "status", false, "Check if server is running")
	serveCmd.Flags().BoolVar(&serveStop, "stop", false, "Stop running server")
	serveCmd.Flags().BoolVar(&serveListTools, "list-tools", false, "List available tools")
}

func runServe(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if serveListTools {
		srv, err := mcp.New(mcp.Config{Tools: mcp.AllTools})
		if err != nil {
			return fmt.Errorf("create server: %w", err)
		}
		fmt.Fprintln(out, "Available MCP tools:")
		fmt.Fprintln(out)
		for _, s := range srv.GetToolSchemas() {
			fmt.Fprintf(out, "  %-12s %s\n", s.Name, s.Description)
		}
		return nil
	}

	if serveStatus {
		return checkServerStatus(cmd)
	}

	if serveStop {
		return stopServer(cmd)
	}

	if !serveMCP {
		return fmt.Errorf("use --mcp to start the MCP server, or --help for usage")
	}

	serverCfg, err := mcpConfig(serveTools, serveTimeout)
	if err != nil {
		return err
	}

	server, err := mcp.New(serverCfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	log := currentLogger()

	if err := writePIDFile(); err != nil {
		log.Warn("Could not write PID file", zap.Error(err))
	}
	defer removePIDFile()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("Shutting down", zap.String("signal", sig.String()))
		_ = log.Sync()
		removePIDFile()
		os.Exit(0)
	}()

	// stdout carries the MCP protocol; status goes to stderr
	fmt.Fprintf(cmd.ErrOrStderr(), "qlr serve: starting MCP server\n")
	fmt.Fprintf(cmd.ErrOrStderr(), "qlr serve: tools: %v\n", server.ListTools())
	if serverCfg.Timeout > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "qlr serve: timeout: %v\n", serverCfg.Timeout)
	}

	return server.ServeStdio()
}

// mcpConfig merges the --tools and --timeout flags over the loaded config.
func mcpConfig(toolsFlag, timeoutFlag string) (mcp.Config, error) {
	c := currentConfig()

	section, err := resolveSection("")
	if err != nil {
		return mcp.Config{}, err
	}
	lineEnding, err := resolveLineEnding("")
	if err != nil {
		return mcp.Config{}, err
	}

	timeout, err := c.Serve.TimeoutDuration()
	if timeoutFlag != "" {
		timeout, err = parseDuration(timeoutFlag)
	}
	if err != nil {
		return mcp.Config{}, fmt.Errorf("invalid timeout: %w", err)
	}

	tools := c.Serve.Tools
	if toolsFlag != "" {
		tools = parseToolList(toolsFlag)
	}

	return mcp.Config{
		Tools:      tools,
		Timeout:    timeout,
		Section:    section,
		LineEnding: lineEnding,
		Lenient:    c.Intake.Lenient,
		Logger:     currentLogger(),
	}, nil
}

// parseToolList splits a comma-separated tool list, accepting shorthand
// names ("render" for "qlr_render").
func parseToolList(s string) []string {
	var tools []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tools = append(tools, normalizeToolName(t))
		}
	}
	return tools
}

func parseDuration(s string) (time.Duration, error) {
	if s == "0" || s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func getPIDFilePath() (string, error) {
	qlrDir, err := config.FindConfigDir(".")
	if err != nil {
		return "", err
	}
	return filepath.Join(qlrDir, "serve.pid"), nil
}

func writePIDFile() error {
	pidPath, err := getPIDFilePath()
	if err != nil {
		return err
	}
	return os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), 0644)
}

func removePIDFile() {
	pidPath, err := getPIDFilePath()
	if err != nil {
		return
	}
	os.Remove(pidPath)
}

// readPID returns the PID recorded by a running server, or 0 when there is
// none.
func readPID() (int, error) {
	pidPath, err := getPIDFilePath()
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(pidPath)
	if err != nil {
		return 0, nil
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		removePIDFile()
		return 0, fmt.Errorf("invalid PID file")
	}
	return pid, nil
}

func checkServerStatus(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	pid, err := readPID()
	if err != nil {
		fmt.Fprintf(out, "Status: not running (%v)\n", err)
		return nil
	}
	if pid == 0 {
		fmt.Fprintln(out, "Status: not running")
		return nil
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		fmt.Fprintln(out, "Status: not running")
		removePIDFile()
		return nil
	}

	// FindProcess always succeeds on Unix; signal 0 checks the process exists
	if err := process.Signal(syscall.Signal(0)); err != nil {
		fmt.Fprintln(out, "Status: not running (stale PID file)")
		removePIDFile()
		return nil
	}

	fmt.Fprintf(out, "Status: running (PID %d)\n", pid)
	return nil
}

func stopServer(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	pid, err := readPID()
	if err != nil {
		return err
	}
	if pid == 0 {
		fmt.Fprintln(out, "No server running")
		return nil
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		removePIDFile()
		fmt.Fprintln(out, "No server running")
		return nil
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		removePIDFile()
		fmt.Fprintln(out, "Server already stopped")
		return nil
	}

	fmt.Fprintf(out, "Stopped server (PID %d)\n", pid)
	return nil
}
