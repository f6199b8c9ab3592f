// Package server exposes the simulator and the translation tables as MCP
// tools.
package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/a11y-bridge/internal/scenario"
	"github.com/mj1618/a11y-bridge/internal/trace"
	"github.com/mj1618/a11y-bridge/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport  string
	Port       int
	SessionTTL time.Duration
}

// Server wraps the MCP server with the session store.
type Server struct {
	mcp      *mcpserver.MCPServer
	sessions *SessionStore
	sink     *trace.Sink
}

// New creates a server with every tool registered.
func New(cfg Config, sink *trace.Sink) *Server {
	s := &Server{
		sessions: NewSessionStore(cfg.SessionTTL),
		sink:     sink,
	}
	s.mcp = mcpserver.NewMCPServer(
		"a11y-bridge",
		version.Version,
		mcpserver.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

// Sessions returns the session store.
func (s *Server) Sessions() *SessionStore { return s.sessions }

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	defer s.sessions.CloseAll()
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		return http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), s.Router())
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("simulate",
			mcp.WithDescription("Run a YAML accessibility scenario against a simulated Android or iOS device and return step results, focus events and the final view snapshots."),
			mcp.WithString("scenario", mcp.Required(), mcp.Description("Scenario YAML: platform, sdk, font-scale, content-size, service, steps")),
		),
		s.handleSimulate,
	)

	s.mcp.AddTool(
		mcp.NewTool("closest_font_scale",
			mcp.WithDescription("Normalize a raw OS font scale to the nearest scale the platform supports"),
			mcp.WithNumber("scale", mcp.Required(), mcp.Description("Raw font scale")),
			mcp.WithString("platform", mcp.Description("android or ios (default android)")),
		),
		s.handleClosestFontScale,
	)

	s.mcp.AddTool(
		mcp.NewTool("traits",
			mcp.WithDescription("Convert iOS accessibility trait names to a UIAccessibilityTraits mask, or a mask to names. Role and state add their derived traits."),
			mcp.WithString("traits", mcp.Description("Comma or space separated trait names")),
			mcp.WithNumber("mask", mcp.Description("Trait bitmask to decode")),
			mcp.WithString("role", mcp.Description("Accessibility role")),
			mcp.WithString("state", mcp.Description("Accessibility state")),
		),
		s.handleTraits,
	)

	s.mcp.AddTool(
		mcp.NewTool("describe",
			mcp.WithDescription("Compose the Android content description for a label, value and hint"),
			mcp.WithString("label", mcp.Description("Accessibility label")),
			mcp.WithString("value", mcp.Description("Accessibility value")),
			mcp.WithString("hint", mcp.Description("Accessibility hint")),
			mcp.WithString("role", mcp.Description("Accessibility role")),
			mcp.WithNumber("sdk", mcp.Description("Android API level (default 33)")),
		),
		s.handleDescribe,
	)

	s.mcp.AddTool(
		mcp.NewTool("session_start",
			mcp.WithDescription("Boot a simulated device that persists across calls. Returns a session ID."),
			mcp.WithString("platform", mcp.Required(), mcp.Description("android or ios")),
			mcp.WithNumber("sdk", mcp.Description("Android API level")),
			mcp.WithNumber("font-scale", mcp.Description("Initial Android font scale")),
			mcp.WithString("content-size", mcp.Description("Initial iOS content size category")),
			mcp.WithBoolean("service", mcp.Description("Start with the screen reader running")),
			mcp.WithString("view-types", mcp.Description("Comma separated view types to register")),
		),
		s.handleSessionStart,
	)

	s.mcp.AddTool(
		mcp.NewTool("session_step",
			mcp.WithDescription("Run one scenario step in a session. Step types: "+strings.Join(scenario.StepTypes, ", ")),
			mcp.WithString("session", mcp.Required(), mcp.Description("Session ID from session_start")),
			mcp.WithString("action", mcp.Required(), mcp.Description("Step type")),
			mcp.WithObject("params", mcp.Description("Step parameters, as in a scenario file")),
		),
		s.handleSessionStep,
	)

	s.mcp.AddTool(
		mcp.NewTool("session_snapshot",
			mcp.WithDescription("Return the accessibility snapshot of every view and the events recorded so far"),
			mcp.WithString("session", mcp.Required(), mcp.Description("Session ID from session_start")),
		),
		s.handleSessionSnapshot,
	)

	s.mcp.AddTool(
		mcp.NewTool("session_close",
			mcp.WithDescription("Fire app exit and discard a session"),
			mcp.WithString("session", mcp.Required(), mcp.Description("Session ID from session_start")),
		),
		s.handleSessionClose,
	)
}
