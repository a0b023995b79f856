package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/cornerpick/internal/config"
	"github.com/1broseidon/cornerpick/internal/platform"
)

const (
	ServerName    = "cornerpick"
	ServerVersion = "0.1.0"
)

// Options configures a Server.
type Options struct {
	Screens *platform.Screens
	// ConfigPath is the YAML file holding the stored position.
	ConfigPath string
	Logger     *slog.Logger
}

// Server is the MCP server exposing monitor geometry and the stored popup
// position.
type Server struct {
	mcpServer  *mcpsdk.Server
	screens    *platform.Screens
	configPath string
	logger     *slog.Logger

	// mu serializes config reads and writes across tool calls.
	mu sync.Mutex
}

// NewServer creates a new MCP server.
func NewServer(opts Options) (*Server, error) {
	if opts.Screens == nil {
		return nil, fmt.Errorf("mcp server requires a display source")
	}
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("mcp server requires a config path")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		screens:    opts.Screens,
		configPath: opts.ConfigPath,
		logger:     logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List the connected monitors with their full and available geometry, plus the miniature layout a position picker would draw for a preview of width x height (default 300x300).",
	}, s.handleListMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_popup_position",
		Description: "Return the stored popup position: a screen index and one of its four corners. Indices of -1 mean nothing is selected.",
	}, s.handleGetPopupPosition)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_popup_position",
		Description: "Store a new popup position. corner accepts 0-3 or top-left, top-right, bottom-left, bottom-right. The screen must exist.",
	}, s.handleSetPopupPosition)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "popup_rect",
		Description: "Return the real-screen rectangle of a corner zone, based on the monitor's available geometry. Without arguments the stored position is used.",
	}, s.handlePopupRect)
}

func (s *Server) loadConfig() (*config.Config, error) {
	res, err := config.LoadFromPath(s.configPath)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}
