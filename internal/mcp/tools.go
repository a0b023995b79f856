package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/cornerpick/internal/config"
	"github.com/1broseidon/cornerpick/internal/geom"
	"github.com/1broseidon/cornerpick/internal/selector"
)

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, args ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	if args.Refresh {
		if err := s.screens.Refresh(); err != nil {
			return nil, ListMonitorsOutput{}, err
		}
	}
	if args.Width < 0 || args.Height < 0 {
		return nil, ListMonitorsOutput{}, fmt.Errorf("width and height must be >= 0")
	}
	width, height := args.Width, args.Height
	if width == 0 {
		width = geom.PreviewHintExtent
	}
	if height == 0 {
		height = geom.PreviewHintExtent
	}

	displays := s.screens.Displays()
	monitors := s.screens.Monitors()
	total := geom.TotalBounds(monitors)
	preview := geom.ScaledLayout(monitors, total, width, height, geom.PreviewMargin)

	out := ListMonitorsOutput{
		Monitors:    make([]MonitorInfo, len(displays)),
		TotalBounds: total,
		PreviewSize: geom.Size{Width: width, Height: height},
		SizeHint:    geom.PreviewSizeHint(total),
	}
	for i, d := range displays {
		avail, err := s.screens.AvailableGeometry(i)
		if err != nil {
			return nil, ListMonitorsOutput{}, err
		}
		out.Monitors[i] = MonitorInfo{
			Screen:    i,
			Name:      d.Name,
			Label:     selector.ScreenLabel(i),
			Bounds:    d.Bounds,
			Available: avail,
			Preview:   preview[i],
		}
	}

	s.logger.Debug("listed monitors", "count", len(out.Monitors))
	return nil, out, nil
}

func (s *Server) handleGetPopupPosition(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetPopupPositionInput) (*mcpsdk.CallToolResult, PositionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.loadConfig()
	if err != nil {
		return nil, PositionOutput{}, err
	}
	return nil, positionOutput(cfg.Position), nil
}

func (s *Server) handleSetPopupPosition(_ context.Context, _ *mcpsdk.CallToolRequest, args SetPopupPositionInput) (*mcpsdk.CallToolResult, PositionOutput, error) {
	corner, err := geom.ParseCorner(args.Corner)
	if err != nil {
		return nil, PositionOutput{}, err
	}
	pos, err := s.checkPosition(args.Screen, corner)
	if err != nil {
		return nil, PositionOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.loadConfig()
	if err != nil {
		return nil, PositionOutput{}, err
	}
	cfg.Position = pos
	if err := config.Save(s.configPath, cfg); err != nil {
		return nil, PositionOutput{}, err
	}

	s.logger.Info("popup position stored", "position", pos.String())
	return nil, positionOutput(pos), nil
}

func (s *Server) handlePopupRect(_ context.Context, _ *mcpsdk.CallToolRequest, args PopupRectInput) (*mcpsdk.CallToolResult, PopupRectOutput, error) {
	var pos geom.Position
	if args.Screen == nil && strings.TrimSpace(args.Corner) == "" {
		s.mu.Lock()
		cfg, err := s.loadConfig()
		s.mu.Unlock()
		if err != nil {
			return nil, PopupRectOutput{}, err
		}
		pos = cfg.Position
	} else {
		if args.Screen == nil || strings.TrimSpace(args.Corner) == "" {
			return nil, PopupRectOutput{}, fmt.Errorf("screen and corner must be given together")
		}
		corner, err := geom.ParseCorner(args.Corner)
		if err != nil {
			return nil, PopupRectOutput{}, err
		}
		pos = geom.Position{Screen: *args.Screen, Corner: corner}
	}

	pos, err := s.checkPosition(pos.Screen, pos.Corner)
	if err != nil {
		return nil, PopupRectOutput{}, err
	}
	rect, ok := selector.PopupRect(s.screens, pos)
	if !ok {
		return nil, PopupRectOutput{}, fmt.Errorf("no available geometry for %s", pos)
	}
	return nil, PopupRectOutput{Position: positionOutput(pos), Rect: rect}, nil
}

// checkPosition rejects positions that do not name a corner of an existing
// screen.
func (s *Server) checkPosition(screen int, corner geom.Corner) (geom.Position, error) {
	count := len(s.screens.Monitors())
	pos := geom.Position{Screen: screen, Corner: corner}
	if pos.Normalize(count) != pos || !pos.Valid() {
		return geom.None, fmt.Errorf("position %s is not valid for %d screen(s)", pos, count)
	}
	return pos, nil
}

func positionOutput(p geom.Position) PositionOutput {
	return PositionOutput{
		Screen:      p.Screen,
		Corner:      int(p.Corner),
		CornerName:  p.Corner.String(),
		Description: selector.Describe(p),
		Valid:       p.Valid(),
	}
}
