package mcp

import "github.com/1broseidon/cornerpick/internal/geom"

// ListMonitorsInput is the input for the list_monitors tool.
type ListMonitorsInput struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"Re-read the monitor configuration from the display server before answering"`
	Width   int  `json:"width,omitempty" jsonschema:"Preview width for the miniature layout (default: 300)"`
	Height  int  `json:"height,omitempty" jsonschema:"Preview height for the miniature layout (default: 300)"`
}

// MonitorInfo describes a single monitor.
type MonitorInfo struct {
	Screen    int       `json:"screen"`
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Bounds    geom.Rect `json:"bounds"`
	Available geom.Rect `json:"available"`
	Preview   geom.Rect `json:"preview"`
}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors    []MonitorInfo `json:"monitors"`
	TotalBounds geom.Rect     `json:"total_bounds"`
	PreviewSize geom.Size     `json:"preview_size"`
	SizeHint    geom.Size     `json:"size_hint"`
}

// GetPopupPositionInput is the input for the get_popup_position tool.
type GetPopupPositionInput struct{}

// PositionOutput describes a stored popup position.
type PositionOutput struct {
	Screen      int    `json:"screen"`
	Corner      int    `json:"corner"`
	CornerName  string `json:"corner_name"`
	Description string `json:"description"`
	Valid       bool   `json:"valid"`
}

// SetPopupPositionInput is the input for the set_popup_position tool.
type SetPopupPositionInput struct {
	Screen int    `json:"screen" jsonschema:"required,Zero-based screen index"`
	Corner string `json:"corner" jsonschema:"required,Corner index 0-3 or name: top-left, top-right, bottom-left, bottom-right"`
}

// PopupRectInput is the input for the popup_rect tool.
type PopupRectInput struct {
	Screen *int   `json:"screen,omitempty" jsonschema:"Zero-based screen index (default: stored position)"`
	Corner string `json:"corner,omitempty" jsonschema:"Corner index or name (default: stored position)"`
}

// PopupRectOutput is the output for the popup_rect tool.
type PopupRectOutput struct {
	Position PositionOutput `json:"position"`
	Rect     geom.Rect      `json:"rect"`
}
