package render

import (
	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/leaderboard"
)

const (
	// HudRows is the number of status rows above the play field
	HudRows = 2
	// cellAspect is terminal cell height over width
	cellAspect = 2.0
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot *engine.Snapshot

	// Presentation state owned by the front end
	NameInput  string
	Muted      bool
	Online     bool
	Scoreboard *leaderboard.Scoreboard

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Play field rectangle inside the border, in screen cells
	FieldX      int
	FieldY      int
	FieldWidth  int
	FieldHeight int
}

// NewRenderContext lays out the play field for the snapshot's world size on a screen
// The field keeps the world aspect ratio and is centered horizontally below the HUD
func NewRenderContext(snap *engine.Snapshot, screenWidth, screenHeight int) RenderContext {
	ctx := RenderContext{
		Snapshot:     snap,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}

	availW := screenWidth - 2
	availH := screenHeight - HudRows - 2
	if availW <= 0 || availH <= 0 || snap == nil || snap.Width <= 0 || snap.Height <= 0 {
		return ctx
	}

	// Cells are twice as tall as wide
	fieldH := availH
	fieldW := int(float64(fieldH) * snap.Width / snap.Height * cellAspect)
	if fieldW > availW {
		fieldW = availW
		fieldH = int(float64(fieldW) * snap.Height / snap.Width / cellAspect)
		if fieldH < 1 {
			fieldH = 1
		}
	}

	ctx.FieldWidth = fieldW
	ctx.FieldHeight = fieldH
	ctx.FieldX = 1 + (availW-fieldW)/2
	ctx.FieldY = HudRows + 1
	return ctx
}

// HasField reports whether the screen is large enough to draw the play field
func (rc *RenderContext) HasField() bool {
	return rc.FieldWidth > 0 && rc.FieldHeight > 0
}

// MapToScreen converts world coordinates to screen coordinates
// Returns visible=false when the point falls outside the field
func (rc *RenderContext) MapToScreen(x, y float64) (int, int, bool) {
	if !rc.HasField() || x < 0 || y < 0 || x >= rc.Snapshot.Width || y >= rc.Snapshot.Height {
		return 0, 0, false
	}
	sx := int(x / rc.Snapshot.Width * float64(rc.FieldWidth))
	sy := int(y / rc.Snapshot.Height * float64(rc.FieldHeight))
	return rc.FieldX + sx, rc.FieldY + sy, true
}

// ScreenToMap converts a screen cell to the world coordinates of its center
// Returns ok=false outside the field
func (rc *RenderContext) ScreenToMap(sx, sy int) (float64, float64, bool) {
	if !rc.HasField() {
		return 0, 0, false
	}
	fx, fy := sx-rc.FieldX, sy-rc.FieldY
	if fx < 0 || fy < 0 || fx >= rc.FieldWidth || fy >= rc.FieldHeight {
		return 0, 0, false
	}
	x := (float64(fx) + 0.5) / float64(rc.FieldWidth) * rc.Snapshot.Width
	y := (float64(fy) + 0.5) / float64(rc.FieldHeight) * rc.Snapshot.Height
	return x, y, true
}
