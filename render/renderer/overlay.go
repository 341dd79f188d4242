package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stellar-assault/engine"
	"github.com/lixenwraith/stellar-assault/leaderboard"
	"github.com/lixenwraith/stellar-assault/parameter"
	"github.com/lixenwraith/stellar-assault/render"
)

const overlayWidth = 40

// OverlayRenderer draws the phase screens: name entry, pause and game over
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Snapshot == nil {
		return
	}
	switch ctx.Snapshot.Session.Phase {
	case engine.PhaseNameEntry:
		r.nameEntry(ctx, buf)
	case engine.PhasePaused:
		r.paused(ctx, buf)
	case engine.PhaseGameOver:
		r.gameOver(ctx, buf)
	}
}

// panel clears a centered box of h rows and returns its top row
func panel(ctx render.RenderContext, buf *render.RenderBuffer, h int) int {
	w := min(overlayWidth, ctx.ScreenWidth)
	x := (ctx.ScreenWidth - w) / 2
	y := max((ctx.ScreenHeight-h)/2, 0)
	buf.Fill(x, y, w, h, ' ', tcell.StyleDefault.Background(render.RgbOverlayBg))
	return y
}

func overlayStyle(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(render.RgbOverlayBg).Foreground(fg)
}

func (r *OverlayRenderer) nameEntry(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := panel(ctx, buf, 12+parameter.LeaderboardPreviewSize)

	buf.SetStringCentered(y+1, "STELLAR ASSAULT", overlayStyle(render.RgbTitle).Bold(true))
	buf.SetStringCentered(y+3, "PILOT NAME", overlayStyle(render.RgbHudLabel))
	cursor := ' '
	if ctx.Snapshot.Frame/30%2 == 0 {
		cursor = '_'
	}
	buf.SetStringCentered(y+4, fmt.Sprintf("%s%c", ctx.NameInput, cursor), overlayStyle(render.RgbHighlight).Bold(true))
	if engine.NormalizePilotName(ctx.NameInput) == "" {
		buf.SetStringCentered(y+6, "TYPE A NAME TO LAUNCH", overlayStyle(render.RgbHudLabel))
	} else {
		buf.SetStringCentered(y+6, "ENTER TO LAUNCH", overlayStyle(render.RgbShopReady))
	}

	r.leaderboard(ctx, buf, y+8)
}

func (r *OverlayRenderer) paused(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := panel(ctx, buf, 7)
	buf.SetStringCentered(y+1, "PAUSED", overlayStyle(render.RgbTitle).Bold(true))
	buf.SetStringCentered(y+3, "P / ESC  RESUME", overlayStyle(render.RgbHudText))
	buf.SetStringCentered(y+4, "R  EXIT TO BASE", overlayStyle(render.RgbHudText))
	buf.SetStringCentered(y+5, "(this run will not be recorded)", overlayStyle(render.RgbHudLabel))
}

func (r *OverlayRenderer) gameOver(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := &ctx.Snapshot.Session
	y := panel(ctx, buf, 12+parameter.LeaderboardPreviewSize)

	buf.SetStringCentered(y+1, "GAME OVER", overlayStyle(render.RgbWarning).Bold(true))
	buf.SetStringCentered(y+3, fmt.Sprintf("%s  %d", s.Name, s.Score), overlayStyle(render.RgbHighlight).Bold(true))
	if ctx.Scoreboard != nil {
		if rank, total := ctx.Scoreboard.Rank(); rank > 0 {
			buf.SetStringCentered(y+4, fmt.Sprintf("RANK %d OF %d", rank, total), overlayStyle(render.RgbHudText))
		}
	}

	r.leaderboard(ctx, buf, y+6)
	buf.SetStringCentered(y+8+parameter.LeaderboardPreviewSize, "R  RETURN TO BASE", overlayStyle(render.RgbHudText))
}

// leaderboard draws the top entries from row y, highlighting the marked player
func (r *OverlayRenderer) leaderboard(ctx render.RenderContext, buf *render.RenderBuffer, y int) {
	title := "TOP PILOTS"
	if !ctx.Online {
		title = "TOP PILOTS (OFFLINE)"
	}
	buf.SetStringCentered(y, title, overlayStyle(render.RgbHudLabel))

	if ctx.Scoreboard == nil || ctx.Scoreboard.Len() == 0 {
		buf.SetStringCentered(y+1, "no scores yet", overlayStyle(render.RgbOfflineLabel))
		return
	}
	rank, _ := ctx.Scoreboard.Rank()
	for i, e := range ctx.Scoreboard.Top(parameter.LeaderboardPreviewSize) {
		style := overlayStyle(render.RgbHudText)
		if i+1 == rank {
			style = overlayStyle(render.RgbHighlight).Bold(true)
		}
		buf.SetStringCentered(y+1+i, formatEntry(i+1, e), style)
	}
}

func formatEntry(pos int, e leaderboard.Entry) string {
	return fmt.Sprintf("%d. %-*s %10d", pos, leaderboard.MaxNameLen, e.Name, e.Score)
}
