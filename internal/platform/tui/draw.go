package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/widebird/internal/core"
	"github.com/vovakirdan/widebird/internal/games/widebird"
)

// Scene glyphs
const (
	glyphSky      = ' '
	glyphGround   = '▒'
	glyphObstacle = '█'
	glyphRising   = '▲'
	glyphGliding  = '▶'
	glyphSun      = '☼'
)

// playerColumn is where the camera keeps the player's left edge.
const playerColumn = 6

// Scene is everything the renderer needs for one frame.
type Scene struct {
	Session      widebird.Session
	GroundHeight float64
	CanStart     bool
}

// Camera maps world coordinates to screen cells. One world unit is the
// screen height in rows and twice that in columns, so squares stay square
// on a terminal. The camera follows the player horizontally.
type Camera struct {
	OffsetX float64
	Rows    int
}

// NewCamera creates a camera following player on a screen with rows lines.
func NewCamera(player core.Rect, rows int) Camera {
	return Camera{OffsetX: player.X, Rows: rows}
}

// Column maps a world x to a screen column.
func (c Camera) Column(x float64) int {
	return playerColumn + int(math.Round((x-c.OffsetX)*float64(2*c.Rows)))
}

// Row maps a world y to a screen row. Row 0 is the top of the world.
func (c Camera) Row(y float64) int {
	return int(math.Round((1 - y) * float64(c.Rows)))
}

// Cells returns the cell rectangle covering r, at least one cell in size.
func (c Camera) Cells(r core.Rect) (x, y, w, h int) {
	x, y = c.Column(r.X), c.Row(r.Top())
	w = max(1, c.Column(r.Right())-x)
	h = max(1, c.Row(r.Y)-y)
	return x, y, w, h
}

// DrawScene renders one frame into s.
func DrawScene(s *core.Screen, sc Scene) {
	s.Fill(glyphSky, core.ColorSky)
	if s.Width() == 0 || s.Height() == 0 {
		return
	}

	w := sc.Session.World
	cam := NewCamera(w.Player, s.Height())

	drawBackground(s, cam, sc.GroundHeight)

	for _, o := range w.Obstacles {
		x, y, cw, ch := cam.Cells(o.Rect)
		if x >= s.Width() || x+cw < 0 {
			continue
		}
		s.FillRect(x, y, cw, ch, glyphObstacle, core.ColorObstacle)
	}

	glyph := glyphGliding
	if w.Rising {
		glyph = glyphRising
	}
	x, y, cw, ch := cam.Cells(w.Player)
	s.FillRect(x, y, cw, ch, glyph, core.ColorPlayer)

	switch sc.Session.Phase {
	case widebird.PhaseWaiting:
		drawPanel(s, []string{
			"W I D E B I R D",
			"",
			"enter or click to play",
			"space to jump",
		}, 0)
	case widebird.PhasePlaying:
		s.DrawTextCentered(0, fmt.Sprintf(" %d ", w.Score), core.ColorScore)
	case widebird.PhaseEnded:
		hint := "wait..."
		if sc.CanStart {
			hint = "enter or space to play"
		}
		drawPanel(s, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score : %d", sc.Session.Score),
			fmt.Sprintf("Best Score : %d", sc.Session.Best),
			"",
			hint,
		}, 0)
	}
}

// drawBackground draws the sun and the ground band.
func drawBackground(s *core.Screen, cam Camera, groundHeight float64) {
	s.SetCell(s.Width()-6, 1, glyphSun, core.ColorSun)

	top := cam.Row(groundHeight)
	s.FillRect(0, top, s.Width(), s.Height()-top, glyphGround, core.ColorGround)
}

// drawPanel draws a framed box centered on the screen. Line highlight is
// drawn in the highlight color; an empty line right below it becomes a rule.
func drawPanel(s *core.Screen, lines []string, highlight int) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	x := (s.Width() - width) / 2
	y := (s.Height() - height) / 2
	s.FillRect(x, y, width, height, ' ', core.ColorPanel)
	s.DrawBox(x, y, width, height, core.ColorPanel)

	for i, l := range lines {
		if l == "" && i == highlight+1 {
			// Rule under the heading
			s.DrawHLine(x+1, y+1+i, width-2, '─', core.ColorPanel)
			continue
		}
		c := core.ColorPanel
		if i == highlight {
			c = core.ColorHighlight
		}
		lx := x + (width-len([]rune(l)))/2
		s.DrawText(lx, y+1+i, l, c)
	}
}
