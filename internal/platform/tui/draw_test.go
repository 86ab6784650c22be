package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/widebird/internal/core"
	"github.com/vovakirdan/widebird/internal/games/widebird"
)

func playingSession(rising bool) widebird.Session {
	return widebird.Session{
		Phase: widebird.PhasePlaying,
		World: widebird.World{
			Player: core.NewRect(0.1, 0.5, 0.05, 0.05),
			Obstacles: []widebird.Obstacle{
				{Rect: core.NewRect(0.8, 0, 0.065, 0.35)},
				{Rect: core.NewRect(0.8, 0.65, 0.065, 0.35), Upper: true},
			},
			Score:  3,
			Rising: rising,
		},
	}
}

func TestCameraMapping(t *testing.T) {
	cam := NewCamera(core.NewRect(0.1, 0.5, 0.05, 0.05), 20)

	if got := cam.Column(0.1); got != playerColumn {
		t.Errorf("Column(player) = %d, expected %d", got, playerColumn)
	}
	if got := cam.Column(0.6); got != playerColumn+20 {
		t.Errorf("Column(0.6) = %d, expected %d", got, playerColumn+20)
	}
	if got := cam.Row(1); got != 0 {
		t.Errorf("Row(1) = %d, expected 0", got)
	}
	if got := cam.Row(0); got != 20 {
		t.Errorf("Row(0) = %d, expected 20", got)
	}

	x, y, w, h := cam.Cells(core.NewRect(0.1, 0.5, 0.05, 0.05))
	if x != 6 || y != 9 || w != 2 || h != 1 {
		t.Errorf("Cells(player) = %d,%d %dx%d, expected 6,9 2x1", x, y, w, h)
	}
}

func TestDrawScenePlaying(t *testing.T) {
	s := core.NewScreen(40, 20)
	DrawScene(s, Scene{Session: playingSession(false), GroundHeight: 0.1})

	checks := []struct {
		name string
		x, y int
		want rune
	}{
		{"player", 6, 9, glyphGliding},
		{"player right cell", 7, 9, glyphGliding},
		{"ground", 0, 18, glyphGround},
		{"ground bottom", 39, 19, glyphGround},
		{"lower obstacle", 35, 15, glyphObstacle},
		{"upper obstacle", 35, 3, glyphObstacle},
		{"gap", 35, 10, glyphSky},
		{"sky", 20, 10, glyphSky},
	}
	for _, c := range checks {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("%s at (%d,%d) = %q, expected %q", c.name, c.x, c.y, got, c.want)
		}
	}

	if !strings.Contains(s.Row(0), " 3 ") {
		t.Errorf("score missing from top row: %q", s.Row(0))
	}
	if got := s.GetCell(6, 9).Color; got != core.ColorPlayer {
		t.Errorf("player color = %v, expected %v", got, core.ColorPlayer)
	}
}

func TestDrawSceneRisingGlyph(t *testing.T) {
	s := core.NewScreen(40, 20)
	DrawScene(s, Scene{Session: playingSession(true), GroundHeight: 0.1})

	if got := s.Get(6, 9); got != glyphRising {
		t.Errorf("player glyph = %q, expected %q", got, glyphRising)
	}
}

func TestDrawSceneOverlays(t *testing.T) {
	waiting := widebird.Session{Phase: widebird.PhaseWaiting}
	waiting.World.Player = core.NewRect(0.1, 0.5, 0.05, 0.05)

	ended := playingSession(false)
	ended.Phase = widebird.PhaseEnded
	ended.Score = 3
	ended.Best = 7

	tests := []struct {
		name    string
		scene   Scene
		want    []string
		notWant []string
	}{
		{"waiting", Scene{Session: waiting, GroundHeight: 0.1}, []string{"W I D E B I R D", "enter or click to play"}, []string{"GAME OVER"}},
		{"ended cooling down", Scene{Session: ended, GroundHeight: 0.1}, []string{"GAME OVER", "Score : 3", "Best Score : 7", "wait..."}, nil},
		{"ended ready", Scene{Session: ended, GroundHeight: 0.1, CanStart: true}, []string{"enter or space to play"}, []string{"wait..."}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := core.NewScreen(60, 24)
			DrawScene(s, tc.scene)
			out := s.String()
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("expected %q on screen:\n%s", w, out)
				}
			}
			for _, w := range tc.notWant {
				if strings.Contains(out, w) {
					t.Errorf("did not expect %q on screen", w)
				}
			}
		})
	}
}

func TestDrawSceneSun(t *testing.T) {
	s := core.NewScreen(40, 20)
	session := widebird.Session{Phase: widebird.PhaseWaiting}
	session.World.Player = core.NewRect(0.1, 0.5, 0.05, 0.05)
	DrawScene(s, Scene{Session: session, GroundHeight: 0.1})

	if got := s.Get(34, 1); got != glyphSun {
		t.Errorf("sun = %q, expected %q", got, glyphSun)
	}
}

func TestDrawSceneEmptyScreen(t *testing.T) {
	s := core.NewScreen(0, 0)
	DrawScene(s, Scene{Session: playingSession(false), GroundHeight: 0.1})
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "abc", core.ColorScore)
	s.DrawText(3, 0, "def", core.ColorPlayer)

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "def") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestDrawPanelRuleUnderHeading(t *testing.T) {
	s := core.NewScreen(30, 10)
	drawPanel(s, []string{"TITLE", "", "body"}, 0)

	// Panel is 9 wide and 5 high, centered at (10, 2)
	if got := string([]rune(s.Row(4))[11:18]); got != "───────" {
		t.Errorf("rule row = %q, expected a line under the heading", got)
	}
	if got := s.Get(10, 4); got != '│' {
		t.Errorf("frame at rule row = %q, expected the box edge", got)
	}
	if !strings.Contains(s.Row(3), "TITLE") || !strings.Contains(s.Row(5), "body") {
		t.Errorf("panel text misplaced:\n%s", s.String())
	}
}
