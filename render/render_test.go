package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/captcha-rush/asset"
	"github.com/lixenwraith/captcha-rush/constants"
	"github.com/lixenwraith/captcha-rush/game"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func center(r Rect) (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func playingView() game.View {
	return game.View{
		Variant:     game.VariantGrid,
		Score:       10,
		Instruction: game.InstructionDefault,
		ScoreText:   "Score: 10",
		TimerText:   "Time Left: 27",
		Tiles: []game.Tile{
			{ID: 0, Key: game.KeyTrafficLight1, Category: game.CategoryTarget, Slot: 4, Visible: true, Interactive: true},
			{ID: 1, Key: game.KeyBicycle, Category: game.CategoryDistractor, Slot: 0, Visible: true, Interactive: true},
			{ID: 2, Key: game.KeyTree, Category: game.CategoryDistractor, Slot: 8, Visible: false, Interactive: true},
		},
	}
}

// TestLayoutGeometry verifies the grid is centered under the HUD
func TestLayoutGeometry(t *testing.T) {
	l := NewLayout(80, 40)
	require.True(t, l.Fits())

	assert.Equal(t, Rect{X: 14, Y: 10, W: gridWidth, H: gridHeight}, l.Grid)
	assert.Equal(t, l.Grid, l.Intrusion)
	assert.Equal(t, Rect{X: 14, Y: 10, W: constants.TileWidth, H: constants.TileHeight}, l.Slots[0])
	assert.Equal(t, Rect{X: 32, Y: 18, W: constants.TileWidth, H: constants.TileHeight}, l.Slots[4])

	for i := range l.Slots {
		for j := i + 1; j < len(l.Slots); j++ {
			a, b := l.Slots[i], l.Slots[j]
			overlap := a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
			assert.False(t, overlap, "slots %d and %d overlap", i, j)
		}
	}

	assert.True(t, l.Grid.Contains(l.Restart.X, l.Restart.Y))
	assert.True(t, l.Panel.Contains(l.Restart.X+l.Restart.W-1, l.Restart.Y+l.Restart.H-1))

	assert.False(t, NewLayout(40, 20).Fits())
}

// TestHitTestPriority verifies restart, then ad overlay, then tiles
func TestHitTestPriority(t *testing.T) {
	l := NewLayout(80, 40)
	v := playingView()

	x, y := center(l.Slots[4])
	assert.Equal(t, Target{Kind: TargetTile, TileID: 0}, l.HitTest(x, y, v))

	x, y = center(l.Slots[0])
	assert.Equal(t, Target{Kind: TargetTile, TileID: 1}, l.HitTest(x, y, v))

	x, y = center(l.Slots[8])
	assert.Equal(t, TargetNone, l.HitTest(x, y, v).Kind, "hidden tile")

	assert.Equal(t, TargetNone, l.HitTest(0, 0, v).Kind, "HUD")

	v.IntrusionVisible = true
	x, y = center(l.Slots[4])
	assert.Equal(t, TargetIntrusion, l.HitTest(x, y, v).Kind, "overlay covers tiles")

	v.IntrusionVisible = false
	v.GameOver = true
	v.Restartable = true
	for i := range v.Tiles {
		v.Tiles[i].Interactive = false
	}
	x, y = center(l.Restart)
	assert.Equal(t, TargetRestart, l.HitTest(x, y, v).Kind)
	x, y = center(l.Slots[0])
	assert.Equal(t, TargetNone, l.HitTest(x, y, v).Kind, "board frozen after game over")
}

// TestDrawPlaying verifies HUD text and visible tiles reach the screen
func TestDrawPlaying(t *testing.T) {
	s := newSimScreen(t, 80, 40)
	r := NewRenderer(s, asset.MustLoadDefault())
	v := playingView()

	r.Draw(v, nil)

	assert.Contains(t, rowText(s, 0), game.InstructionDefault)
	assert.Contains(t, rowText(s, 1), "Score: 10")
	assert.Contains(t, rowText(s, 2), "Time Left: 27")

	l := r.Layout()
	ch, _, style, _ := s.GetContent(l.Slots[4].X, l.Slots[4].Y)
	assert.Equal(t, tcell.RuneULCorner, ch)
	_, bg, _ := style.Decompose()
	assert.Equal(t, RgbTileFill, bg)

	ch, _, _, _ = s.GetContent(l.Slots[8].X, l.Slots[8].Y)
	assert.Equal(t, ' ', ch, "hidden tile not drawn")

	_, _, style, _ = s.GetContent(0, l.Height-1)
	_, bg, _ = style.Decompose()
	assert.Equal(t, RgbBackground, bg, "canvas is neon green")

	assert.NotContains(t, screenText(s), game.GameOverText)
}

// TestDrawIntrusion verifies the ad sprite covers the grid
func TestDrawIntrusion(t *testing.T) {
	s := newSimScreen(t, 80, 40)
	r := NewRenderer(s, asset.MustLoadDefault())
	v := playingView()
	v.IntrusionVisible = true
	v.Instruction = game.InstructionIntrusion

	r.Draw(v, nil)

	text := screenText(s)
	assert.Contains(t, text, "CONGRATULATIONS")
	assert.Contains(t, rowText(s, 0), game.InstructionIntrusion)

	l := r.Layout()
	ch, _, _, _ := s.GetContent(l.Slots[4].X, l.Slots[4].Y)
	assert.NotEqual(t, tcell.RuneULCorner, ch, "tile border hidden under overlay")
}

// TestDrawGameOver verifies the final score panel and restart button
func TestDrawGameOver(t *testing.T) {
	s := newSimScreen(t, 80, 40)
	r := NewRenderer(s, asset.MustLoadDefault())
	v := playingView()
	v.GameOver = true
	v.Restartable = true
	v.Score = 5

	r.Draw(v, []string{"scheduler.round=3"})

	text := screenText(s)
	assert.Contains(t, text, game.GameOverText)
	assert.Contains(t, text, "Final Score: 5")
	assert.Contains(t, text, "[ Restart ]")
	assert.Contains(t, rowText(s, 39), "scheduler.round=3")
}

// TestDrawTooSmall verifies a cramped terminal shows a hint instead of the board
func TestDrawTooSmall(t *testing.T) {
	s := newSimScreen(t, 40, 12)
	r := NewRenderer(s, asset.MustLoadDefault())

	r.Draw(playingView(), nil)
	assert.Contains(t, screenText(s), tooSmallText)

	s.SetSize(80, 40)
	r.Resize()
	r.Draw(playingView(), nil)
	assert.NotContains(t, screenText(s), tooSmallText)
}
