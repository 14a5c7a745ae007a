package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/captcha-rush/asset"
	"github.com/lixenwraith/captcha-rush/constants"
	"github.com/lixenwraith/captcha-rush/game"
)

const tooSmallText = "Enlarge the terminal to play"

// Renderer draws session views onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	atlas  *asset.Atlas
	layout Layout
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen, atlas *asset.Atlas) *Renderer {
	r := &Renderer{screen: screen, atlas: atlas}
	r.Resize()
	return r
}

// Resize recomputes the layout from the current screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.layout = NewLayout(w, h)
}

// Layout returns the active layout for hit-testing
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Draw renders one frame; debug lines are drawn bottom-left when non-empty
func (r *Renderer) Draw(v game.View, debug []string) {
	l := r.layout
	r.fill(Rect{W: l.Width, H: l.Height}, styleCanvas)

	r.drawText(constants.HUDLeft, l.InstructionRow, v.Instruction, styleCanvas.Bold(true))
	r.drawText(constants.HUDLeft, l.ScoreRow, v.ScoreText, styleCanvas)
	r.drawText(constants.HUDLeft, l.TimerRow, v.TimerText, styleCanvas)

	if !l.Fits() {
		r.drawText(constants.HUDLeft, constants.HUDLines, tooSmallText, styleCanvas)
	} else {
		for _, t := range v.Tiles {
			if t.Visible && t.Slot >= 0 && t.Slot < len(l.Slots) {
				r.drawTile(l.Slots[t.Slot], t)
			}
		}
		if v.IntrusionVisible {
			r.drawIntrusion(l.Intrusion)
		}
		if v.GameOver && v.Restartable {
			r.drawGameOver(v)
		}
	}

	for i, line := range debug {
		y := l.Height - len(debug) + i
		if y > l.TimerRow {
			r.drawText(0, y, line, styleCanvas.Foreground(RgbDebug))
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawTile(rect Rect, t game.Tile) {
	border := styleTile
	if !t.Interactive {
		border = border.Foreground(RgbDisabled)
	}
	r.fill(rect, border)
	r.drawBox(rect, border)

	sp := r.atlas.Sprite(t.Key)
	fg := styleTile.Foreground(spriteColor(sp.Fg))
	if !t.Interactive {
		fg = fg.Foreground(RgbDisabled)
	}
	r.drawSprite(rect, sp, fg)
}

func (r *Renderer) drawIntrusion(rect Rect) {
	sp := r.atlas.Sprite(asset.KeyAd)
	style := styleCanvas.Foreground(spriteColor(sp.Fg))
	if sp.HasBg {
		style = style.Background(spriteColor(sp.Bg))
	}
	r.fill(rect, style)
	r.drawBox(rect, style)
	r.drawSprite(rect, sp, style.Bold(true))
}

func (r *Renderer) drawGameOver(v game.View) {
	l := r.layout
	r.fill(l.Panel, stylePanel)
	r.drawBox(l.Panel, stylePanel)

	r.drawCentered(l.Panel, l.Panel.Y+1, game.GameOverText, stylePanel.Bold(true))
	r.drawCentered(l.Panel, l.Panel.Y+3, v.FinalScoreText(), stylePanel)

	sp := r.atlas.Sprite(asset.KeyRestart)
	style := stylePanel.Foreground(spriteColor(sp.Fg))
	if sp.HasBg {
		style = style.Background(spriteColor(sp.Bg))
	}
	r.fill(l.Restart, style)
	r.drawBox(l.Restart, style)
	r.drawSprite(l.Restart, sp, style.Bold(true))
}

// drawSprite centers sprite rows inside rect's border
func (r *Renderer) drawSprite(rect Rect, sp asset.Sprite, style tcell.Style) {
	inner := Rect{X: rect.X + 1, Y: rect.Y + 1, W: rect.W - 2, H: rect.H - 2}
	_, y := inner.Center(0, sp.Height())
	for i, row := range sp.Rows {
		if y+i < inner.Y || y+i >= inner.Y+inner.H {
			continue
		}
		r.drawCentered(inner, y+i, row, style)
	}
}

func (r *Renderer) drawCentered(rect Rect, y int, text string, style tcell.Style) {
	x, _ := rect.Center(len([]rune(text)), 0)
	r.drawText(max(rect.X, x), y, text, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.layout.Width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func (r *Renderer) fill(rect Rect, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawBox(rect Rect, style tcell.Style) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	x2, y2 := rect.X+rect.W-1, rect.Y+rect.H-1
	for x := rect.X + 1; x < x2; x++ {
		r.screen.SetContent(x, rect.Y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, y2, tcell.RuneHLine, nil, style)
	}
	for y := rect.Y + 1; y < y2; y++ {
		r.screen.SetContent(rect.X, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x2, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(rect.X, rect.Y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(x2, rect.Y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(rect.X, y2, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}
