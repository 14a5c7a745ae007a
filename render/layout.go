package render

import (
	"github.com/lixenwraith/captcha-rush/constants"
	"github.com/lixenwraith/captcha-rush/game"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the origin that centers a w×h box in r
func (r Rect) Center(w, h int) (int, int) {
	return r.X + (r.W-w)/2, r.Y + (r.H-h)/2
}

const (
	gridWidth  = constants.GridColumns*constants.TileWidth + (constants.GridColumns-1)*constants.TileGapX
	gridRows   = constants.GridSlots / constants.GridColumns
	gridHeight = gridRows*constants.TileHeight + (gridRows-1)*constants.TileGapY

	panelWidth  = 32
	panelHeight = 9
)

// Layout positions every drawable region for one screen size
type Layout struct {
	Width, Height int

	InstructionRow int
	ScoreRow       int
	TimerRow       int

	Grid      Rect
	Slots     [constants.GridSlots]Rect
	Intrusion Rect // covers the whole grid
	Panel     Rect // game over box
	Restart   Rect
}

// NewLayout computes regions for a w×h screen, grid centered below the HUD
func NewLayout(w, h int) Layout {
	l := Layout{
		Width:          w,
		Height:         h,
		InstructionRow: 0,
		ScoreRow:       1,
		TimerRow:       2,
	}

	gx := max(0, (w-gridWidth)/2)
	gy := constants.HUDLines + max(0, (h-constants.HUDLines-gridHeight)/2)
	l.Grid = Rect{X: gx, Y: gy, W: gridWidth, H: gridHeight}

	for slot := range l.Slots {
		col := slot % constants.GridColumns
		row := slot / constants.GridColumns
		l.Slots[slot] = Rect{
			X: gx + col*(constants.TileWidth+constants.TileGapX),
			Y: gy + row*(constants.TileHeight+constants.TileGapY),
			W: constants.TileWidth,
			H: constants.TileHeight,
		}
	}

	l.Intrusion = l.Grid

	px, py := l.Grid.Center(panelWidth, panelHeight)
	l.Panel = Rect{X: px, Y: py, W: panelWidth, H: panelHeight}

	bx, _ := l.Panel.Center(constants.RestartButtonWidth, constants.RestartButtonHeight)
	l.Restart = Rect{
		X: bx,
		Y: l.Panel.Y + l.Panel.H - constants.RestartButtonHeight - 1,
		W: constants.RestartButtonWidth,
		H: constants.RestartButtonHeight,
	}
	return l
}

// Fits reports whether the whole board is on screen
func (l Layout) Fits() bool {
	return l.Width >= gridWidth && l.Height >= constants.HUDLines+gridHeight
}

// TargetKind classifies what a pointer press landed on
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetRestart
	TargetIntrusion
	TargetTile
)

// Target is a hit-test result
type Target struct {
	Kind   TargetKind
	TileID int
}

// HitTest resolves a press at (x, y): restart button, then visible ad, then tiles
func (l Layout) HitTest(x, y int, v game.View) Target {
	if v.GameOver {
		if v.Restartable && l.Restart.Contains(x, y) {
			return Target{Kind: TargetRestart}
		}
		return Target{Kind: TargetNone}
	}

	if v.IntrusionVisible && l.Intrusion.Contains(x, y) {
		return Target{Kind: TargetIntrusion}
	}

	for _, t := range v.Tiles {
		if !t.Clickable() || t.Slot < 0 || t.Slot >= len(l.Slots) {
			continue
		}
		if l.Slots[t.Slot].Contains(x, y) {
			return Target{Kind: TargetTile, TileID: t.ID}
		}
	}
	return Target{Kind: TargetNone}
}
