package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/captcha-rush/asset"
	"github.com/lixenwraith/captcha-rush/constants"
)

// Canvas palette
var (
	RgbBackground = tcell.NewHexColor(constants.BackgroundHex) // Neon green
	RgbText       = tcell.NewHexColor(constants.TextHex)
	RgbGameOver   = tcell.NewHexColor(constants.GameOverHex)
	RgbTileBorder = tcell.NewRGBColor(0, 90, 0)
	RgbTileFill   = tcell.NewRGBColor(200, 255, 190) // Pale green card
	RgbDisabled   = tcell.NewRGBColor(110, 140, 110)
	RgbPanel      = tcell.NewRGBColor(0, 0, 0)
	RgbPanelText  = tcell.NewRGBColor(255, 255, 255)
	RgbDebug      = tcell.NewRGBColor(40, 40, 40)
)

// Shared styles
var (
	styleCanvas = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	styleTile   = tcell.StyleDefault.Background(RgbTileFill).Foreground(RgbTileBorder)
	stylePanel  = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbPanelText)
)

// spriteColor converts a packed asset color
func spriteColor(c asset.RGB) tcell.Color {
	return tcell.NewHexColor(int32(c))
}
