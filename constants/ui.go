package constants

// Tile Layout (terminal cells)
const (
	// TileWidth is the width of one grid tile including its border
	TileWidth = 16

	// TileHeight is the height of one grid tile including its border
	TileHeight = 7

	// TileGapX is the horizontal gap between tiles
	TileGapX = 2

	// TileGapY is the vertical gap between tiles
	TileGapY = 1

	// GridColumns is the number of tile columns
	GridColumns = 3
)

// HUD Layout
const (
	// HUDLines is the number of text rows reserved above the grid (instruction, score, timer, blank)
	HUDLines = 4

	// HUDLeft is the left margin of HUD text
	HUDLeft = 2

	// RestartButtonWidth is the width of the restart affordance
	RestartButtonWidth = 20

	// RestartButtonHeight is the height of the restart affordance
	RestartButtonHeight = 3
)

// Canvas Colors
const (
	// BackgroundHex is the neon green canvas background
	BackgroundHex = 0x39FF14

	// TextHex is the HUD text color
	TextHex = 0x000000

	// GameOverHex is the game over banner color
	GameOverHex = 0x000000
)
