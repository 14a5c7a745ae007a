package game

import (
	"github.com/lixenwraith/captcha-rush/asset"
)

// Category tags a tile as scoring or penalizing
type Category int

const (
	CategoryTarget Category = iota
	CategoryDistractor
)

func (c Category) String() string {
	if c == CategoryTarget {
		return "target"
	}
	return "distractor"
}

// Tile is one clickable image on the board
// Slot indexes the 3x3 grid, row-major
type Tile struct {
	ID          int
	Key         string
	Category    Category
	Slot        int
	Visible     bool
	Interactive bool
}

// IsTarget reports whether clicking the tile scores
func (t Tile) IsTarget() bool {
	return t.Category == CategoryTarget
}

// Clickable reports whether a pointer press on the tile resolves
func (t Tile) Clickable() bool {
	return t.Visible && t.Interactive
}

// Image keys resolved by the asset package
const (
	KeyTrafficLight1 = asset.KeyTrafficLight1
	KeyTrafficLight2 = asset.KeyTrafficLight2
	KeyTrafficLight3 = asset.KeyTrafficLight3
	KeyBicycle       = asset.KeyBicycle
	KeyStopSign      = asset.KeyStopSign
	KeyTree          = asset.KeyTree
	KeyAd            = asset.KeyAd
	KeyRestart       = asset.KeyRestart
)

// gridKeys fills the 3x3 grid in slot order
var gridKeys = []string{
	KeyTrafficLight1, KeyTrafficLight2, KeyTrafficLight3,
	KeyBicycle, KeyStopSign, KeyTree,
	KeyBicycle, KeyTree, KeyStopSign,
}

var (
	popupTargets     = []string{KeyTrafficLight1, KeyTrafficLight2, KeyTrafficLight3}
	popupDistractors = []string{KeyBicycle, KeyStopSign, KeyTree}
)

func categoryOf(key string) Category {
	switch key {
	case KeyTrafficLight1, KeyTrafficLight2, KeyTrafficLight3:
		return CategoryTarget
	default:
		return CategoryDistractor
	}
}

// newGridTiles places all grid tiles visible in their home slots
func newGridTiles() []Tile {
	tiles := make([]Tile, len(gridKeys))
	for i, key := range gridKeys {
		tiles[i] = Tile{ID: i, Key: key, Category: categoryOf(key), Slot: i, Visible: true, Interactive: true}
	}
	return tiles
}

// newPopupTiles creates targets then distractors, all hidden until the first toggle
func newPopupTiles() []Tile {
	tiles := make([]Tile, 0, len(popupTargets)+len(popupDistractors))
	for _, key := range append(append([]string{}, popupTargets...), popupDistractors...) {
		tiles = append(tiles, Tile{ID: len(tiles), Key: key, Category: categoryOf(key), Interactive: true})
	}
	return tiles
}
