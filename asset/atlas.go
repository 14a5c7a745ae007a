package asset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// Symbolic image keys
const (
	KeyTrafficLight1 = "trafficlight1"
	KeyTrafficLight2 = "trafficlight2"
	KeyTrafficLight3 = "trafficlight3"
	KeyBicycle       = "bicycle"
	KeyStopSign      = "stopsign"
	KeyTree          = "tree"
	KeyAd            = "ad"
	KeyRestart       = "restartButton"
)

// ErrInvalidSprite reports a malformed sprite definition
var ErrInvalidSprite = errors.New("invalid sprite")

// RGB is a packed 0xRRGGBB color
type RGB uint32

// Sprite is an ASCII image for one symbolic key
type Sprite struct {
	Key   string
	Rows  []string
	Fg    RGB
	Bg    RGB
	HasBg bool // false inherits the surrounding background
}

// Width returns the widest row in runes
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	return w
}

// Height returns the row count
func (s Sprite) Height() int {
	return len(s.Rows)
}

// Placeholder returns the stand-in drawn for an unknown key
func Placeholder(key string) Sprite {
	return Sprite{
		Key:  key,
		Rows: []string{"[ ? ]", key},
	}
}

type spriteDef struct {
	Rows []string `toml:"rows"`
	Fg   string   `toml:"fg"`
	Bg   string   `toml:"bg"`
}

type sheet struct {
	Sprites map[string]spriteDef `toml:"sprites"`
}

// Atlas resolves symbolic keys to sprites
type Atlas struct {
	sprites map[string]Sprite
	missing map[string]bool
}

// Load parses a TOML sprite sheet
func Load(data string) (*Atlas, error) {
	var sh sheet
	if _, err := toml.Decode(data, &sh); err != nil {
		return nil, fmt.Errorf("sprite sheet parse: %w", err)
	}

	a := &Atlas{
		sprites: make(map[string]Sprite, len(sh.Sprites)),
		missing: make(map[string]bool),
	}
	for key, def := range sh.Sprites {
		if len(def.Rows) == 0 {
			return nil, fmt.Errorf("%w: %s has no rows", ErrInvalidSprite, key)
		}
		sp := Sprite{Key: key, Rows: def.Rows}

		fg, err := parseHex(def.Fg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s fg: %v", ErrInvalidSprite, key, err)
		}
		sp.Fg = fg

		if def.Bg != "" {
			bg, err := parseHex(def.Bg)
			if err != nil {
				return nil, fmt.Errorf("%w: %s bg: %v", ErrInvalidSprite, key, err)
			}
			sp.Bg, sp.HasBg = bg, true
		}
		a.sprites[key] = sp
	}
	return a, nil
}

// MustLoadDefault parses DefaultSpriteSheet, panicking if the built-in sheet is broken
func MustLoadDefault() *Atlas {
	a, err := Load(DefaultSpriteSheet)
	if err != nil {
		panic(err)
	}
	return a
}

// Sprite returns the sprite for key, or a placeholder if the key is unknown
// A missing asset never fails rendering; it is logged once per key
func (a *Atlas) Sprite(key string) Sprite {
	if sp, ok := a.sprites[key]; ok {
		return sp
	}
	if !a.missing[key] {
		a.missing[key] = true
		log.Warn().Str("key", key).Msg("missing sprite, using placeholder")
	}
	return Placeholder(key)
}

// Has reports whether key is defined
func (a *Atlas) Has(key string) bool {
	_, ok := a.sprites[key]
	return ok
}

// Len returns the number of defined sprites
func (a *Atlas) Len() int {
	return len(a.sprites)
}

// parseHex accepts "#RRGGBB" or "RRGGBB"; empty is black
func parseHex(s string) (RGB, error) {
	if s == "" {
		return 0, nil
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(v), nil
}
