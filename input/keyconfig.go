package input

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Rune aliases for keys that can't be written as a single character
var runeAliases = map[string]rune{
	"space": ' ',
}

// Sentinel errors
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidKey    = errors.New("invalid key")
)

// KeyMap binds printable keys to intents
type KeyMap map[rune]IntentType

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		'q': IntentQuit,
		'r': IntentRestart,
		'm': IntentToggleMute,
		'd': IntentToggleDebug,
	}
}

// LoadKeyConfig applies action → key overrides on top of the defaults
// An overridden action loses its default key; binding to "none" unbinds it
// Returns error on unknown action names or keys that are not a single character
func LoadKeyConfig(overrides map[string]string) (KeyMap, error) {
	km := DefaultKeyMap()

	for action, key := range overrides {
		intent, ok := actionRegistry[action]
		if !ok || action == "none" {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}

		var r rune
		if key != "none" {
			r, ok = parseKey(key)
			if !ok {
				return nil, fmt.Errorf("%w: %q for action %s", ErrInvalidKey, key, action)
			}
		}

		for k, it := range km {
			if it == intent {
				delete(km, k)
			}
		}
		if key != "none" {
			km[r] = intent
		}
	}
	return km, nil
}

func parseKey(s string) (rune, bool) {
	if r, ok := runeAliases[s]; ok {
		return r, true
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}
