package input

// actionRegistry maps canonical action names to intents
// Used by the key config loader to resolve action strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":         IntentQuit,
	"restart":      IntentRestart,
	"toggle_mute":  IntentToggleMute,
	"toggle_debug": IntentToggleDebug,
}

// ActionName returns the config name of an intent, empty if it is not bindable
func ActionName(it IntentType) string {
	for name, t := range actionRegistry {
		if t == it && name != "none" {
			return name
		}
	}
	return ""
}
