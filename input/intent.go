package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentRestart    // r
	IntentToggleMute // m
	IntentToggleDebug
	IntentResize // Terminal resize event

	// Mouse
	IntentClick // Left button press edge
)

// Intent is a translated terminal event
type Intent struct {
	Type IntentType
	X, Y int // Cell position for IntentClick
}
