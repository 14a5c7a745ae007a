package events

import (
	"strings"
	"sync"
)

var (
	registryOnce sync.Once
	nameToType   = make(map[string]EventType)
	typeToName   = make(map[EventType]string)
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	for n, et := range nameToType {
		if strings.EqualFold(n, name) {
			return et, true
		}
	}
	return 0, false
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// String implements fmt.Stringer for log fields
func (et EventType) String() string {
	return GetEventName(et)
}

// InitRegistry populates the registry with all game events
// Safe to call multiple times
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("Tick", EventTick)
		RegisterType("TileClick", EventTileClick)
		RegisterType("IntrusionClick", EventIntrusionClick)
		RegisterType("Reshuffle", EventReshuffle)
		RegisterType("IntrusionShow", EventIntrusionShow)
		RegisterType("IntrusionHide", EventIntrusionHide)
		RegisterType("Restart", EventRestart)
		RegisterType("GameOver", EventGameOver)
		RegisterType("SoundRequest", EventSoundRequest)
	})
}
