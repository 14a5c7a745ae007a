package main

import (
	"github.com/lixenwraith/captcha-rush/events"
	"github.com/lixenwraith/captcha-rush/game"
	"github.com/lixenwraith/captcha-rush/render"
)

// clickEvent maps a pointer press to the session event it triggers
func clickEvent(l render.Layout, x, y int, v game.View) (events.EventType, any, bool) {
	t := l.HitTest(x, y, v)
	switch t.Kind {
	case render.TargetRestart:
		return events.EventRestart, nil, true
	case render.TargetIntrusion:
		return events.EventIntrusionClick, nil, true
	case render.TargetTile:
		return events.EventTileClick, &events.TileClickPayload{TileID: t.TileID}, true
	}
	return 0, nil, false
}
