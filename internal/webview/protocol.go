package webview

import (
	"fmt"

	mandel "github.com/marben/mandelview"
)

// message is one input action sent by the browser as JSON.
type message struct {
	Kind  string `json:"kind"`
	Dir   string `json:"dir,omitempty"`
	Delta int    `json:"delta,omitempty"`
	X     int    `json:"x,omitempty"`
	Y     int    `json:"y,omitempty"`
}

var directions = map[string]mandel.Direction{
	"up":    mandel.Up,
	"down":  mandel.Down,
	"left":  mandel.Left,
	"right": mandel.Right,
}

// event converts the message to an engine event.
func (m message) event() (mandel.Event, error) {
	switch m.Kind {
	case "pan":
		d, ok := directions[m.Dir]
		if !ok {
			return nil, fmt.Errorf("pan: unknown direction %q", m.Dir)
		}
		return mandel.Pan{Dir: d}, nil
	case "zoom_in":
		return mandel.ZoomIn{}, nil
	case "zoom_out":
		return mandel.ZoomOut{}, nil
	case "wheel":
		return mandel.Wheel{DeltaY: m.Delta}, nil
	case "recenter":
		if m.X < 0 || m.Y < 0 {
			return nil, fmt.Errorf("recenter: negative pixel (%d, %d)", m.X, m.Y)
		}
		return mandel.Recenter{X: m.X, Y: m.Y}, nil
	case "reset":
		return mandel.Reset{}, nil
	default:
		return nil, fmt.Errorf("unknown message kind %q", m.Kind)
	}
}
