package webview

import (
	"testing"

	mandel "github.com/marben/mandelview"
)

func TestMessageEvent(t *testing.T) {
	tests := []struct {
		msg  message
		want mandel.Event
	}{
		{message{Kind: "pan", Dir: "up"}, mandel.Pan{Dir: mandel.Up}},
		{message{Kind: "pan", Dir: "right"}, mandel.Pan{Dir: mandel.Right}},
		{message{Kind: "zoom_in"}, mandel.ZoomIn{}},
		{message{Kind: "zoom_out"}, mandel.ZoomOut{}},
		{message{Kind: "wheel", Delta: -1}, mandel.Wheel{DeltaY: -1}},
		{message{Kind: "recenter", X: 12, Y: 34}, mandel.Recenter{X: 12, Y: 34}},
		{message{Kind: "reset"}, mandel.Reset{}},
	}
	for _, tt := range tests {
		got, err := tt.msg.event()
		if err != nil {
			t.Fatalf("%+v.event() error: %v", tt.msg, err)
		}
		if got != tt.want {
			t.Fatalf("%+v.event() = %#v, want %#v", tt.msg, got, tt.want)
		}
	}
}

func TestMessageEventRejects(t *testing.T) {
	for _, m := range []message{
		{Kind: "quit"},
		{Kind: ""},
		{Kind: "pan", Dir: "sideways"},
		{Kind: "recenter", X: -1, Y: 3},
	} {
		if ev, err := m.event(); err == nil {
			t.Fatalf("%+v.event() = %#v, want error", m, ev)
		}
	}
}
