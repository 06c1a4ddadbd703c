//go:build cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	mandel "github.com/marben/mandelview"
)

// Arrow keys and vi keys pan; letters double the symbol keys for layouts
// where +/- need a modifier.
var keyBindings = []struct {
	key ebiten.Key
	ev  mandel.Event
}{
	{ebiten.KeyArrowUp, mandel.Pan{Dir: mandel.Up}},
	{ebiten.KeyK, mandel.Pan{Dir: mandel.Up}},
	{ebiten.KeyArrowDown, mandel.Pan{Dir: mandel.Down}},
	{ebiten.KeyJ, mandel.Pan{Dir: mandel.Down}},
	{ebiten.KeyArrowLeft, mandel.Pan{Dir: mandel.Left}},
	{ebiten.KeyH, mandel.Pan{Dir: mandel.Left}},
	{ebiten.KeyArrowRight, mandel.Pan{Dir: mandel.Right}},
	{ebiten.KeyL, mandel.Pan{Dir: mandel.Right}},

	{ebiten.KeyEqual, mandel.ZoomIn{}},
	{ebiten.KeyNumpadAdd, mandel.ZoomIn{}},
	{ebiten.KeyP, mandel.ZoomIn{}},
	{ebiten.KeyMinus, mandel.ZoomOut{}},
	{ebiten.KeyNumpadSubtract, mandel.ZoomOut{}},
	{ebiten.KeyM, mandel.ZoomOut{}},

	{ebiten.KeyR, mandel.Reset{}},
	{ebiten.KeyQ, mandel.Quit{}},
	{ebiten.KeyEscape, mandel.Quit{}},
}

// pollInput turns this frame's key presses, wheel steps and right clicks
// into events.
func pollInput(q *mandel.EventQueue, width, height int) {
	if ebiten.IsWindowBeingClosed() {
		q.Push(mandel.Quit{})
		return
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			q.Push(b.ev)
		}
	}

	// ebiten reports wheel up as positive.
	switch _, dy := ebiten.Wheel(); {
	case dy > 0:
		q.Push(mandel.Wheel{DeltaY: 1})
	case dy < 0:
		q.Push(mandel.Wheel{DeltaY: -1})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if x >= 0 && y >= 0 && x < width && y < height {
			q.Push(mandel.Recenter{X: x, Y: y})
		}
	}
}
