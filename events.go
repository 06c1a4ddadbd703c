package mandel

// Event is one discrete user action. Unknown event types are ignored.
type Event interface{}

// Direction of a pan.
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

type Quit struct{}

type Pan struct {
	Dir Direction
}

type ZoomIn struct{}

type ZoomOut struct{}

// Wheel is a mouse wheel step. Positive DeltaY (wheel up) zooms out,
// negative zooms in.
type Wheel struct {
	DeltaY int
}

// Recenter moves the viewport centre to the point under pixel (X, Y).
type Recenter struct {
	X, Y int
}

// Reset restores the initial viewport.
type Reset struct{}
