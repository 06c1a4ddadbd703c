package mandel

// Renderer evaluates a region of the complex plane into a width x height raster.
type Renderer interface {
	Render(r Region, width, height int) (*Raster, error)
}

// Presenter shows a finished raster. The raster is only valid for the
// duration of the call.
type Presenter interface {
	Present(r *Raster) error
}

// EventSource delivers queued input events without blocking.
// ok is false once the queue is empty for this tick.
type EventSource interface {
	PollEvent() (ev Event, ok bool)
}
