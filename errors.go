package mandel

import "errors"

var (
	// ErrInvalidConfig reports a configuration value outside its domain.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInitialization reports that the palette or another startup
	// resource could not be built.
	ErrInitialization = errors.New("initialization failed")

	// ErrRender reports that a frame could not be built or presented.
	ErrRender = errors.New("render failed")
)
