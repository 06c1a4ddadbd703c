//go:build !cgo

package window

import (
	"errors"

	mandel "github.com/marben/mandelview"
)

func Run(_ mandel.Config, _ ...mandel.Option) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
