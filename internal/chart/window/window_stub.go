//go:build !cgo && !windows && !darwin

package window

import (
	"errors"

	"github.com/dgallion1/termviz/internal/chart"
)

// Available always reports false: window mode requires cgo on this platform.
func (Display) Available() bool {
	return false
}

func (Display) Show(chart.Chart) error {
	return errors.New("window mode requires cgo (build with CGO_ENABLED=1)")
}
