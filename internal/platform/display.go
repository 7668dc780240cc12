// Package platform binds the overlay to the host desktop: primary display
// geometry and the global pointer.
package platform

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// ErrNoDisplay is returned when no active display can be found.
var ErrNoDisplay = errors.New("no active display")

// PrimaryBounds returns the bounds of the primary display in desktop
// coordinates. Display 0 is the primary one.
func PrimaryBounds() (image.Rectangle, error) {
	if screenshot.NumActiveDisplays() < 1 {
		return image.Rectangle{}, ErrNoDisplay
	}
	b := screenshot.GetDisplayBounds(0)
	if b.Empty() {
		return image.Rectangle{}, fmt.Errorf("primary display has empty bounds %v: %w", b, ErrNoDisplay)
	}
	return b, nil
}
