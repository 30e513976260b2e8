package display

import (
	"image"

	"github.com/BrugadaSyndrome/bslogger"
)

// Display presents a rendered image. Show returns once the image has been dismissed.
type Display interface {
	Show(img image.Image) error
}

// New returns the terminal display, or a display that returns immediately when headless is set.
func New(headless bool, logger bslogger.Logger) Display {
	if headless {
		return Headless{}
	}
	return NewTerminal(logger)
}

// Headless skips presentation entirely.
type Headless struct{}

func (Headless) Show(image.Image) error {
	return nil
}
