package canvas

import (
	"errors"
	"fmt"

	"AutomataVisualizer/imagedata"
)

var (
	ErrOutOfBounds = errors.New("pixel out of bounds")
	ErrTooLarge    = errors.New("canvas too large")
)

type OutOfBoundsError struct {
	Pixel imagedata.Pixel
	Size  uint
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("line %d: %s - position (%d, %d) outside %dx%d canvas",
		e.Pixel.Line, ErrOutOfBounds, e.Pixel.Row, e.Pixel.Column, e.Size, e.Size)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
