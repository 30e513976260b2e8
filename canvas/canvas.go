package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"AutomataVisualizer/imagedata"
	"AutomataVisualizer/misc"
)

const DefaultOutputFile = "fig.png"

// Canvas is a square image addressed by (row, column). Rows run along the image Y axis.
type Canvas struct {
	image *image.RGBA
	size  uint
}

// NewCanvas allocates a size x size canvas with every cell set to white.
// size must not exceed imagedata.MaxCanvasSize; Render checks this for callers.
func NewCanvas(size uint) *Canvas {
	c := &Canvas{
		image: image.NewRGBA(image.Rect(0, 0, int(size), int(size))),
		size:  size,
	}
	c.Fill(imagedata.Color{C0: 255, C1: 255, C2: 255})
	return c
}

// Render builds a canvas of the given size and stamps pixels onto it in order.
func Render(size uint, pixels []imagedata.Pixel) (*Canvas, error) {
	if size > imagedata.MaxCanvasSize {
		return nil, fmt.Errorf("%w: %d exceeds the maximum side of %d", ErrTooLarge, size, imagedata.MaxCanvasSize)
	}
	c := NewCanvas(size)
	err := c.Stamp(pixels)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Fill sets every cell to clr, reversing its channels like any other write.
func (c *Canvas) Fill(clr imagedata.Color) {
	rgba := misc.ReverseChannels(clr.C0, clr.C1, clr.C2)
	for row := 0; row < int(c.size); row++ {
		for column := 0; column < int(c.size); column++ {
			c.image.SetRGBA(column, row, rgba)
		}
	}
}

// Stamp writes each pixel in order, so later pixels at the same position win.
// The first pixel outside the canvas stops stamping and is returned as an *OutOfBoundsError.
func (c *Canvas) Stamp(pixels []imagedata.Pixel) error {
	for _, p := range pixels {
		if !c.Contains(p.Row, p.Column) {
			return &OutOfBoundsError{Pixel: p, Size: c.size}
		}
		c.image.SetRGBA(p.Column, p.Row, misc.ReverseChannels(p.Color.C0, p.Color.C1, p.Color.C2))
	}
	return nil
}

func (c *Canvas) Contains(row int, column int) bool {
	return row >= 0 && column >= 0 && row < int(c.size) && column < int(c.size)
}

// At returns the stored color of a cell. Cells outside the canvas are transparent black.
func (c *Canvas) At(row int, column int) color.RGBA {
	return c.image.RGBAAt(column, row)
}

func (c *Canvas) Size() uint {
	return c.size
}

func (c *Canvas) Image() image.Image {
	return c.image
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.image)
}

// Save encodes the canvas as PNG and moves it into place at fileName in one step.
func (c *Canvas) Save(fileName string) error {
	var buffer bytes.Buffer
	err := c.EncodePNG(&buffer)
	if err != nil {
		return fmt.Errorf("%w: unable to encode %s - %s", misc.ErrWriteFailure, fileName, err)
	}
	_, err = misc.WriteFileAtomic(fileName, buffer.Bytes())
	return err
}
