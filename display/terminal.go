package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
)

// Each terminal cell shows two image rows: the top one as foreground, the bottom one as background.
const upperHalfBlock = '▀'

type ScreenFactory func() (tcell.Screen, error)

// Terminal draws images into the terminal and waits for a key press.
type Terminal struct {
	logger    bslogger.Logger
	newScreen ScreenFactory
}

func NewTerminal(logger bslogger.Logger) *Terminal {
	return NewTerminalWithScreen(logger, tcell.NewScreen)
}

func NewTerminalWithScreen(logger bslogger.Logger, newScreen ScreenFactory) *Terminal {
	return &Terminal{
		logger:    logger,
		newScreen: newScreen,
	}
}

func (t *Terminal) Show(img image.Image) error {
	screen, err := t.newScreen()
	if err != nil {
		return fmt.Errorf("unable to create terminal screen - %w", err)
	}
	bounds := img.Bounds()
	t.logger.Infof("Displaying %dx%d image, press any key to close", bounds.Dx(), bounds.Dy())

	err = screen.Init()
	if err != nil {
		return fmt.Errorf("unable to initialize terminal screen - %w", err)
	}
	defer screen.Fini()

	draw(screen, img)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, img)
		case *tcell.EventKey:
			return nil
		case nil:
			// screen was finalized underneath us
			return nil
		}
	}
}

func draw(screen tcell.Screen, img image.Image) {
	screen.Clear()
	width, height := screen.Size()
	fitted := Fit(img, width, height*2)
	bounds := fitted.Bounds()
	for y := 0; y*2 < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			screen.SetContent(x, y, upperHalfBlock, nil, cellStyle(fitted, x, y))
		}
	}
	screen.Show()
}

// cellStyle colors terminal cell (x, y) from image rows 2y and 2y+1. A missing bottom row keeps the default background.
func cellStyle(img *image.RGBA, x int, y int) tcell.Style {
	bounds := img.Bounds()
	style := tcell.StyleDefault.Foreground(toColor(img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+2*y)))
	if 2*y+1 < bounds.Dy() {
		style = style.Background(toColor(img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+2*y+1)))
	}
	return style
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Fit scales img down with nearest neighbour sampling until it fits in maxWidth x maxHeight, keeping its aspect ratio.
// Images that already fit are copied at their original size.
func Fit(img image.Image, maxWidth int, maxHeight int) *image.RGBA {
	src := img.Bounds()
	width, height := src.Dx(), src.Dy()
	if width > maxWidth {
		height = height * maxWidth / width
		width = maxWidth
	}
	if height > maxHeight {
		width = width * maxHeight / height
		height = maxHeight
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	return dst
}
