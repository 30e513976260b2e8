package display

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/gdamore/tcell/v2"
)

// keyScreen queues a key press as soon as it is initialized and records the cells on screen when polled.
type keyScreen struct {
	tcell.SimulationScreen

	cells []tcell.SimCell
	width int
	polls int
}

func (s *keyScreen) Init() error {
	err := s.SimulationScreen.Init()
	if err != nil {
		return err
	}
	s.SimulationScreen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	return nil
}

func (s *keyScreen) PollEvent() tcell.Event {
	s.cells, s.width, _ = s.SimulationScreen.GetContents()
	s.polls++
	return s.SimulationScreen.PollEvent()
}

func testLogger() bslogger.Logger {
	return bslogger.NewLogger("Display", bslogger.Minimal, nil)
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 4, G: 5, B: 6, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 7, G: 8, B: 9, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 10, G: 11, B: 12, A: 255})
	img.SetRGBA(0, 2, color.RGBA{R: 13, G: 14, B: 15, A: 255})
	img.SetRGBA(1, 2, color.RGBA{R: 16, G: 17, B: 18, A: 255})
	return img
}

func TestTerminal_ShowReturnsOnKey(t *testing.T) {
	screen := &keyScreen{SimulationScreen: tcell.NewSimulationScreen("")}
	terminal := NewTerminalWithScreen(testLogger(), func() (tcell.Screen, error) {
		return screen, nil
	})

	err := terminal.Show(testImage())
	if err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if screen.polls == 0 {
		t.Fatal("Show() returned without waiting for an event")
	}

	// 2x3 image: two cells wide, two cells tall
	for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		cell := screen.cells[p.Y*screen.width+p.X]
		if len(cell.Runes) == 0 || cell.Runes[0] != upperHalfBlock {
			t.Errorf("cell %v runes = %q, want %q", p, cell.Runes, upperHalfBlock)
		}
	}
	cell := screen.cells[2]
	if len(cell.Runes) > 0 && cell.Runes[0] == upperHalfBlock {
		t.Errorf("cell (2, 0) was painted outside the image")
	}
}

func TestTerminal_ScreenFailure(t *testing.T) {
	want := errors.New("no terminal")
	terminal := NewTerminalWithScreen(testLogger(), func() (tcell.Screen, error) {
		return nil, want
	})

	err := terminal.Show(testImage())
	if !errors.Is(err, want) {
		t.Fatalf("Show() error = %v, want %v", err, want)
	}
}

func TestCellStyle(t *testing.T) {
	img := testImage()
	tests := []struct {
		name       string
		x, y       int
		foreground tcell.Color
		background tcell.Color
	}{
		{"Top left", 0, 0, tcell.NewRGBColor(1, 2, 3), tcell.NewRGBColor(7, 8, 9)},
		{"Top right", 1, 0, tcell.NewRGBColor(4, 5, 6), tcell.NewRGBColor(10, 11, 12)},
		{"Odd last row", 0, 1, tcell.NewRGBColor(13, 14, 15), tcell.ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg, bg, _ := cellStyle(img, tt.x, tt.y).Decompose()
			if fg != tt.foreground {
				t.Errorf("foreground = %v, want %v", fg, tt.foreground)
			}
			if bg != tt.background {
				t.Errorf("background = %v, want %v", bg, tt.background)
			}
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name                string
		width, height       int
		maxWidth, maxHeight int
		wantW, wantH        int
	}{
		{"Fits", 4, 4, 80, 50, 4, 4},
		{"Exact", 80, 50, 80, 50, 80, 50},
		{"Too wide", 200, 200, 80, 500, 80, 80},
		{"Too tall", 200, 200, 500, 50, 50, 50},
		{"Both", 300, 300, 80, 48, 48, 48},
		{"No room", 3, 3, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.width, tt.height))
			got := Fit(img, tt.maxWidth, tt.maxHeight).Bounds()
			if got.Dx() != tt.wantW || got.Dy() != tt.wantH {
				t.Errorf("Fit() = %dx%d, want %dx%d", got.Dx(), got.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFit_Samples(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	red := color.RGBA{R: 255, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, red)
		}
	}

	fitted := Fit(img, 2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := fitted.RGBAAt(x, y); got != red {
				t.Errorf("RGBAAt(%d, %d) = %v, want %v", x, y, got, red)
			}
		}
	}
}

func TestNew(t *testing.T) {
	if _, ok := New(true, testLogger()).(Headless); !ok {
		t.Error("New(true) is not headless")
	}
	if _, ok := New(false, testLogger()).(*Terminal); !ok {
		t.Error("New(false) is not a terminal")
	}
	if err := (Headless{}).Show(testImage()); err != nil {
		t.Errorf("Headless.Show() error = %v", err)
	}
}
