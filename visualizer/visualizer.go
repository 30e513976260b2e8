package visualizer

import (
	"fmt"
	"os"

	"AutomataVisualizer/canvas"
	"AutomataVisualizer/display"
	"AutomataVisualizer/imagedata"
	"AutomataVisualizer/misc"

	"github.com/BrugadaSyndrome/bslogger"
)

// Visualizer runs parse, render, save and display once, in that order.
type Visualizer struct {
	display  display.Display
	logFile  *os.File
	logger   bslogger.Logger
	settings Settings
}

func NewVisualizer(settings Settings, verbosity string) (Visualizer, error) {
	v := Visualizer{
		settings: settings,
	}

	// Create a log file to record the run
	if settings.LogFile != "" {
		logFile, err := os.Create(settings.LogFile)
		if err != nil {
			return v, fmt.Errorf("unable to create log file %s - %w", settings.LogFile, err)
		}
		v.logFile = logFile
	}
	v.logger = misc.NewLogger("Visualizer", verbosity, v.logFile)
	v.display = display.New(settings.Headless, misc.NewLogger("Display", verbosity, v.logFile))

	return v, nil
}

// Run renders the input file once. A failure is logged, including to the log file when one is set, and returned.
func (v *Visualizer) Run() error {
	err := v.run()
	misc.CheckError(err, v.logger, misc.Error)
	return err
}

func (v *Visualizer) run() error {
	v.logger.Infof("Reading image data from %s", v.settings.InputFile)
	size, pixels, err := imagedata.Parse(v.settings.InputFile)
	if err != nil {
		return err
	}
	v.logger.Infof("Parsed %dx%d canvas with %d pixels", size, size, len(pixels))
	for i := range pixels {
		v.logger.Debug(pixels[i].String())
	}

	image, err := canvas.Render(size, pixels)
	if err != nil {
		return fmt.Errorf("%s: %w", v.settings.InputFile, err)
	}

	// Save before displaying so the file never waits on the viewer
	err = image.Save(v.settings.OutputFile)
	if err != nil {
		return err
	}
	v.logger.Infof("Saved image to %s", v.settings.OutputFile)

	if v.settings.Headless {
		v.logger.Debug("Headless mode, skipping display")
		return nil
	}
	return v.display.Show(image.Image())
}

func (v *Visualizer) Close() error {
	if v.logFile == nil {
		return nil
	}
	err := v.logFile.Close()
	v.logFile = nil
	return err
}
