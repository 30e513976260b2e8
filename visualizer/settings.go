package visualizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"AutomataVisualizer/canvas"
	"AutomataVisualizer/imagedata"
	"AutomataVisualizer/misc"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	Headless   bool
	InputFile  string
	LogFile    string
	OutputFile string
}

// NewSettings loads settings from a json file and verifies them. An empty settingsFile gives the defaults.
// The log file is itself a setting, so the settings logger only writes to the terminal.
func NewSettings(settingsFile string, verbosity string) (Settings, error) {
	s := Settings{
		logger: misc.NewLogger("VisualizerSettings", verbosity, nil),
	}
	if settingsFile != "" {
		fileBytes, err := misc.ReadFile(settingsFile)
		if err != nil {
			return s, err
		}
		err = json.Unmarshal(fileBytes, &s)
		if err != nil {
			return s, fmt.Errorf("unable to decode settings file %s - %w", settingsFile, err)
		}
	}
	err := s.Verify()
	if err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "\nVisualizer settings\n"
	output += fmt.Sprintf("Headless: %t\n", s.Headless)
	output += fmt.Sprintf("Input File: %s\n", s.InputFile)
	output += fmt.Sprintf("Log File: %s\n", s.LogFile)
	output += fmt.Sprintf("Output File: %s\n", s.OutputFile)
	return output
}

func (s *Settings) Verify() error {
	// s.Headless defaults to false already
	if s.InputFile == "" {
		s.InputFile = imagedata.DefaultInputFile
	}
	// s.LogFile is optional
	if s.OutputFile == "" {
		s.OutputFile = canvas.DefaultOutputFile
	}

	if filepath.Clean(s.InputFile) == filepath.Clean(s.OutputFile) {
		return errors.New("input file and output file must differ")
	}
	if s.LogFile != "" && (filepath.Clean(s.LogFile) == filepath.Clean(s.InputFile) || filepath.Clean(s.LogFile) == filepath.Clean(s.OutputFile)) {
		return errors.New("log file must differ from the input and output files")
	}
	return nil
}
