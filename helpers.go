package main

import (
	"flag"
	"fmt"
	"strings"

	"AutomataVisualizer/misc"
	"AutomataVisualizer/visualizer"

	"github.com/BrugadaSyndrome/bslogger"
)

type arguments struct {
	headless     bool
	inputFile    string
	logFile      string
	outputFile   string
	settingsFile string
	verbosity    string
	set          map[string]bool
}

func parseArguments(flags *flag.FlagSet, args []string) (arguments, error) {
	var a arguments
	flags.BoolVar(&a.headless, "headless", false, "Skip displaying the image and only write the output file")
	flags.StringVar(&a.inputFile, "inputFile", "", "Image data file to read (default automata-image-data.txt)")
	flags.StringVar(&a.logFile, "logFile", "", "File to record the run in")
	flags.StringVar(&a.outputFile, "outputFile", "", "PNG file to write (default fig.png)")
	flags.StringVar(&a.settingsFile, "settingsFile", "", "Json file with visualizer settings")
	flags.StringVar(&a.verbosity, "verbosity", "normal", fmt.Sprintf("Logging verbosity, one of %s", strings.Join(misc.Verbosities, ", ")))

	err := flags.Parse(args)
	if err != nil {
		return a, err
	}
	if !misc.IsVerbosity(a.verbosity) {
		return a, fmt.Errorf("unknown verbosity %q", a.verbosity)
	}

	a.set = make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		a.set[f.Name] = true
	})
	return a, nil
}

// loadSettings reads the settings file, lets flags that were set on the command line override it, and verifies the result.
func loadSettings(a arguments) (visualizer.Settings, error) {
	settings, err := visualizer.NewSettings(a.settingsFile, a.verbosity)
	if err != nil {
		return settings, err
	}

	if a.set["headless"] {
		settings.Headless = a.headless
	}
	if a.set["inputFile"] {
		settings.InputFile = a.inputFile
	}
	if a.set["logFile"] {
		settings.LogFile = a.logFile
	}
	if a.set["outputFile"] {
		settings.OutputFile = a.outputFile
	}

	err = settings.Verify()
	return settings, err
}

func logArguments(logger bslogger.Logger, settings visualizer.Settings) {
	logger.Debug("Visualizer got arguments:")
	logger.Debugf("Headless: %t", settings.Headless)
	logger.Debugf("Input File: %s", settings.InputFile)
	logger.Debugf("Log File: %s", settings.LogFile)
	logger.Debugf("Output File: %s", settings.OutputFile)
}
