package main

import (
	"flag"
	"os"

	"AutomataVisualizer/misc"
	"AutomataVisualizer/visualizer"
)

func main() {
	logger := misc.NewLogger("Main", "normal", nil)

	args, err := parseArguments(flag.CommandLine, os.Args[1:])
	misc.CheckError(err, logger, misc.Fatal)
	logger = misc.NewLogger("Main", args.verbosity, nil)

	settings, err := loadSettings(args)
	misc.CheckError(err, logger, misc.Fatal)
	logArguments(logger, settings)

	v, err := visualizer.NewVisualizer(settings, args.verbosity)
	misc.CheckError(err, logger, misc.Fatal)

	// Run logs its own failure so it also reaches the log file
	err = v.Run()
	if err != nil {
		v.Close()
		os.Exit(1)
	}
	misc.CheckError(v.Close(), logger, misc.Warning)
}
