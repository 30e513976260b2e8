package misc

import (
	"os"
	"strings"

	"github.com/BrugadaSyndrome/bslogger"
)

var Verbosities = []string{"minimal", "normal", "all"}

// NewLogger maps a verbosity name onto a bslogger verbosity. Unknown names fall back to normal.
func NewLogger(name string, verbosity string, logFile *os.File) bslogger.Logger {
	switch strings.ToLower(verbosity) {
	case "minimal":
		return bslogger.NewLogger(name, bslogger.Minimal, logFile)
	case "all":
		return bslogger.NewLogger(name, bslogger.All, logFile)
	}
	return bslogger.NewLogger(name, bslogger.Normal, logFile)
}

func IsVerbosity(verbosity string) bool {
	for _, v := range Verbosities {
		if strings.ToLower(verbosity) == v {
			return true
		}
	}
	return false
}
