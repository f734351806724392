package internal

import (
	"os"
	"strconv"

	"github.com/fatih/color"
)

var (
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgBlue, color.Bold)
)

// InitColor enables or disables colored output, honoring NO_COLOR over the
// requested setting exactly as the teacher's InitColor does.
func InitColor(enable bool) {
	if noColor, _ := strconv.ParseBool(os.Getenv("NO_COLOR")); noColor {
		color.NoColor = true
		return
	}
	if !color.NoColor {
		color.NoColor = !enable
	}
}

func PrintSuccess(format string, args ...interface{}) {
	Success.Fprintf(os.Stderr, format, args...)
}

func PrintError(format string, args ...interface{}) {
	Error.Fprintf(os.Stderr, format, args...)
}

func PrintWarning(format string, args ...interface{}) {
	Warning.Fprintf(os.Stderr, format, args...)
}

func PrintInfo(format string, args ...interface{}) {
	Info.Fprintf(os.Stderr, format, args...)
}
