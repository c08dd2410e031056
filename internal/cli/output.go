package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warnMark = color.New(color.FgYellow).Sprint("!")
	bold     = color.New(color.Bold).SprintFunc()
)

func printOK(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", okMark, fmt.Sprintf(format, a...))
}

func printFail(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", failMark, fmt.Sprintf(format, a...))
}

func printWarn(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", warnMark, fmt.Sprintf(format, a...))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
}
