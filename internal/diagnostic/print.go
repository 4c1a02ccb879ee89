package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold).SprintFunc()
	warningLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
	infoLabel    = color.New(color.FgCyan).SprintFunc()
)

// Print renders all diagnostics to w, ordered by rising severity.
func (d *Diagnostics) Print(w io.Writer) {
	for _, diag := range d.Infos {
		fmt.Fprintf(w, "%s %s\n", infoLabel("info:"), diag)
	}

	for _, diag := range d.Warnings {
		fmt.Fprintf(w, "%s %s\n", warningLabel("warning:"), diag)
	}

	for _, diag := range d.Errors {
		fmt.Fprintf(w, "%s %s\n", errorLabel("error:"), diag)
	}
}
