package report

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/davetashner/eventcheck/internal/schema"
)

// Shared color printers for the console report.
var (
	colorRed   = color.New(color.FgRed)
	colorGreen = color.New(color.FgGreen)
	colorBold  = color.New(color.Bold)
)

// colorStatus colors a schema status: PASSED green, FAILED red.
func colorStatus(s schema.Status) string {
	switch s {
	case schema.Passed:
		return colorGreen.Sprint(string(s))
	case schema.Failed:
		return colorRed.Sprint(string(s))
	default:
		return string(s)
	}
}

// colorFailures colors a failure count: 0 is green, >0 is red.
func colorFailures(n int) string {
	s := fmt.Sprintf("%d", n)
	if n == 0 {
		return colorGreen.Sprint(s)
	}
	return colorRed.Sprint(s)
}

// colorInvalid highlights an offending cell value.
func colorInvalid(val string) string {
	return colorRed.Sprint(val)
}

// sectionTitle renders a bold section title.
func sectionTitle(title string) string {
	return colorBold.Sprint(title)
}
