package ui

import "fmt"

// KeyHelp describes the interactive controls.
var KeyHelp = []string{
	"space  pause / resume",
	"up     slower (hold)",
	"down   faster (hold)",
	"n      step while paused",
	"r      clear",
	"g      gridlines",
	"h      hide this panel",
	"q      quit",
}

// Summary reports the live cell count.
func Summary(population int) string {
	return fmt.Sprintf("Alive: %d", population)
}

// Lines returns the HUD text: the status line, a population summary and the
// key help.
func Lines(status string, population int, grid bool) []string {
	gridState := "off"
	if grid {
		gridState = "on"
	}
	lines := make([]string, 0, len(KeyHelp)+3)
	lines = append(lines, status, Summary(population)+" | Grid: "+gridState, "")
	return append(lines, KeyHelp...)
}
