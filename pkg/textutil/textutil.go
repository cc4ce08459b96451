// Package textutil contains small text-formatting helpers for help output.
package textutil

import "strings"

// Wrap breaks text into lines of at most width characters, splitting on
// whitespace. A word longer than width gets a line of its own. A non-positive
// width disables wrapping and returns the text as a single line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
