package compile

import (
	"fmt"
	"strings"
)

// Render joins lines with newlines and ends the script with one more
func Render(lines []string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}

// WriteScript replaces the file at path with the rendered lines
func WriteScript(path string, lines []string) error {
	if err := writeFile(path, Render(lines)); err != nil {
		return fmt.Errorf("failed to write compile script: %w", err)
	}
	return nil
}
