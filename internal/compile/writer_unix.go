//go:build !windows

package compile

import "github.com/google/renameio/v2"

// writeFile goes through a temporary file in the same directory, so a
// failed write never leaves a truncated script behind
func writeFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0o644)
}
