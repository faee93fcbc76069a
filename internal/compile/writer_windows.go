//go:build windows

package compile

import "os"

// renameio has no atomic replace on windows
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
