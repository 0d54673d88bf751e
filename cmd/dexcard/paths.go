package main

import "path/filepath"

// logFilePath returns the log destination inside the state directory.
func logFilePath(stateDir string) string {
	return filepath.Join(stateDir, "dexcard.log")
}
