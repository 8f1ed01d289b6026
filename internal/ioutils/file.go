package ioutils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Exists reports whether a file is present at path.
//
// It is a pure existence check with no side effects; permission errors
// and other stat failures are treated as "not present".
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644 and any missing parent directories
// are created first. If the file already exists, it is truncated before
// writing.
//
// Example:
//
//	err := WriteFile("config.json", data)
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// EmergencyExit prints the message, waits for the user to press ENTER and
// terminates the process with a non-zero status. It never returns.
//
// The blocking read keeps the message on screen when the program was
// started by double-click and the console window would otherwise close
// before anyone could read it.
func EmergencyExit(message string) {
	fmt.Println(message)
	fmt.Println("Press ENTER to close the application...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	os.Exit(255)
}
