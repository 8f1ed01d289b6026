// Package ioutils provides file system helpers for e6dl.
//
// This package contains functions for:
//   - File existence checks
//   - File writing with parent directory creation
//   - Terminating the process after an unrecoverable startup error
//
// # File Operations
//
//	// Check whether a settings file is on disk
//	if ioutils.Exists("config.json") { ... }
//
//	// Write data, creating parent directories as needed
//	err := ioutils.WriteFile("config.json", data)
//
// # Emergency Exit
//
// EmergencyExit is meant for unrecoverable startup errors. It prints the
// message, blocks until the user presses ENTER and exits the process:
//
//	ioutils.EmergencyExit("Could not load config.json: " + err.Error())
package ioutils
