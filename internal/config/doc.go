// Package config manages the two persisted settings files of e6dl:
// config.json (general settings) and login.json (credentials).
//
// Both files are pretty-printed JSON so they stay hand-editable. Each is
// owned by a store that is initialized exactly once during startup and
// read-only afterwards.
//
// # Startup Sequence
//
//	store := config.NewStore()
//	logins := config.NewLoginStore()
//
//	if !store.Exists() {
//	    // react: offer to create the file, or abort
//	}
//	if err := store.Initialize(); err != nil {
//	    // config problems are fatal for startup
//	}
//	if err := logins.Initialize(); err != nil {
//	    // only double-initialization reaches here
//	}
//
//	cfg := store.Get()
//	login := logins.Get()
//
// # Error Policy
//
// The two stores differ:
//   - Store (config.json): strict. Missing file, malformed JSON and an
//     invalid naming convention all fail Initialize. Nothing is
//     self-healed, because silently wrong settings could corrupt output.
//   - LoginStore (login.json): lenient. A missing file is created with
//     defaults, a file missing keys is rewritten with the gaps filled
//     in, and any load error is replaced by defaults with a warning.
//
// # Lifecycle
//
// Get on either store panics until Initialize has succeeded; calling
// Initialize twice returns ErrAlreadyInitialized and keeps the first
// value. Consumers must only read after the startup sequence completes.
package config
