package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/e6dl/e6dl/internal/config"
	"github.com/e6dl/e6dl/internal/ioutils"
	"github.com/e6dl/e6dl/internal/log"
	"github.com/e6dl/e6dl/internal/tui"
)

func main() {
	var (
		configFlag   = flag.String("config", config.ConfigName, "Path to the config file")
		loginFlag    = flag.String("login", config.LoginName, "Path to the login file")
		defaultsFlag = flag.Bool("defaults", false, "Create a missing config file with defaults instead of asking")
		logFlag      = flag.String("log", "", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	log.Init(*logFlag)

	store := config.NewStoreAt(*configFlag)
	logins := config.NewLoginStoreAt(*loginFlag)

	// The config file is required. Reacting to a missing one is the
	// caller's job, not the store's: a silently defaulted download
	// directory or naming convention could corrupt output.
	if !store.Exists() {
		if err := createConfig(store, logins, *defaultsFlag); err != nil {
			ioutils.EmergencyExit(fmt.Sprintf("Could not create %s: %v", *configFlag, err))
		}
	}

	if err := store.Initialize(); err != nil {
		ioutils.EmergencyExit(fmt.Sprintf("Could not load settings: %v", err))
	}

	// Login is optional; Initialize falls back to defaults on its own
	// and only fails on misuse.
	if err := logins.Initialize(); err != nil {
		ioutils.EmergencyExit(fmt.Sprintf("Could not initialize login: %v", err))
	}

	cfg := store.Get()
	login := logins.Get()

	fmt.Println("Settings loaded.")
	fmt.Printf("  Download directory: %s\n", cfg.DownloadDirectory)
	fmt.Printf("  Naming convention:  %s\n", cfg.NamingConvention)
	if login.IsEmpty() {
		fmt.Println("  Login:              none (blacklist and favorites unavailable)")
	} else {
		fmt.Printf("  Login:              %s\n", login.Username)
	}
}

// createConfig reacts to a missing config file: with plain defaults when
// -defaults is given, interactively when stdin is a terminal, and by
// bailing out otherwise.
func createConfig(store *config.Store, logins *config.LoginStore, useDefaults bool) error {
	if useDefaults {
		return store.Create()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		ioutils.EmergencyExit(fmt.Sprintf(
			"No %s was found. Re-run with -defaults to create one, then edit it to your liking.",
			config.ConfigName))
	}

	final, err := tea.NewProgram(tui.NewModel()).Run()
	if err != nil {
		return err
	}

	form := final.(tui.Model)
	if form.Aborted() {
		ioutils.EmergencyExit("Setup aborted. A config file is required to continue.")
	}

	if err := store.Save(form.Config()); err != nil {
		return err
	}
	if login, ok := form.Login(); ok {
		return logins.Create(login)
	}
	return nil
}
