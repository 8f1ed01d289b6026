package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/e6dl/e6dl/internal/ioutils"
	"github.com/e6dl/e6dl/internal/log"
)

// LoginName is the well-known name of the credentials file.
const LoginName = "login.json"

// Login holds the credential pair used to fetch user-specific data,
// currently only the blacklist and favorites.
type Login struct {
	// Username of the account.
	Username string `json:"Username"`

	// APIKey is the account's API hash. Treat it like a password.
	APIKey string `json:"APIKey"`

	// DownloadFavorites controls whether the account's favorites are
	// downloaded.
	DownloadFavorites bool `json:"DownloadFavorites"`

	// IgnoreBlacklistOnFavorites controls whether the blacklist is
	// skipped when downloading favorites.
	IgnoreBlacklistOnFavorites bool `json:"IgnoreBlacklistOnFavorites"`
}

// DefaultLogin returns the Login used when no credentials are known.
func DefaultLogin() Login {
	return Login{
		DownloadFavorites:          true,
		IgnoreBlacklistOnFavorites: true,
	}
}

// IsEmpty reports whether the credential pair is unusable, i.e. either
// the username or the API key is blank. Callers use this to decide
// whether the blacklist and favorites features are available.
func (l *Login) IsEmpty() bool {
	return l.Username == "" || l.APIKey == ""
}

// loginFields are the JSON keys every login file is expected to carry.
var loginFields = [...]string{
	"Username",
	"APIKey",
	"DownloadFavorites",
	"IgnoreBlacklistOnFavorites",
}

// LoginStore owns the process-wide Login instance.
//
// Unlike the config Store, login problems never abort startup.
// Credentials only gate convenience features, so a missing or broken
// login.json degrades to defaults with a warning instead of failing.
type LoginStore struct {
	path string
	slot slot[Login]
}

// NewLoginStore returns a LoginStore bound to login.json in the working
// directory.
func NewLoginStore() *LoginStore { return NewLoginStoreAt(LoginName) }

// NewLoginStoreAt returns a LoginStore bound to an explicit file path.
func NewLoginStoreAt(path string) *LoginStore { return &LoginStore{path: path} }

// load reads the login file, creating it with defaults when absent.
//
// A file that parses but is textually missing one of the expected keys
// is rewritten with the default-filled value, so a login file from an
// older version heals itself on the next run.
func (s *LoginStore) load() (Login, error) {
	if !ioutils.Exists(s.path) {
		login := DefaultLogin()
		if err := s.Create(login); err != nil {
			return Login{}, err
		}
		return login, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Login{}, fmt.Errorf("read login file %s: %w", s.path, err)
	}

	login := DefaultLogin()
	if err := json.Unmarshal(data, &login); err != nil {
		return Login{}, fmt.Errorf("parse login file %s: %w", s.path, err)
	}

	content := string(data)
	for _, field := range loginFields {
		if !strings.Contains(content, field) {
			log.Warnf("%s was missing some options and has been updated with default values", s.path)
			if err := s.saveToFile(login); err != nil {
				return Login{}, err
			}
			break
		}
	}

	return login, nil
}

// Initialize loads the login file and stores the result, substituting a
// full default Login when loading fails. Load failures are logged but
// never propagated; only a second Initialize call returns an error.
func (s *LoginStore) Initialize() error {
	login, err := s.load()
	if err != nil {
		log.Errorf("unable to load %s: %v", s.path, err)
		log.Warnf("the program will use default values, but it is highly recommended to check your %s file to ensure that everything is correct", s.path)
		login = DefaultLogin()
	}
	return s.slot.set(login)
}

// Get returns the loaded Login.
//
// Calling Get before Initialize is a programming error and panics, same
// as Store.Get.
func (s *LoginStore) Get() *Login {
	return s.slot.get("login has not been initialized")
}

// saveToFile persists the login as pretty-printed JSON.
func (s *LoginStore) saveToFile(login Login) error {
	data, err := json.MarshalIndent(login, "", "  ")
	if err != nil {
		return fmt.Errorf("encode login file %s: %w", s.path, err)
	}
	if err := ioutils.WriteFile(s.path, data); err != nil {
		return fmt.Errorf("write login file %s: %w", s.path, err)
	}
	return nil
}

// Create writes a fresh login file and tells the user how to fill it in.
func (s *LoginStore) Create(login Login) error {
	if err := s.saveToFile(login); err != nil {
		return err
	}

	log.Infof("the login file was created")
	log.Infof("if you wish to use your blacklist, be sure to give your username and API hash key")
	log.Infof("do not give out your API hash unless you trust this software completely, always treat your API hash like your own password")
	return nil
}
