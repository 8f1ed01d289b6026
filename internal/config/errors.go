package config

import "errors"

// ErrAlreadyInitialized is returned when Initialize is called on a store
// whose value has already been set. The originally stored value is left
// untouched.
var ErrAlreadyInitialized = errors.New("already initialized")

// ErrInvalidNamingConvention is returned when the fileNamingConvention
// field of config.json is not one of the accepted values.
var ErrInvalidNamingConvention = errors.New("invalid naming convention")
