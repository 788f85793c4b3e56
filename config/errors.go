package config

import "errors"

// ErrUnknownAction is returned by Load when an allowed_actions entry in the
// config file does not match any catalog.Move's canonical name.
var ErrUnknownAction = errors.New("config: unknown action name")
