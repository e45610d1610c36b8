package replay

import "errors"

var (
	// ErrInvalidConfig is wrapped by every error returned from NewGame.
	ErrInvalidConfig = errors.New("invalid replay configuration")
	// ErrNoActionSources is returned when a game has no actors.
	ErrNoActionSources = errors.New("no action source specified")
)

type configError struct {
	err error
}

func (e *configError) Error() string {
	return ErrInvalidConfig.Error() + ": " + e.err.Error()
}

func (e *configError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.err}
}

func invalidConfig(err error) error {
	return &configError{err: err}
}
