package repositories

import "errors"

type ErrNotFound struct {
	GameID string
}

func (e *ErrNotFound) Error() string {
	return "summary not found: " + e.GameID
}

func IsNotFound(err error) bool {
	var notFound *ErrNotFound
	return errors.As(err, &notFound)
}
