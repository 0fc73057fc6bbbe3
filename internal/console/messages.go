package console

import (
	"errors"

	"github.com/cory-johannsen/initracker/internal/game/initiative"
	"github.com/cory-johannsen/initracker/internal/records"
)

// Message returns the one-line text shown to the user for err.
func Message(err error) string {
	switch {
	case errors.Is(err, initiative.ErrEmptyRoster):
		return EmptyRosterText
	case errors.Is(err, records.ErrUnreadable):
		return "Provided path is not valid"
	case errors.Is(err, records.ErrMalformed):
		return "The provided file is not JSON or is not in the expected format."
	case errors.Is(err, records.ErrExists):
		return "Path is invalid or file already exists"
	case errors.Is(err, records.ErrWrite):
		return "Could not save to file"
	default:
		return err.Error()
	}
}
