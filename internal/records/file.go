package records

import (
	"errors"
	"fmt"
	"os"
)

// ReadFile reads and decodes the record file at path. The format is chosen by
// FormatFor.
//
// Postcondition: Returns all records or an error wrapping ErrUnreadable or
// ErrMalformed.
func ReadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return Decode(data, FormatFor(path))
}

// WriteFile encodes recs and writes them to a new file at path. An existing
// file is never overwritten. If writing fails after the file was created, the
// partial file is removed.
//
// Postcondition: Returns nil and path holds every record, or an error wrapping
// ErrExists or ErrWrite and path is left as it was.
func WriteFile(path string, recs []Record) error {
	data, err := Encode(recs, FormatFor(path))
	if err != nil {
		return fmt.Errorf("%w: encoding records: %v", ErrWrite, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExists, err)
	}

	_, werr := f.Write(data)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
