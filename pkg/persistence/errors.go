package persistence

import "fmt"

// SaveIOError is returned when the repository could not write the pet.
type SaveIOError struct {
	Err error
}

func (e *SaveIOError) Error() string {
	return fmt.Sprintf("failed to save pet: %v", e.Err)
}

func (e *SaveIOError) Unwrap() error {
	return e.Err
}

// LoadParseError describes a stored pet that could not be used.
// It is logged and never returned from Load, which falls back to a new pet.
type LoadParseError struct {
	Err error
}

func (e *LoadParseError) Error() string {
	return fmt.Sprintf("failed to parse saved pet: %v", e.Err)
}

func (e *LoadParseError) Unwrap() error {
	return e.Err
}
