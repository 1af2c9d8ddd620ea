package types

import "errors"

// Command errors. Their messages are the text written after "ERROR: " in
// the transcript, so they must not be reworded.
//
//nolint:staticcheck // transcript text is capitalized and punctuated.
var (
	ErrNameExists   = errors.New("This name already exists!")
	ErrNameNotFound = errors.New("This name does not exist!")
	ErrListEmpty    = errors.New("This list is empty!")
)

// Strict-mode command errors.
//
//nolint:staticcheck // transcript text is capitalized and punctuated.
var (
	ErrInvalidValue      = errors.New("Invalid value!")
	ErrUnknownKind       = errors.New("Unknown list type!")
	ErrUnknownVerb       = errors.New("Unknown command!")
	ErrUnknownDiscipline = errors.New("Unknown discipline!")
)

// Journal errors.
var (
	ErrJournalClosed = errors.New("journal is closed")
	ErrRunActive     = errors.New("a journal run is already active")
	ErrNoActiveRun   = errors.New("no active journal run")
)
