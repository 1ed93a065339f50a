package domain

import "errors"

// ErrDefinitionNotFound is returned when a named automaton cannot be found in a loader or store.
var ErrDefinitionNotFound = errors.New("automaton definition not found")

// ErrInvalidDefinition is returned when a definition fails validation or cannot be decoded.
var ErrInvalidDefinition = errors.New("invalid automaton definition")
