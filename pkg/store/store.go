// Package store defines the persistence of named graph definitions.
// A definition is the raw expression text a graph is generated from,
// the graph itself is never stored.
package store

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrGraphNotFound = errors.New("graph not found")
	ErrInvalidName   = errors.New("invalid graph name")
)

type Store interface {
	// Store writes the expression for the given name,
	// replacing any former definition.
	Store(name, expression string) error
	// Load returns the stored expression. If there is no
	// definition for the name, false is returned without error.
	Load(name string) (string, bool, error)
	// List returns the sorted names of all definitions.
	List() ([]string, error)
	// Delete removes a definition and reports whether it existed.
	Delete(name string) (bool, error)
}

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_.-]*$`)

func CheckName(name string) bool {
	return namePattern.MatchString(name)
}

func ValidateName(name string) error {
	if !CheckName(name) {
		return fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	return nil
}

// NotFound returns the error for a missing graph definition.
func NotFound(name string) error {
	return fmt.Errorf("%w: no graph found with name %q", ErrGraphNotFound, name)
}
