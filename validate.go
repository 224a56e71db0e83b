package drivepath

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Argument validation runs before any backend round-trip so that a malformed
// call never touches the Drive API.

func validatePathArgs(itemID string, maxPaths int) error {
	err := validation.Errors{
		"itemId":   validation.Validate(itemID, validation.Required),
		"maxPaths": validation.Validate(maxPaths, validation.Required, validation.Min(1)),
	}.Filter()
	if err != nil {
		return newInvalidArgumentError("bad path resolution arguments", err)
	}
	return nil
}

func validateNameArgs(name string, maxMatches int) error {
	err := validation.Errors{
		"name":       validation.Validate(name, validation.Required),
		"maxMatches": validation.Validate(maxMatches, validation.Required, validation.Min(1)),
	}.Filter()
	if err != nil {
		return newInvalidArgumentError("bad name resolution arguments", err)
	}
	return nil
}
