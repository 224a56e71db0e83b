package drivepath

// This file is part of the package tests (package drivepath) and provides
// helpers that allow tests in the external package to access internal
// package constructs. Helpers are exported so `drivepath_test` can call them
// via the module import path.

// NewInvalidArgumentError constructs an invalid-argument-wrapped error using the package-internal constructor.
func NewInvalidArgumentError(msg string, cause error) error {
	return newInvalidArgumentError(msg, cause)
}

// NewDriveError constructs a drive-wrapped error using the package-internal constructor.
func NewDriveError(msg string, cause error) error {
	return newDriveError(msg, cause)
}
