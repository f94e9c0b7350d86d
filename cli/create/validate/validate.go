// Package validate contains checks for the values a user enters while
// describing a new project.
package validate

import (
	"errors"
	"regexp"
)

var (
	// namePattern accepts ASCII letters and hyphens. A hyphen can't be
	// the first or the last character. Digits are not accepted.
	namePattern = regexp.MustCompile(`^[a-zA-Z](?:[a-zA-Z-]*[a-zA-Z])?$`)

	// versionPattern accepts a semantic version range: optional comparison
	// operator, optional caret or tilde, MAJOR[.MINOR[.PATCH]] core, optional
	// pre-release identifiers and optional build metadata.
	versionPattern = regexp.MustCompile(`^[<>]?(?:(\^|~)?(0|[1-9]\d*)(\.(0|[1-9]\d*))?` +
		`(\.(0|[1-9]\d*))?` +
		`(-(0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(\.(0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*)?` +
		`(\+[0-9a-zA-Z-]+(\.[0-9a-zA-Z-]+)*)?)$`)
)

var (
	ErrProjectNameRequired = errors.New("Project name is required")
	ErrInvalidProjectName  = errors.New("Invalid project name")
	ErrInvalidScopeName    = errors.New("Invalid scope name")
	ErrInvalidVersion      = errors.New("Invalid version")
)

// IsValidName reports whether text is a valid project or scope name.
func IsValidName(text string) bool {
	return namePattern.MatchString(text)
}

// IsValidVersionConstraint reports whether text is empty or a valid
// semantic version range.
func IsValidVersionConstraint(text string) bool {
	return text == "" || versionPattern.MatchString(text)
}

// ProjectName checks the required project name.
func ProjectName(text string) error {
	if text == "" {
		return ErrProjectNameRequired
	}
	if !IsValidName(text) {
		return ErrInvalidProjectName
	}
	return nil
}

// ScopeName checks the optional scope name. Empty value is valid.
func ScopeName(text string) error {
	if text != "" && !IsValidName(text) {
		return ErrInvalidScopeName
	}
	return nil
}

// VersionConstraint checks an optional engine version constraint.
func VersionConstraint(text string) error {
	if !IsValidVersionConstraint(text) {
		return ErrInvalidVersion
	}
	return nil
}
