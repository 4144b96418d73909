// Package uuid issues the time-ordered identifiers used as primary keys and
// recurring payment series ids.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. If the random source fails it falls back to
// a random v4 id so inserts never fail on key generation.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// Parse validates s and returns it in canonical lower-case form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	return googleuuid.Validate(s) == nil
}
