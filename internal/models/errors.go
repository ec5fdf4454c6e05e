package models

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every ConfigurationError via errors.Is
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a lookup of a key the balance tables do not define.
// It signals a caller bug, never a user-facing condition.
type ConfigurationError struct {
	Kind string // "building", "technology", "personality", "condition", ...
	Key  string
	Err  error // optional underlying cause
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unknown %s %q: %v", e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

// Is reports whether target is ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Unwrap returns the underlying cause
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// UnknownBuilding returns a ConfigurationError for a building type
func UnknownBuilding(bt BuildingType) error {
	return &ConfigurationError{Kind: "building", Key: string(bt)}
}

// UnknownTechnology returns a ConfigurationError for a technology key
func UnknownTechnology(key string) error {
	return &ConfigurationError{Kind: "technology", Key: key}
}

// UnknownPersonality returns a ConfigurationError for a personality
func UnknownPersonality(p Personality) error {
	return &ConfigurationError{Kind: "personality", Key: string(p)}
}
