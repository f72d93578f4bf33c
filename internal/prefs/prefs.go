// internal/prefs/prefs.go
//
// Key/value store for user preferences such as the colour theme.
// Backends: memory (default), SQLite, Redis.
//
// Keys are plain strings; callers that serve several clients namespace them
// with Scope. Reads of a missing key return the caller's default.

package prefs

import (
	"context"
	"errors"
	"fmt"
)

// Known preference keys.
const (
	KeyTheme = "theme"
)

// Theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	DefaultTheme = ThemeDark
)

var (
	ErrUnknownKey   = errors.New("unknown preference key")
	ErrInvalidValue = errors.New("invalid preference value")
)

// Store persists preference values.
type Store interface {
	// Get returns the stored value of key, or def when none is stored.
	Get(ctx context.Context, key, def string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	Close() error
}

// validators lists the keys clients may set and the values each accepts.
var validators = map[string]func(string) bool{
	KeyTheme: func(v string) bool { return v == ThemeDark || v == ThemeLight },
}

// Defaults are returned for known keys that have never been set.
var Defaults = map[string]string{
	KeyTheme: DefaultTheme,
}

// Validate checks that key is known and value acceptable for it.
func Validate(key, value string) error {
	valid, known := validators[key]
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if !valid(value) {
		return fmt.Errorf("%w: %q for %q", ErrInvalidValue, value, key)
	}
	return nil
}

// Scope namespaces key under owner, e.g. an anonymous client ID.
func Scope(owner, key string) string {
	if owner == "" {
		return key
	}
	return owner + ":" + key
}

// Toggle flips a theme value.
func Toggle(theme string) string {
	if theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
