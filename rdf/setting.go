package rdf

import (
	"fmt"
	"reflect"
)

// SettingKey is the untyped view of a Setting.
// Catalogs, stores and loaders work with SettingKey; typed access goes
// through Get and Set.
type SettingKey interface {
	// Key returns the globally unique identifier of the setting.
	Key() string
	// DisplayName returns a human-readable label.
	DisplayName() string
	// Default returns the default value as an untyped value.
	Default() any
	// Type returns the value type every override must have.
	Type() reflect.Type

	check(raw any) (any, error)
	coerce(raw any) (any, error)
}

// Setting is an immutable, typed configuration key with a default value.
//
// Two settings are the same setting when their keys are equal; stores index
// overrides by key string, so a setting rebuilt with the same key addresses
// the same override.
type Setting[T any] struct {
	key          string
	displayName  string
	defaultValue T
}

// NewSetting declares a setting. Key uniqueness is checked when the setting
// is added to a Catalog.
func NewSetting[T any](key, displayName string, defaultValue T) Setting[T] {
	return Setting[T]{key: key, displayName: displayName, defaultValue: defaultValue}
}

// Key returns the setting key.
func (s Setting[T]) Key() string { return s.key }

// DisplayName returns the setting's human-readable label.
func (s Setting[T]) DisplayName() string { return s.displayName }

// DefaultValue returns the typed default value.
func (s Setting[T]) DefaultValue() T { return s.defaultValue }

// Default returns the default value as an untyped value.
func (s Setting[T]) Default() any { return s.defaultValue }

// Type returns the value type of the setting.
func (s Setting[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

// String returns the key and display name.
func (s Setting[T]) String() string {
	return fmt.Sprintf("%s (%s)", s.key, s.displayName)
}

// check accepts raw only if its dynamic type is exactly T.
func (s Setting[T]) check(raw any) (any, error) {
	value, ok := raw.(T)
	if !ok {
		return nil, &TypeMismatchError{Key: s.key, Want: s.Type(), Got: reflect.TypeOf(raw)}
	}
	return value, nil
}

func (s Setting[T]) coerce(raw any) (any, error) {
	if value, ok := raw.(T); ok {
		return value, nil
	}
	value, err := coerceValue(s.Type(), raw)
	if err != nil {
		return nil, &TypeMismatchError{Key: s.key, Want: s.Type(), Got: reflect.TypeOf(raw), Err: err}
	}
	return value, nil
}

// SameSetting reports whether a and b identify the same setting.
func SameSetting(a, b SettingKey) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}
