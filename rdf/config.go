package rdf

import (
	"fmt"
	"sort"
)

// Config holds setting overrides for a single read or write operation.
//
// Lookups are total: a setting without an override yields its default.
// A Config is not safe for concurrent mutation; configure it first, then
// share it read-only or hand each operation its own Clone.
type Config struct {
	values map[string]any
}

// NewConfig returns an empty Config.
func NewConfig() *Config {
	return &Config{values: make(map[string]any)}
}

// Get returns the override for s, or the default of s if none is set.
// A nil Config yields the default.
func Get[T any](c *Config, s Setting[T]) T {
	if c == nil {
		return s.DefaultValue()
	}
	if raw, ok := c.values[s.Key()]; ok {
		if value, ok := raw.(T); ok {
			return value
		}
	}
	return s.DefaultValue()
}

// Set stores v as the override for s.
// Unlike the read methods, Set panics on a nil Config.
func Set[T any](c *Config, s Setting[T], v T) {
	c.put(s.Key(), v)
}

// SetValue stores an untyped override for s.
// It returns a *TypeMismatchError and leaves c unchanged when the dynamic
// type of v is not the value type of s.
func (c *Config) SetValue(s SettingKey, v any) error {
	value, err := s.check(v)
	if err != nil {
		return err
	}
	c.put(s.Key(), value)
	return nil
}

// SetFromString parses raw into the value type of the setting registered
// under key in cat and stores it.
func (c *Config) SetFromString(cat *Catalog, key, raw string) error {
	s, ok := cat.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	value, err := s.coerce(raw)
	if err != nil {
		return err
	}
	c.put(s.Key(), value)
	return nil
}

// Contains reports whether an explicit override is set for s.
func (c *Config) Contains(s SettingKey) bool {
	if c == nil {
		return false
	}
	_, ok := c.values[s.Key()]
	return ok
}

// Clear removes the override for s.
func (c *Config) Clear(s SettingKey) {
	if c == nil {
		return
	}
	delete(c.values, s.Key())
}

// Value returns the effective value of s as an untyped value.
func (c *Config) Value(s SettingKey) any {
	if c != nil {
		if raw, ok := c.values[s.Key()]; ok {
			return raw
		}
	}
	return s.Default()
}

// Len returns the number of overrides.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// Keys returns the keys of all overrides, sorted.
func (c *Config) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.values))
	for key := range c.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of c.
func (c *Config) Clone() *Config {
	out := NewConfig()
	if c == nil {
		return out
	}
	for key, value := range c.values {
		out.values[key] = value
	}
	return out
}

func (c *Config) put(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}
