package rdf

import "fmt"

// Catalog is a named, fixed set of settings.
// A Catalog is read-only once built and safe for concurrent use.
type Catalog struct {
	name     string
	settings []SettingKey
	byKey    map[string]SettingKey
}

// NewCatalog builds a catalog from settings in declaration order.
// It returns a *DuplicateKeyError if two settings share a key.
func NewCatalog(name string, settings ...SettingKey) (*Catalog, error) {
	c := &Catalog{
		name:     name,
		settings: make([]SettingKey, 0, len(settings)),
		byKey:    make(map[string]SettingKey, len(settings)),
	}
	for _, s := range settings {
		if s == nil {
			return nil, fmt.Errorf("catalog %s: nil setting", name)
		}
		if s.Key() == "" {
			return nil, fmt.Errorf("catalog %s: %w", name, ErrEmptySettingKey)
		}
		if _, dup := c.byKey[s.Key()]; dup {
			return nil, &DuplicateKeyError{Catalog: name, Key: s.Key()}
		}
		c.byKey[s.Key()] = s
		c.settings = append(c.settings, s)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error.
// It is meant for catalogs built during package initialization.
func MustCatalog(name string, settings ...SettingKey) *Catalog {
	c, err := NewCatalog(name, settings...)
	if err != nil {
		panic(err)
	}
	return c
}

// MergeCatalogs builds a catalog holding the settings of all given catalogs.
// Keys must be unique across the merged namespace.
func MergeCatalogs(name string, catalogs ...*Catalog) (*Catalog, error) {
	var all []SettingKey
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		all = append(all, c.settings...)
	}
	return NewCatalog(name, all...)
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of settings in the catalog.
func (c *Catalog) Len() int { return len(c.settings) }

// Lookup returns the setting registered under key.
func (c *Catalog) Lookup(key string) (SettingKey, bool) {
	s, ok := c.byKey[key]
	return s, ok
}

// Settings returns the settings in declaration order.
func (c *Catalog) Settings() []SettingKey {
	out := make([]SettingKey, len(c.settings))
	copy(out, c.settings)
	return out
}

// Keys returns the setting keys in declaration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.settings))
	for i, s := range c.settings {
		keys[i] = s.Key()
	}
	return keys
}
