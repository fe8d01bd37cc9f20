package rdf

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// LoadConfig builds a Config from the keys of v that match settings declared
// in catalogs. Keys v does not set are left at their defaults; keys no
// catalog declares are ignored.
//
// Values read from files keep their decoded type; values from environment
// variables or flags arrive as strings and are parsed into the setting type.
func LoadConfig(v *viper.Viper, catalogs ...*Catalog) (*Config, error) {
	cfg := NewConfig()
	for _, cat := range catalogs {
		if cat == nil {
			continue
		}
		for _, s := range cat.settings {
			if !v.IsSet(s.Key()) {
				continue
			}
			value, err := s.coerce(v.Get(s.Key()))
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", cat.Name(), err)
			}
			cfg.put(s.Key(), value)
		}
	}
	return cfg, nil
}

var durationType = reflect.TypeFor[time.Duration]()

// coerceValue converts raw into a value of type want.
// Only the scalar types a key/value source can express are supported.
func coerceValue(want reflect.Type, raw any) (any, error) {
	if want == durationType {
		return cast.ToDurationE(raw)
	}
	switch want.Kind() {
	case reflect.Bool:
		return convertKind(want, raw, cast.ToBoolE)
	case reflect.String:
		return convertKind(want, raw, cast.ToStringE)
	case reflect.Int:
		return convertKind(want, raw, cast.ToIntE)
	case reflect.Int64:
		return convertKind(want, raw, cast.ToInt64E)
	case reflect.Float64:
		return convertKind(want, raw, cast.ToFloat64E)
	default:
		return nil, fmt.Errorf("no conversion to %s", want)
	}
}

// convertKind parses raw with parse and converts the result to want, which
// may be a named type over the parsed kind.
func convertKind[V any](want reflect.Type, raw any, parse func(any) (V, error)) (any, error) {
	value, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(value).Convert(want).Interface(), nil
}
