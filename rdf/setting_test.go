package rdf

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingAccessors(t *testing.T) {
	s := NewSetting("org.example.rio.limit", "Limit", 42)

	assert.Equal(t, "org.example.rio.limit", s.Key())
	assert.Equal(t, "Limit", s.DisplayName())
	assert.Equal(t, 42, s.DefaultValue())
	assert.Equal(t, 42, s.Default())
	assert.Equal(t, reflect.TypeOf(0), s.Type())
	assert.Equal(t, "org.example.rio.limit (Limit)", s.String())
}

func TestSettingZeroDefault(t *testing.T) {
	s := NewSetting("org.example.rio.name", "Name", "")
	assert.Equal(t, "", Get(NewConfig(), s))
}

func TestSameSettingComparesKeys(t *testing.T) {
	a := NewSetting("org.example.rio.flag", "Flag", true)
	b := NewSetting("org.example.rio.flag", "Another label", false)
	c := NewSetting("org.example.rio.other", "Flag", true)

	assert.True(t, SameSetting(a, b))
	assert.False(t, SameSetting(a, c))
	assert.True(t, SameSetting(nil, nil))
	assert.False(t, SameSetting(a, nil))
}

func TestSettingsWithEqualKeysShareOverrides(t *testing.T) {
	a := NewSetting("org.example.rio.flag", "Flag", true)
	b := NewSetting("org.example.rio.flag", "Flag", true)

	cfg := NewConfig()
	Set(cfg, a, false)

	assert.False(t, Get(cfg, b))
	assert.True(t, cfg.Contains(b))
}

func TestSettingCoerce(t *testing.T) {
	type level int

	cases := []struct {
		name    string
		setting SettingKey
		raw     any
		want    any
	}{
		{"bool from string", NewSetting("k.bool", "", false), "true", true},
		{"bool exact", NewSetting("k.bool", "", false), true, true},
		{"int from string", NewSetting("k.int", "", 0), "12", 12},
		{"int64 from int", NewSetting("k.int64", "", int64(0)), 7, int64(7)},
		{"float from string", NewSetting("k.float", "", 0.0), "1.5", 1.5},
		{"string from int", NewSetting("k.string", "", ""), 3, "3"},
		{"duration from string", NewSetting("k.duration", "", time.Duration(0)), "2s", 2 * time.Second},
		{"named int", NewSetting("k.level", "", level(0)), "3", level(3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.setting.coerce(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSettingCoerceRejects(t *testing.T) {
	_, err := NewSetting("k.bool", "", false).coerce("sometimes")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	type point struct{ X, Y int }
	_, err = NewSetting("k.point", "", point{}).coerce("1,2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	got, err := NewSetting("k.point", "", point{}).coerce(point{X: 1})
	require.NoError(t, err)
	assert.Equal(t, point{X: 1}, got)
}
