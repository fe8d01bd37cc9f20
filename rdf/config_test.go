package rdf

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaultFallback(t *testing.T) {
	cfg := NewConfig()
	for _, s := range WriterSettings.Catalog.Settings() {
		assert.Equal(t, s.Default(), cfg.Value(s), s.Key())
		assert.False(t, cfg.Contains(s), s.Key())
	}
}

func TestConfigOverrideRoundTrip(t *testing.T) {
	limit := NewSetting("org.example.rio.limit", "Limit", 10)
	cfg := NewConfig()

	for _, v := range []int{0, -1, 10, 1 << 20} {
		Set(cfg, limit, v)
		assert.Equal(t, v, Get(cfg, limit))
		assert.True(t, cfg.Contains(limit))
	}
}

func TestConfigClearRevertsToDefault(t *testing.T) {
	cfg := NewConfig()
	Set(cfg, WriterSettings.InlineBlankNodes, true)
	require.True(t, Get(cfg, WriterSettings.InlineBlankNodes))

	cfg.Clear(WriterSettings.InlineBlankNodes)

	assert.False(t, Get(cfg, WriterSettings.InlineBlankNodes))
	assert.False(t, cfg.Contains(WriterSettings.InlineBlankNodes))
	assert.Equal(t, 0, cfg.Len())
}

func TestConfigIsolation(t *testing.T) {
	s1 := NewConfig()
	assert.True(t, Get(s1, WriterSettings.PrettyPrint))

	Set(s1, WriterSettings.PrettyPrint, false)
	assert.False(t, Get(s1, WriterSettings.PrettyPrint))

	s2 := NewConfig()
	assert.True(t, Get(s2, WriterSettings.PrettyPrint))
	assert.False(t, s2.Contains(WriterSettings.PrettyPrint))
}

func TestConfigNilIsEmpty(t *testing.T) {
	var cfg *Config
	assert.True(t, Get(cfg, WriterSettings.PrettyPrint))
	assert.False(t, cfg.Contains(WriterSettings.PrettyPrint))
	assert.Equal(t, 0, cfg.Len())
	assert.Nil(t, cfg.Keys())
	assert.Equal(t, true, cfg.Value(WriterSettings.BaseDirective))
	cfg.Clear(WriterSettings.PrettyPrint)
	assert.Equal(t, 0, cfg.Clone().Len())
	assert.Panics(t, func() { Set(cfg, WriterSettings.PrettyPrint, false) })
}

func TestConfigZeroValueUsable(t *testing.T) {
	var cfg Config
	Set(&cfg, WriterSettings.PrettyPrint, false)
	assert.False(t, Get(&cfg, WriterSettings.PrettyPrint))
}

func TestConfigSetValue(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.SetValue(WriterSettings.BaseDirective, false))
	assert.False(t, Get(cfg, WriterSettings.BaseDirective))
}

func TestConfigSetValueTypeMismatchLeavesStoreUnchanged(t *testing.T) {
	cfg := NewConfig()
	Set(cfg, WriterSettings.PrettyPrint, false)

	err := cfg.SetValue(WriterSettings.PrettyPrint, "true")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, ErrCodeSettingTypeMismatch, Code(err))

	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, WriterSettings.PrettyPrint.Key(), mismatch.Key)
	assert.Equal(t, reflect.TypeOf(true), mismatch.Want)
	assert.Equal(t, reflect.TypeOf(""), mismatch.Got)

	assert.False(t, Get(cfg, WriterSettings.PrettyPrint))
	assert.Equal(t, 1, cfg.Len())

	err = cfg.SetValue(WriterSettings.InlineBlankNodes, nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "got nil")
	assert.False(t, cfg.Contains(WriterSettings.InlineBlankNodes))
}

func TestConfigSetFromString(t *testing.T) {
	cfg := NewConfig()
	cat := WriterSettings.Catalog

	require.NoError(t, cfg.SetFromString(cat, WriterSettings.InlineBlankNodes.Key(), "true"))
	assert.True(t, Get(cfg, WriterSettings.InlineBlankNodes))

	err := cfg.SetFromString(cat, "org.eclipse.rdf4j.rio.nosuchthing", "true")
	assert.ErrorIs(t, err, ErrUnknownSetting)
	assert.Equal(t, ErrCodeUnknownSetting, Code(err))

	err = cfg.SetFromString(cat, WriterSettings.PrettyPrint.Key(), "perhaps")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.False(t, cfg.Contains(WriterSettings.PrettyPrint))
}

func TestConfigCloneIsIndependent(t *testing.T) {
	cfg := NewConfig()
	Set(cfg, WriterSettings.PrettyPrint, false)

	clone := cfg.Clone()
	Set(clone, WriterSettings.BaseDirective, false)
	clone.Clear(WriterSettings.PrettyPrint)

	assert.False(t, Get(cfg, WriterSettings.PrettyPrint))
	assert.True(t, Get(cfg, WriterSettings.BaseDirective))
	assert.Equal(t, []string{WriterSettings.BaseDirective.Key()}, clone.Keys())
}

func TestConfigKeysSorted(t *testing.T) {
	cfg := NewConfig()
	Set(cfg, WriterSettings.PrettyPrint, false)
	Set(cfg, WriterSettings.BaseDirective, false)

	assert.Equal(t, []string{
		"org.eclipse.rdf4j.rio.basedirective",
		"org.eclipse.rdf4j.rio.prettyprint",
	}, cfg.Keys())
}
