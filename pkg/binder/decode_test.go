package binder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/binder"
)

type sample struct {
	Name    string            `field:"name"`
	Count   int               `field:"count"`
	Ratio   float64           `field:"ratio"`
	Hidden  bool              `field:"hidden"`
	Note    *string           `field:"note"`
	Tags    []string          `field:"tags"`
	Skipped string            `field:"-"`
	Rest    map[string]string `field:"*"`
	Plain   string
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("binds every supported type", func(t *testing.T) {
		t.Parallel()
		var s sample
		err := binder.Decode(&s, "field", map[string][]string{
			"name":    {"Jane"},
			"count":   {" 3 "},
			"ratio":   {"0.25"},
			"hidden":  {"on"},
			"note":    {"hi"},
			"tags":    {"a", "b,c"},
			"plain":   {"p"},
			"skipped": {"x"},
			"extra":   {"1"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Jane", s.Name)
		assert.Equal(t, 3, s.Count)
		assert.InDelta(t, 0.25, s.Ratio, 1e-9)
		assert.True(t, s.Hidden)
		require.NotNil(t, s.Note)
		assert.Equal(t, "hi", *s.Note)
		assert.Equal(t, []string{"a", "b,c"}, s.Tags)
		assert.Equal(t, "p", s.Plain)
		assert.Empty(t, s.Skipped)
		assert.Equal(t, map[string]string{"skipped": "x", "extra": "1"}, s.Rest)
	})

	t.Run("reports the failing key", func(t *testing.T) {
		t.Parallel()
		var s sample
		err := binder.Decode(&s, "field", map[string][]string{"hidden": {"maybe"}})
		require.Error(t, err)

		var fe *binder.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "hidden", fe.Key)
		assert.Equal(t, "maybe", fe.Value)
		assert.True(t, errors.Is(err, binder.ErrInvalidValue))
	})

	t.Run("rejects non-pointer targets", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, binder.Decode(sample{}, "field", nil), binder.ErrInvalidTarget)
		var n int
		assert.ErrorIs(t, binder.Decode(&n, "field", nil), binder.ErrInvalidTarget)
	})
}

type embeddedOptions struct {
	Scale  int    `form:"scale"`
	Format string `form:"output_format"`
}

type envelope struct {
	Kind string `form:"kind"`
	embeddedOptions
	Fields map[string]string `form:"*"`
}

func TestDecode_Embedded(t *testing.T) {
	t.Parallel()

	var e envelope
	err := binder.Decode(&e, "form", map[string][]string{
		"kind":          {"wifi"},
		"scale":         {"4"},
		"output_format": {"svg"},
		"ssid":          {"Home"},
	})
	require.NoError(t, err)

	assert.Equal(t, "wifi", e.Kind)
	assert.Equal(t, 4, e.Scale)
	assert.Equal(t, "svg", e.Format)
	assert.Equal(t, map[string]string{"ssid": "Home"}, e.Fields)
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"true", "on", "YES", "1"} {
		b, err := binder.ParseBool(in)
		require.NoError(t, err, in)
		assert.True(t, b, in)
	}
	for _, in := range []string{"false", "off", "no", "0", ""} {
		b, err := binder.ParseBool(in)
		require.NoError(t, err, in)
		assert.False(t, b, in)
	}
	_, err := binder.ParseBool("perhaps")
	assert.Error(t, err)
}
