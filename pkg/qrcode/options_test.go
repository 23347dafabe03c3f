package qrcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/render"
	"github.com/dmitrymomot/qrkit/pkg/symbol"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

func TestRawOptions_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("empty input gives defaults", func(t *testing.T) {
		t.Parallel()
		opts, err := qrcode.RawOptions{}.Resolve()
		require.NoError(t, err)
		assert.Equal(t, qrcode.DefaultOptions(), opts)
	})

	t.Run("parses every option", func(t *testing.T) {
		t.Parallel()
		opts, err := qrcode.RawOptions{
			Level:      "h",
			Scale:      "4",
			Border:     "0",
			Foreground: "#112233",
			Background: "#FFEEDD",
			Format:     "SVG",
			MinVersion: "3",
		}.Resolve()
		require.NoError(t, err)

		assert.Equal(t, symbol.LevelH, opts.Level)
		assert.Equal(t, 4, opts.Scale)
		assert.Equal(t, 0, opts.Border)
		assert.Equal(t, 3, opts.MinVersion)
		assert.Equal(t, render.FormatSVG, opts.Format)
		assert.Equal(t, render.Color{R: 0x11, G: 0x22, B: 0x33}, opts.Foreground)
		assert.Equal(t, render.SolidBackground(render.Color{R: 0xff, G: 0xee, B: 0xdd}), opts.Background)
	})

	t.Run("transparent wins over background color", func(t *testing.T) {
		t.Parallel()
		opts, err := qrcode.RawOptions{Transparent: "on", Background: "#000000"}.Resolve()
		require.NoError(t, err)
		assert.True(t, opts.Background.Transparent())
	})

	t.Run("collects every problem", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.RawOptions{
			Level:       "X",
			Scale:       "abc",
			Border:      "50",
			Foreground:  "red",
			Transparent: "maybe",
			Format:      "webp",
		}.Resolve()
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ElementsMatch(t,
			[]string{"level", "format", "scale", "foreground", "transparent", "border"},
			validator.ExtractValidationErrors(err).Fields())
	})

	t.Run("scale is validated as given", func(t *testing.T) {
		t.Parallel()
		for _, scale := range []string{"0", "101", "-3"} {
			_, err := qrcode.RawOptions{Scale: scale}.Resolve()
			require.ErrorIs(t, err, validator.ErrValidationFailed, scale)
			assert.Equal(t, []string{"scale"}, validator.ExtractValidationErrors(err).Fields(), scale)
		}

		opts, err := qrcode.RawOptions{Scale: " "}.Resolve()
		require.NoError(t, err)
		assert.Equal(t, render.DefaultScale, opts.Scale)
	})

	t.Run("colors must be hex", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.RawOptions{Foreground: "#fff", Background: "00ff00"}.Resolve()
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		for _, e := range verrs {
			assert.Equal(t, "validation.hex_color", e.TranslationKey)
		}
	})

	t.Run("transparency with jpeg", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.RawOptions{Transparent: "true", Format: "jpg"}.Resolve()
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.ExtractValidationErrors(err).Has("background"))
	})

	t.Run("unimplemented format resolves", func(t *testing.T) {
		t.Parallel()
		opts, err := qrcode.RawOptions{Format: "eps"}.Resolve()
		require.NoError(t, err)
		assert.Equal(t, render.FormatEPS, opts.Format)
	})
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	opts := qrcode.DefaultOptions()
	opts.Level = symbol.Level(9)
	opts.MinVersion = -1
	err := opts.Validate()
	assert.ElementsMatch(t, []string{"level", "min_version"}, validator.ExtractValidationErrors(err).Fields())
}
