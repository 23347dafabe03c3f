package symbol_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/symbol"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want symbol.Level
	}{
		{"", symbol.LevelM},
		{"l", symbol.LevelL},
		{"M", symbol.LevelM},
		{" q ", symbol.LevelQ},
		{"H", symbol.LevelH},
	}
	for _, tt := range tests {
		got, err := symbol.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := symbol.ParseLevel("X")
	require.ErrorIs(t, err, symbol.ErrInvalidLevel)
}

func TestLevel_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "L", symbol.LevelL.String())
	assert.Equal(t, "H", symbol.LevelH.String())
	assert.Equal(t, "Level(9)", symbol.Level(9).String())
}

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("small content fits version 1", func(t *testing.T) {
		t.Parallel()
		m, err := symbol.Encode("hello", symbol.LevelM)
		require.NoError(t, err)
		assert.Equal(t, 1, m.Version())
		assert.Equal(t, 21, m.Size())
		assert.Equal(t, symbol.LevelM, m.Level())
	})

	t.Run("finder pattern corners are dark", func(t *testing.T) {
		t.Parallel()
		m, err := symbol.Encode("https://example.com", symbol.LevelH)
		require.NoError(t, err)
		n := m.Size()
		assert.Equal(t, 17+4*m.Version(), n)
		assert.True(t, m.Dark(0, 0))
		assert.True(t, m.Dark(n-1, 0))
		assert.True(t, m.Dark(0, n-1))
		assert.False(t, m.Dark(7, 7), "separator")
		assert.False(t, m.Dark(-1, 0))
		assert.False(t, m.Dark(0, n))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		a, err := symbol.Encode("WIFI:S:Home;T:WPA;P:secret;;", symbol.LevelQ)
		require.NoError(t, err)
		b, err := symbol.Encode("WIFI:S:Home;T:WPA;P:secret;;", symbol.LevelQ)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("minimum version", func(t *testing.T) {
		t.Parallel()
		m, err := symbol.Encode("hi", symbol.LevelL, symbol.WithMinVersion(10))
		require.NoError(t, err)
		assert.Equal(t, 10, m.Version())
		assert.Equal(t, 57, m.Size())
	})

	t.Run("minimum version below natural version is ignored", func(t *testing.T) {
		t.Parallel()
		content := strings.Repeat("a", 200)
		natural, err := symbol.Encode(content, symbol.LevelM)
		require.NoError(t, err)
		m, err := symbol.Encode(content, symbol.LevelM, symbol.WithMinVersion(1))
		require.NoError(t, err)
		assert.Equal(t, natural.Version(), m.Version())
	})

	t.Run("invalid minimum version", func(t *testing.T) {
		t.Parallel()
		_, err := symbol.Encode("hi", symbol.LevelL, symbol.WithMinVersion(41))
		require.ErrorIs(t, err, symbol.ErrInvalidVersion)
	})

	t.Run("falls back to weaker level", func(t *testing.T) {
		t.Parallel()
		// 2900 bytes exceed version 40 at M (2331) but fit at L (2953).
		m, err := symbol.Encode(strings.Repeat("\x01", 2900), symbol.LevelH)
		require.NoError(t, err)
		assert.Equal(t, symbol.LevelL, m.Level())
		assert.Equal(t, 40, m.Version())
	})

	t.Run("without fallback", func(t *testing.T) {
		t.Parallel()
		_, err := symbol.Encode(strings.Repeat("\x01", 2900), symbol.LevelH, symbol.WithoutFallback())
		require.ErrorIs(t, err, symbol.ErrCapacityExceeded)
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		t.Parallel()
		_, err := symbol.Encode(strings.Repeat("\x01", 3000), symbol.LevelM)
		require.ErrorIs(t, err, symbol.ErrCapacityExceeded)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := symbol.Encode("", symbol.LevelM)
		require.ErrorIs(t, err, symbol.ErrEmptyContent)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()
		_, err := symbol.Encode("x", symbol.Level(7))
		require.ErrorIs(t, err, symbol.ErrInvalidLevel)
	})
}
