package filesystem_test

import (
	"testing"

	"ossdisk/core/filesystem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("HasAndGet", func(t *testing.T) {
		cfg := filesystem.NewConfig(map[string]any{filesystem.OptionMimetype: "image/png"})
		assert.True(t, cfg.Has(filesystem.OptionMimetype))
		assert.False(t, cfg.Has(filesystem.OptionSize))
		assert.Equal(t, "image/png", cfg.GetString(filesystem.OptionMimetype))
	})

	t.Run("NilConfig", func(t *testing.T) {
		var cfg *filesystem.Config
		assert.False(t, cfg.Has(filesystem.OptionACL))
		v, ok := cfg.Get(filesystem.OptionACL)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("FallbackIsConsulted", func(t *testing.T) {
		base := filesystem.NewConfig(map[string]any{filesystem.OptionVisibility: "public"})
		cfg := filesystem.NewConfig(nil).WithFallback(base)

		assert.True(t, cfg.Has(filesystem.OptionVisibility))
		assert.Equal(t, "public", cfg.GetString(filesystem.OptionVisibility))
		assert.False(t, cfg.Has(filesystem.OptionACL))
		assert.Empty(t, cfg.Keys())
	})

	t.Run("OwnValueShadowsFallback", func(t *testing.T) {
		base := filesystem.NewConfig(map[string]any{filesystem.OptionVisibility: "public"})
		cfg := filesystem.NewConfig(map[string]any{filesystem.OptionVisibility: "private"}).WithFallback(base)

		assert.Equal(t, "private", cfg.GetString(filesystem.OptionVisibility))
	})

	t.Run("WithDoesNotMutate", func(t *testing.T) {
		cfg := filesystem.NewConfig(nil)
		next := cfg.With(filesystem.OptionACL, "private")

		assert.False(t, cfg.Has(filesystem.OptionACL))
		assert.True(t, next.Has(filesystem.OptionACL))
	})

	t.Run("NewConfigCopies", func(t *testing.T) {
		values := map[string]any{"a": 1}
		cfg := filesystem.NewConfig(values)
		values["b"] = 2
		assert.False(t, cfg.Has("b"))
		assert.ElementsMatch(t, []string{"a"}, cfg.Keys())
	})
}

func TestGuessMimeType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	tests := []struct {
		name     string
		path     string
		contents []byte
		want     string
	}{
		{"SniffedFromContent", "image.bin", png, "image/png"},
		{"ExtensionWhenContentIsPlain", "data.json", []byte("hello"), "application/json"},
		{"ExtensionWhenEmpty", "logo.png", nil, "image/png"},
		{"DefaultFallback", "README", nil, "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filesystem.GuessMimeType(tt.path, tt.contents))
		})
	}
}

func TestParseVisibility(t *testing.T) {
	v, err := filesystem.ParseVisibility("Public")
	require.NoError(t, err)
	assert.Equal(t, filesystem.VisibilityPublic, v)

	v, err = filesystem.ParseVisibility(" private ")
	require.NoError(t, err)
	assert.Equal(t, filesystem.VisibilityPrivate, v)

	_, err = filesystem.ParseVisibility("world")
	assert.ErrorIs(t, err, filesystem.ErrInvalidArgument)
}
