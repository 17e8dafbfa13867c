package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("SupportedLocalesPassThrough", func(t *testing.T) {
		assert.Equal(t, Turkish, Normalize("tr"))
		assert.Equal(t, English, Normalize("en"))
		assert.Equal(t, Arabic, Normalize("ar"))
	})

	t.Run("UnsupportedFallsBackToDefault", func(t *testing.T) {
		assert.Equal(t, Default, Normalize(""))
		assert.Equal(t, Default, Normalize("de"))
		assert.Equal(t, Default, Normalize("TR"))
	})
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("en"))
	assert.False(t, IsSupported("en-US"))
	assert.False(t, IsSupported(""))
}
