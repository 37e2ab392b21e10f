package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostTitle(t *testing.T) {
	t.Run("ASCII At Limit", func(t *testing.T) {
		assert.True(t, ValidatePostTitle(strings.Repeat("a", 50)))
	})

	t.Run("ASCII Over Limit", func(t *testing.T) {
		assert.False(t, ValidatePostTitle(strings.Repeat("a", 51)))
	})

	t.Run("Multibyte At Limit", func(t *testing.T) {
		// 50 characters, 100 bytes. The limit counts characters.
		assert.True(t, ValidatePostTitle(strings.Repeat("я", 50)))
	})

	t.Run("Multibyte Over Limit", func(t *testing.T) {
		assert.False(t, ValidatePostTitle(strings.Repeat("я", 51)))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.False(t, ValidatePostTitle(""))
	})
}

func TestValidatePostText(t *testing.T) {
	t.Run("Multibyte At Limit", func(t *testing.T) {
		assert.True(t, ValidatePostText(strings.Repeat("ё", 2500)))
	})

	t.Run("Multibyte Over Limit", func(t *testing.T) {
		assert.False(t, ValidatePostText(strings.Repeat("ё", 2501)))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.False(t, ValidatePostText(""))
	})
}

func TestValidateUsername(t *testing.T) {
	t.Run("ASCII", func(t *testing.T) {
		assert.True(t, ValidateUsername("alice_01@example.com"))
	})

	t.Run("Unicode Letters", func(t *testing.T) {
		assert.True(t, ValidateUsername("алиса"))
	})

	t.Run("Spaces Rejected", func(t *testing.T) {
		assert.False(t, ValidateUsername("has spaces"))
	})

	t.Run("Too Long In Characters", func(t *testing.T) {
		assert.False(t, ValidateUsername(strings.Repeat("я", 151)))
	})

	t.Run("Multibyte At Limit", func(t *testing.T) {
		assert.True(t, ValidateUsername(strings.Repeat("я", 150)))
	})
}
