package lengthrule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cliffordp/charlen/pkg/fieldid"
	"github.com/cliffordp/charlen/pkg/lengthrule"
)

func testDefaults() lengthrule.Defaults {
	return lengthrule.Defaults{
		MinChars:   0,
		MaxChars:   lengthrule.Unlimited,
		MinMessage: "Please enter at least %d characters.",
		MaxMessage: "Please enter no more than %d characters.",
		CountMode:  lengthrule.CountBytes,
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("typed values pass through", func(t *testing.T) {
		cfg := lengthrule.Normalize(lengthrule.Options{
			FormID:   524,
			FieldID:  1,
			MinChars: 4,
			MaxChars: 5,
		}, testDefaults())

		assert.Equal(t, 524, cfg.FormID)
		assert.Equal(t, []fieldid.FieldID{{Major: 1}}, cfg.FieldIDs)
		assert.Equal(t, 4, cfg.MinChars)
		assert.Equal(t, 5, cfg.MaxChars)
		assert.Equal(t, lengthrule.CountBytes, cfg.CountMode)
	})

	t.Run("unset keys fall back to defaults", func(t *testing.T) {
		cfg := lengthrule.Normalize(lengthrule.Options{
			FormID:   322,
			FieldID:  7.1,
			MinChars: 5,
		}, testDefaults())

		assert.Equal(t, lengthrule.Unlimited, cfg.MaxChars)
		assert.Equal(t, 0, lengthrule.Normalize(lengthrule.Options{FormID: 1, FieldID: 1}, testDefaults()).MinChars)
		assert.Equal(t, "Please enter at least %d characters.", cfg.MinMessage)
		assert.Equal(t, "Please enter no more than %d characters.", cfg.MaxMessage)
	})

	t.Run("numeric strings coerce", func(t *testing.T) {
		cfg := lengthrule.Normalize(lengthrule.Options{
			FormID:   "524",
			FieldID:  "7.2",
			MinChars: "4",
			MaxChars: "5",
		}, testDefaults())

		assert.Equal(t, 524, cfg.FormID)
		assert.Equal(t, []fieldid.FieldID{{Major: 7, Minor: 2}}, cfg.FieldIDs)
		assert.Equal(t, 4, cfg.MinChars)
		assert.Equal(t, 5, cfg.MaxChars)
	})

	t.Run("non-numeric form id coerces to zero", func(t *testing.T) {
		cfg := lengthrule.Normalize(lengthrule.Options{FormID: "abc", FieldID: 1, MinChars: 1}, testDefaults())
		assert.Equal(t, 0, cfg.FormID)
		assert.False(t, cfg.Valid())
	})

	t.Run("negative min chars clamps to zero", func(t *testing.T) {
		cfg := lengthrule.Normalize(lengthrule.Options{FormID: 1, FieldID: 1, MinChars: -3, MaxChars: 5}, testDefaults())
		assert.Equal(t, 0, cfg.MinChars)
	})

	t.Run("fractional bounds truncate to integer part", func(t *testing.T) {
		cfg := lengthrule.Normalize(lengthrule.Options{FormID: 1, FieldID: 1, MinChars: 4.9, MaxChars: 5.2}, testDefaults())
		assert.Equal(t, 4, cfg.MinChars)
		assert.Equal(t, 5, cfg.MaxChars)
	})

	t.Run("max chars preserves the unlimited sentinel", func(t *testing.T) {
		cfg := lengthrule.Normalize(lengthrule.Options{FormID: 1, FieldID: 1, MinChars: 2, MaxChars: -1}, testDefaults())
		assert.Equal(t, lengthrule.Unlimited, cfg.MaxChars)
	})

	t.Run("field id list deduplicates dropping empties", func(t *testing.T) {
		cfg := lengthrule.Normalize(lengthrule.Options{
			FormID:   746,
			FieldID:  []any{1.3, 1.6, 1.3, 0, ""},
			MinChars: 2,
			MaxChars: 40,
		}, testDefaults())

		assert.Equal(t, []fieldid.FieldID{{Major: 1, Minor: 3}, {Major: 1, Minor: 6}}, cfg.FieldIDs)
	})

	t.Run("custom message templates win", func(t *testing.T) {
		cfg := lengthrule.Normalize(lengthrule.Options{
			FormID:     1,
			FieldID:    1,
			MinChars:   2,
			MinMessage: "too short, need %d",
			MaxMessage: "too long, max %d",
		}, testDefaults())

		assert.Equal(t, "too short, need %d", cfg.MinMessage)
		assert.Equal(t, "too long, max %d", cfg.MaxMessage)
	})

	t.Run("templates without exactly one placeholder fall back", func(t *testing.T) {
		cfg := lengthrule.Normalize(lengthrule.Options{
			FormID:     1,
			FieldID:    1,
			MinChars:   2,
			MinMessage: "no placeholder here",
			MaxMessage: "two %d placeholders %d",
		}, testDefaults())

		assert.Equal(t, "Please enter at least %d characters.", cfg.MinMessage)
		assert.Equal(t, "Please enter no more than %d characters.", cfg.MaxMessage)
	})
}

func TestTemplateValid(t *testing.T) {
	t.Parallel()

	assert.True(t, lengthrule.TemplateValid("at least %d"))
	assert.False(t, lengthrule.TemplateValid(""))
	assert.False(t, lengthrule.TemplateValid("no placeholder"))
	assert.False(t, lengthrule.TemplateValid("%d and %d"))
}
