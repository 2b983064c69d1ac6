package fieldid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliffordp/charlen/pkg/fieldid"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses composite identifier", func(t *testing.T) {
		id, err := fieldid.Parse("7.2")
		require.NoError(t, err)
		assert.Equal(t, 7, id.Major)
		assert.Equal(t, 2, id.Minor)
		assert.True(t, id.IsSub())
	})

	t.Run("parses whole-field identifier", func(t *testing.T) {
		id, err := fieldid.Parse("7")
		require.NoError(t, err)
		assert.Equal(t, 7, id.Major)
		assert.Equal(t, 0, id.Minor)
		assert.False(t, id.IsSub())
	})

	t.Run("parses zero major with minor", func(t *testing.T) {
		id, err := fieldid.Parse("0.5")
		require.NoError(t, err)
		assert.Equal(t, 0, id.Major)
		assert.Equal(t, 5, id.Minor)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		id, err := fieldid.Parse(" 3.1 ")
		require.NoError(t, err)
		assert.Equal(t, fieldid.FieldID{Major: 3, Minor: 1}, id)
	})

	t.Run("rejects multiple decimal separators", func(t *testing.T) {
		_, err := fieldid.Parse("1.2.3")
		assert.ErrorIs(t, err, fieldid.ErrInvalidFieldID)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		for _, input := range []string{"abc", "7.x", "x.7", ""} {
			_, err := fieldid.Parse(input)
			assert.ErrorIs(t, err, fieldid.ErrInvalidFieldID, "input %q", input)
		}
	})

	t.Run("rejects negative components", func(t *testing.T) {
		_, err := fieldid.Parse("-1")
		assert.ErrorIs(t, err, fieldid.ErrInvalidFieldID)
	})
}

func TestFromFloat(t *testing.T) {
	t.Parallel()

	t.Run("keeps fractional digits as minor", func(t *testing.T) {
		id, err := fieldid.FromFloat(7.2)
		require.NoError(t, err)
		assert.Equal(t, fieldid.FieldID{Major: 7, Minor: 2}, id)
	})

	t.Run("whole number has no minor", func(t *testing.T) {
		id, err := fieldid.FromFloat(7)
		require.NoError(t, err)
		assert.Equal(t, fieldid.FieldID{Major: 7, Minor: 0}, id)
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := fieldid.FromFloat(-7.2)
		assert.ErrorIs(t, err, fieldid.ErrInvalidFieldID)
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7.2", fieldid.FieldID{Major: 7, Minor: 2}.String())
	assert.Equal(t, "7", fieldid.FieldID{Major: 7}.String())
	assert.Equal(t, "0.5", fieldid.FieldID{Major: 0, Minor: 5}.String())
}

func TestParseList(t *testing.T) {
	t.Parallel()

	t.Run("accepts a single scalar", func(t *testing.T) {
		assert.Equal(t, []fieldid.FieldID{{Major: 7}}, fieldid.ParseList(7))
		assert.Equal(t, []fieldid.FieldID{{Major: 7, Minor: 1}}, fieldid.ParseList(7.1))
		assert.Equal(t, []fieldid.FieldID{{Major: 7, Minor: 2}}, fieldid.ParseList("7.2"))
	})

	t.Run("accepts mixed scalar lists", func(t *testing.T) {
		ids := fieldid.ParseList([]any{1.3, "1.6", 2})
		assert.Equal(t, []fieldid.FieldID{
			{Major: 1, Minor: 3},
			{Major: 1, Minor: 6},
			{Major: 2},
		}, ids)
	})

	t.Run("deduplicates preserving first-seen order", func(t *testing.T) {
		ids := fieldid.ParseList([]any{1.6, 1.3, "1.6", 1.3})
		assert.Equal(t, []fieldid.FieldID{
			{Major: 1, Minor: 6},
			{Major: 1, Minor: 3},
		}, ids)
	})

	t.Run("drops zero, empty and unparseable entries", func(t *testing.T) {
		ids := fieldid.ParseList([]any{0, "", "abc", true, nil, 5})
		assert.Equal(t, []fieldid.FieldID{{Major: 5}}, ids)
	})

	t.Run("nil yields nil", func(t *testing.T) {
		assert.Nil(t, fieldid.ParseList(nil))
	})

	t.Run("typed slices", func(t *testing.T) {
		assert.Equal(t, []fieldid.FieldID{{Major: 1}, {Major: 2}}, fieldid.ParseList([]int{1, 2}))
		assert.Equal(t, []fieldid.FieldID{{Major: 1, Minor: 3}}, fieldid.ParseList([]float64{1.3}))
		assert.Equal(t, []fieldid.FieldID{{Major: 4, Minor: 2}}, fieldid.ParseList([]string{"4.2"}))
	})
}
