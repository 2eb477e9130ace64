package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("single condition", func(t *testing.T) {
		got := Parse("tittel eq 'Byggesak'")
		require.Len(t, got, 1)
		assert.Equal(t, Equals{Field: "tittel", Value: "Byggesak"}, got[0])
	})

	t.Run("multiple conditions", func(t *testing.T) {
		got := Parse("tittel eq 'Byggesak' and saksstatus eq 'SAK-1'")
		require.Len(t, got, 2)
		assert.Equal(t, Equals{Field: "tittel", Value: "Byggesak"}, got[0])
		assert.Equal(t, Equals{Field: "saksstatus", Value: "SAK-1"}, got[1])
	})

	t.Run("separator is case-insensitive", func(t *testing.T) {
		got := Parse("tittel eq 'A' AND saksstatus eq 'B'")
		require.Len(t, got, 2)
	})

	t.Run("separator inside quotes is literal", func(t *testing.T) {
		got := Parse("tittel eq 'Vann and avløp'")
		require.Len(t, got, 1)
		assert.Equal(t, Equals{Field: "tittel", Value: "Vann and avløp"}, got[0])
	})

	t.Run("empty value", func(t *testing.T) {
		got := Parse("tittel eq ''")
		require.Len(t, got, 1)
		assert.Equal(t, Equals{Field: "tittel", Value: ""}, got[0])
	})

	t.Run("blank filter yields nothing", func(t *testing.T) {
		assert.Empty(t, Parse(""))
		assert.Empty(t, Parse("   "))
	})

	t.Run("unsupported operator is invalid", func(t *testing.T) {
		got := Parse("tittel gt 'x'")
		require.Len(t, got, 1)
		assert.Equal(t, Invalid{Raw: "tittel gt 'x'"}, got[0])
	})

	t.Run("missing quotes is invalid", func(t *testing.T) {
		got := Parse("tittel eq Byggesak")
		require.Len(t, got, 1)
		assert.IsType(t, Invalid{}, got[0])
	})

	t.Run("mixed valid and invalid", func(t *testing.T) {
		got := Parse("tittel eq 'A' and nonsense")
		require.Len(t, got, 2)
		assert.IsType(t, Equals{}, got[0])
		assert.IsType(t, Invalid{}, got[1])
		assert.Equal(t, 1, CountInvalid(got))
	})

	t.Run("blank segments are dropped", func(t *testing.T) {
		got := Parse("tittel eq 'A' and  and saksstatus eq 'B'")
		require.Len(t, got, 2)
	})
}
