package wastetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"Organik", "Organik"},
		{"organik", "Organik"},
		{"  Kertas  ", "Kertas"},
		{"Botol Plastik", "Botol Plastik"},
		{"Botol Plasti", "Botol Plastik"}, // truncated classifier output
		{"Botol Plas", "Botol Plastik"},
		{"Tidak Ada", "Tidak Ada Label"},
		{"B", "B"}, // ambiguous prefix (B3, Botol Plastik) stays as-is
		{"Sampah Misterius", "Sampah Misterius"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestCategoryFor(t *testing.T) {
	category, ok := CategoryFor("Botol Plasti")
	assert.True(t, ok)
	assert.Equal(t, "Botol Plastik", category)

	category, ok = CategoryFor("Tidak Ada Label")
	assert.True(t, ok)
	assert.Equal(t, "Residu", category)

	_, ok = CategoryFor("Sampah Misterius")
	assert.False(t, ok)
}

func TestFallbackFor(t *testing.T) {
	fallback, ok := FallbackFor("Botol Plastik")
	assert.True(t, ok)
	assert.Equal(t, "Anorganik", fallback)

	fallback, ok = FallbackFor("Kertas")
	assert.True(t, ok)
	assert.Equal(t, "Anorganik", fallback)

	_, ok = FallbackFor("Organik")
	assert.False(t, ok)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Botol Plastik", "botol plastik"))
	assert.True(t, Matches("  Organik ", "Organik"))
	assert.False(t, Matches("Organik", "Anorganik"))
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("Organik"))
	assert.True(t, IsKnown("Botol Plasti"))
	assert.False(t, IsKnown("Logam"))
}
