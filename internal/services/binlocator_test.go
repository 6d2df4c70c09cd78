package services

import (
	"testing"

	"github.com/mdaffarh/eco-scan/internal/models"
	"github.com/stretchr/testify/assert"
)

func testInventory() []models.BinLocation {
	return []models.BinLocation{
		{Value: "fpti-a", Fakultas: "FPTI", Bins: []string{"Organik", "Anorganik"}},
		{Value: "fpti-b", Fakultas: "FPTI", Bins: []string{" botol plastik ", "Residu"}},
		{Value: "fpmipa-a", Fakultas: "FPMIPA", Bins: []string{"Botol Plastik", "Kertas"}},
		{Value: "fpeb-a", Fakultas: "FPEB", Bins: []string{"Organik"}},
	}
}

func TestResolveBinLocations_Primary(t *testing.T) {
	result := ResolveBinLocations("Botol Plastik", "FPTI", testInventory())

	assert.True(t, result.Resolvable)
	assert.Equal(t, "Botol Plastik", result.TargetCategory)
	// tolerant matching: " botol plastik " counts
	assert.Len(t, result.PrimaryMatches, 1)
	assert.Equal(t, "fpti-b", result.PrimaryMatches[0].Value)
	assert.Empty(t, result.FallbackMatches)
	// cross-site matches are always computed
	assert.Len(t, result.CrossLocationMatches, 2)
	assert.Len(t, result.CrossLocationMatches["FPMIPA"], 1)
}

func TestResolveBinLocations_Fallback(t *testing.T) {
	// No Kertas bin at FPTI, but Anorganik is an acceptable fallback there
	result := ResolveBinLocations("Kertas", "FPTI", testInventory())

	assert.True(t, result.Resolvable)
	assert.Equal(t, "Kertas", result.TargetCategory)
	assert.Empty(t, result.PrimaryMatches)
	assert.Equal(t, "Anorganik", result.FallbackCategory)
	assert.Len(t, result.FallbackMatches, 1)
	assert.Equal(t, "fpti-a", result.FallbackMatches[0].Value)
	// other sites offering the primary category still show up
	assert.Len(t, result.CrossLocationMatches["FPMIPA"], 1)
}

func TestResolveBinLocations_CrossLocationOnly(t *testing.T) {
	// FPEB has neither a Botol Plastik bin nor its Anorganik fallback
	result := ResolveBinLocations("Botol Plastik", "FPEB", testInventory())

	assert.Empty(t, result.PrimaryMatches)
	assert.Equal(t, "Anorganik", result.FallbackCategory)
	assert.Empty(t, result.FallbackMatches)
	assert.Len(t, result.CrossLocationMatches, 2)
}

func TestResolveBinLocations_TruncatedLabel(t *testing.T) {
	result := ResolveBinLocations("Botol Plasti", "FPTI", testInventory())

	assert.True(t, result.Resolvable)
	assert.Equal(t, "Botol Plastik", result.WasteType)
	assert.Equal(t, "Botol Plastik", result.TargetCategory)
	assert.Len(t, result.PrimaryMatches, 1)
}

func TestResolveBinLocations_Unresolvable(t *testing.T) {
	result := ResolveBinLocations("Sampah Misterius", "FPTI", testInventory())

	assert.False(t, result.Resolvable)
	assert.Empty(t, result.TargetCategory)
	assert.Empty(t, result.PrimaryMatches)
	assert.Empty(t, result.FallbackMatches)
	assert.Empty(t, result.CrossLocationMatches)
}

func TestResolveBinLocations_FallbackSkippedWhenPrimaryFound(t *testing.T) {
	inventory := []models.BinLocation{
		{Value: "fpti-a", Fakultas: "FPTI", Bins: []string{"Kertas", "Anorganik"}},
	}
	result := ResolveBinLocations("Kertas", "FPTI", inventory)

	assert.Len(t, result.PrimaryMatches, 1)
	assert.Empty(t, result.FallbackCategory)
	assert.Empty(t, result.FallbackMatches)
}
