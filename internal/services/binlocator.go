package services

import (
	"github.com/mdaffarh/eco-scan/internal/models"
	"github.com/mdaffarh/eco-scan/internal/wastetype"
)

// BinResolution is the tiered recommendation for one waste label at one
// campus site. PrimaryMatches non-empty is the authoritative answer;
// otherwise FallbackMatches is the secondary answer. CrossLocationMatches
// is always computed so the UI can point at other sites when the user's own
// site has no matching bin.
type BinResolution struct {
	WasteType            string                          `json:"wasteType"`
	TargetCategory       string                          `json:"targetCategory"`
	FallbackCategory     string                          `json:"fallbackCategory,omitempty"`
	Resolvable           bool                            `json:"resolvable"`
	PrimaryMatches       []models.BinLocation            `json:"primaryMatches"`
	FallbackMatches      []models.BinLocation            `json:"fallbackMatches"`
	CrossLocationMatches map[string][]models.BinLocation `json:"crossLocationMatches"`
}

// ResolveBinLocations maps a classified waste label to disposal guidance
// against a point-in-time inventory snapshot. Pure: the snapshot is
// supplied by the caller, typically from the cached bins listing.
//
// Unknown labels resolve to an unresolvable result rather than an error;
// the caller renders a "not available" message.
func ResolveBinLocations(wasteLabel, fakultas string, inventory []models.BinLocation) BinResolution {
	label := wastetype.Normalize(wasteLabel)

	result := BinResolution{
		WasteType:            label,
		PrimaryMatches:       []models.BinLocation{},
		FallbackMatches:      []models.BinLocation{},
		CrossLocationMatches: map[string][]models.BinLocation{},
	}

	target, ok := wastetype.CategoryFor(label)
	if !ok {
		return result
	}
	result.Resolvable = true
	result.TargetCategory = target

	for _, location := range inventory {
		if location.Fakultas == fakultas && hasBin(location, target) {
			result.PrimaryMatches = append(result.PrimaryMatches, location)
		}
	}

	if len(result.PrimaryMatches) == 0 {
		if fallback, ok := wastetype.FallbackFor(label); ok {
			result.FallbackCategory = fallback
			for _, location := range inventory {
				if location.Fakultas == fakultas && hasBin(location, fallback) {
					result.FallbackMatches = append(result.FallbackMatches, location)
				}
			}
		}
	}

	// Cross-site search runs regardless of the primary outcome; the
	// presentation layer decides when to surface it.
	for _, location := range inventory {
		if hasBin(location, target) {
			result.CrossLocationMatches[location.Fakultas] = append(result.CrossLocationMatches[location.Fakultas], location)
		}
	}

	return result
}

func hasBin(location models.BinLocation, category string) bool {
	for _, bin := range location.Bins {
		if wastetype.Matches(bin, category) {
			return true
		}
	}
	return false
}
