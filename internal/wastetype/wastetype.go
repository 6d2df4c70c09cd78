// Package wastetype holds the static waste label catalog: the canonical
// label set the classifier is expected to emit, the mapping from labels to
// physical bin categories, and the tolerant matching rules used everywhere
// labels or categories are compared.
package wastetype

import "strings"

// Labels is the canonical waste-type label set, in classifier order.
var Labels = []string{
	"Organik",
	"Anorganik",
	"Botol Plastik",
	"Kertas",
	"Residu",
	"B3",
	"Tidak Ada Label",
}

// categoryByLabel maps a canonical label to the bin category that accepts
// it. A label without an entry is unresolvable (caller renders a
// "not available" message).
var categoryByLabel = map[string]string{
	"Organik":         "Organik",
	"Anorganik":       "Anorganik",
	"Botol Plastik":   "Botol Plastik",
	"Kertas":          "Kertas",
	"Residu":          "Residu",
	"B3":              "B3",
	"Tidak Ada Label": "Residu",
}

// fallbackByLabel maps a label to a secondary acceptable bin category when
// the primary category is absent at a location.
var fallbackByLabel = map[string]string{
	"Botol Plastik": "Anorganik",
	"Kertas":        "Anorganik",
	"B3":            "Residu",
}

// Normalize coerces a classifier label to its canonical form. The mobile
// classifier occasionally emits truncated labels ("Botol Plasti"); a
// non-empty strict prefix of exactly one canonical label is coerced to that
// label so diversity counts and category mapping stay consistent. Anything
// else passes through trimmed.
func Normalize(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return trimmed
	}

	for _, canonical := range Labels {
		if strings.EqualFold(trimmed, canonical) {
			return canonical
		}
	}

	match := ""
	for _, canonical := range Labels {
		if len(trimmed) < len(canonical) && strings.HasPrefix(strings.ToLower(canonical), strings.ToLower(trimmed)) {
			if match != "" {
				// Ambiguous prefix, leave the label untouched
				return trimmed
			}
			match = canonical
		}
	}
	if match != "" {
		return match
	}
	return trimmed
}

// IsKnown reports whether the label (after normalization) belongs to the
// canonical label set.
func IsKnown(label string) bool {
	_, ok := categoryByLabel[Normalize(label)]
	return ok
}

// CategoryFor returns the primary bin category for a waste label.
func CategoryFor(label string) (string, bool) {
	category, ok := categoryByLabel[Normalize(label)]
	return category, ok
}

// FallbackFor returns the secondary acceptable bin category, if any.
func FallbackFor(label string) (string, bool) {
	fallback, ok := fallbackByLabel[Normalize(label)]
	return fallback, ok
}

// Matches compares two bin-category strings with the tolerant rule used
// throughout: surrounding whitespace and letter case are ignored. Admin
// entered bin lists are not always clean, so raw equality is never used.
func Matches(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
