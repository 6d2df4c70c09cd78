// Package gamification implements the reward core: confidence-to-XP
// conversion, the level curve, the badge catalog, and the user statistics
// snapshot badges are evaluated against. Everything in this package is a
// pure function over its inputs.
package gamification

import (
	"github.com/mdaffarh/eco-scan/pkg/errors"
)

const (
	MinXPPerScan = 10
	MaxXPPerScan = 25
)

// XPForConfidence converts a classification confidence (0.0 - 1.0) into
// earned XP. Piecewise-linear bands over the confidence percentage:
//
//	90-100%: 20-25 XP
//	70-89%:  15-19 XP
//	50-69%:  10-14 XP
//	below:   10 XP minimum
func XPForConfidence(confidence float64) (int, error) {
	if confidence < 0 || confidence > 1 {
		return 0, errors.ErrInvalidConfidence
	}

	percent := confidence * 100

	switch {
	case percent >= 90:
		return 20 + int(percent-90)/2, nil
	case percent >= 70:
		return 15 + int(percent-70)/4, nil
	case percent >= 50:
		return 10 + int(percent-50)/4, nil
	default:
		return MinXPPerScan, nil
	}
}
