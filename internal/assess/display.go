package assess

import "math"

// RiskLevel is the three-tier presentation bucket consumers map scores
// and dimension risks into. The mapping functions below are part of the
// engine's contract surface even though presentation lives outside it.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// LevelForScore maps an overall 0-10 trust score to a risk level.
func LevelForScore(score float64) RiskLevel {
	switch {
	case score >= 7.5:
		return RiskLow
	case score >= 4.5:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// BucketForRisk maps a [0,1] dimension risk to a display bucket on a
// 0-10 scale: <=3 low, <=6 medium, above that high.
func BucketForRisk(risk float64) (scale10 int, level RiskLevel) {
	scale10 = int(math.Round(risk * 10))
	switch {
	case scale10 <= 3:
		level = RiskLow
	case scale10 <= 6:
		level = RiskMedium
	default:
		level = RiskHigh
	}
	return scale10, level
}
