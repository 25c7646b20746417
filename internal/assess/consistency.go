package assess

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// assessConsistency scores the consistency/factuality dimension by
// cross-checking extracted claims against metadata. A severe mismatch
// (price or speed) dominates and short-circuits the lesser structural
// checks; the suspicious-claim scan runs regardless.
func (e *Engine) assessConsistency(text string, meta *Metadata) (float64, []Label) {
	if meta == nil {
		// Absence of ground truth is itself a mild risk, distinct from
		// "checked and found nothing".
		return 0.1, []Label{{Low, "metadata missing; detailed consistency checks skipped"}}
	}

	var risk float64
	var labels []Label
	severeMismatch := false

	if price, raw, found, err := extractPrice(text); found && meta.Price != nil {
		if err != nil {
			labels = append(labels, Label{Low, "could not parse the price found in the text for comparison"})
		} else {
			metaPrice := decimal.NewFromFloat(*meta.Price)
			tolerance := decimal.Max(metaPrice.Mul(decimal.NewFromFloat(0.1)), decimal.NewFromInt(50))
			if price.Sub(metaPrice).Abs().GreaterThan(tolerance) {
				risk = math.Max(risk, 0.9)
				severeMismatch = true
				labels = append(labels, Label{High, fmt.Sprintf(
					"text price ('%s') severely contradicts the metadata price (%v)", raw, *meta.Price)})
			}
		}
	}

	if speed, found, err := extractSpeed(text); found {
		if metaSpeed, ok := specNumber(meta.Specs, "read_speed_mbps"); ok {
			if err != nil {
				labels = append(labels, Label{Low, "could not parse the speed claim found in the text"})
			} else if math.Abs(float64(speed)-metaSpeed) > metaSpeed*0.2 {
				risk = math.Max(risk, 0.9)
				severeMismatch = true
				labels = append(labels, Label{High, fmt.Sprintf(
					"claimed speed (%dMB/s) severely contradicts the metadata spec (%vMB/s)", speed, metaSpeed)})
			}
		}
	}

	if !severeMismatch {
		if color, ok := specString(meta.Specs, "color"); ok && color != "" {
			if !strings.Contains(strings.ToLower(text), strings.ToLower(color)) {
				risk += 0.15
				labels = append(labels, Label{Low, fmt.Sprintf(
					"metadata color ('%s') is never mentioned in the description", color)})
			}
		}

		if battery, ok := specNumber(meta.Specs, "battery_life_hours"); ok && battery != 0 {
			matched := false
			for _, h := range extractHours(text) {
				if math.Abs(float64(h)-battery) <= 2 {
					matched = true
					break
				}
			}
			if !matched {
				risk += 0.2
				labels = append(labels, Label{Low, fmt.Sprintf(
					"battery life in the text is missing or contradicts the metadata (%v hours)", battery)})
			}
		}
	}

	lower := strings.ToLower(text)
	suspicious := 0
	for _, kw := range suspiciousClaimKeywords {
		if strings.Contains(lower, kw) {
			suspicious++
		}
	}
	price := 0.0
	if meta.Price != nil {
		price = *meta.Price
	}
	category := strings.ToLower(meta.Category)
	switch {
	case suspicious >= e.t.SuspiciousKeywords && (price > 500 || category == "accessories"):
		risk += 0.5
		labels = append(labels, Label{Low, fmt.Sprintf(
			"text contains several suspicious or unverifiable claim keywords (%d), high risk given the price/category", suspicious)})
	case suspicious > 0:
		risk += 0.1
		labels = append(labels, Label{Low, fmt.Sprintf(
			"text contains suspicious claim keywords (%d)", suspicious)})
	}

	return clamp01(risk), labels
}
