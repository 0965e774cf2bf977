package prediction

import (
	"math"
	"strings"
	"time"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
)

// MaxIndicatorOffset is the full arc length of the circular risk indicator
// in its drawing coordinate system.
const MaxIndicatorOffset = 565.0

const displayTimeFormat = "2006-01-02 15:04:05"

// Present maps a successful prediction onto the five independent pieces of
// display state. Each value is computed solely from the result.
func Present(result *model.PredictionResult) model.DisplayState {
	displayDate := result.Timestamp
	if displayDate == "" {
		displayDate = time.Now().Format(displayTimeFormat)
	}

	return model.DisplayState{
		DisplayDate:       displayDate,
		RiskLabel:         RiskLabel(result.RiskLevel),
		RiskClass:         result.RiskLevel,
		RiskPercent:       int(math.Round(result.RiskScore)),
		IndicatorOffset:   IndicatorOffset(result.RiskScore),
		ConfidencePercent: int(math.Round(result.Confidence)),
		ConfidenceWidth:   result.Confidence,
		Explanation:       result.Explanation,
	}
}

// IndicatorOffset maps a 0-100 risk score onto the indicator's stroke
// offset: 0 draws nothing, 100 draws the full arc.
func IndicatorOffset(riskScore float64) float64 {
	return MaxIndicatorOffset - (riskScore/100)*MaxIndicatorOffset
}

// RiskLabel renders the risk level tag with its first character upper-cased,
// suffixed with "Risk".
func RiskLabel(riskLevel string) string {
	if riskLevel == "" {
		return "Risk"
	}
	return strings.ToUpper(riskLevel[:1]) + riskLevel[1:] + " Risk"
}
