package interpretation

import (
	"strings"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
)

const (
	advisoryPrefix = "Clinical Interpretation (Advisory Only): "
	disclaimer     = "Consult a healthcare professional for a personalized plan."
	healthyHabits  = "Maintain your current healthy lifestyle habits. Regular check-ups are still recommended."
)

// Generate derives advisory text from the raw patient input using fixed
// clinical thresholds. Pure: identical input yields identical output, rules
// evaluate in fixed order, and malformed numeric fields simply fail to fire
// their rule. Never returns an error.
func Generate(input *model.PatientInput) string {
	var advice []string

	if chol, ok := input.Cholesterol.Float(); ok {
		if chol >= 240 {
			advice = append(advice, "Reducing cholesterol intake and medication may be required.")
		} else if chol >= 200 {
			advice = append(advice, "Dietary changes to lower cholesterol are recommended.")
		}
	}

	if gluc, ok := input.Glucose.Float(); ok {
		if gluc >= 126 {
			advice = append(advice, "Blood sugar management is critical; consult a specialist.")
		} else if gluc >= 100 {
			advice = append(advice, "Monitor blood sugar levels and limit sugar intake.")
		}
	}

	apHi, hiOK := input.SystolicBP.Float()
	apLo, loOK := input.DiastolicBP.Float()
	if (hiOK && apHi >= 140) || (loOK && apLo >= 90) {
		advice = append(advice, "Blood pressure management through diet and exercise is advised.")
	}

	if smoke, ok := input.Smoke.Int(); ok && smoke == 1 {
		advice = append(advice, "Stopping smoking is the single best step for heart health.")
	}

	if active, ok := input.Active.Int(); ok && active == 0 {
		advice = append(advice, "Incorporating regular moderate physical activity is highly beneficial.")
	}

	if bmi, ok := input.BMI(); ok && bmi > 30 {
		advice = append(advice, "Weight management strategies should be discussed with a provider.")
	}

	if len(advice) == 0 {
		return healthyHabits
	}

	return advisoryPrefix + strings.Join(advice, " ") + " " + disclaimer
}
