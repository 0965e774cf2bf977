package interpretation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
)

func healthyInput() *model.PatientInput {
	return &model.PatientInput{
		Age: "35", Gender: "2", Height: "170", Weight: "65",
		SystolicBP: "115", DiastolicBP: "75", Cholesterol: "180",
		Glucose: "90", Smoke: "0", Alcohol: "0", Active: "1",
	}
}

func TestGenerateHealthy(t *testing.T) {
	got := Generate(healthyInput())
	assert.Equal(t, "Maintain your current healthy lifestyle habits. Regular check-ups are still recommended.", got)
}

func TestGenerateAllRulesInOrder(t *testing.T) {
	input := &model.PatientInput{
		Age: "58", Gender: "1", Height: "165", Weight: "95",
		SystolicBP: "150", DiastolicBP: "95", Cholesterol: "250",
		Glucose: "130", Smoke: "1", Alcohol: "1", Active: "0",
	}

	want := "Clinical Interpretation (Advisory Only): " +
		"Reducing cholesterol intake and medication may be required. " +
		"Blood sugar management is critical; consult a specialist. " +
		"Blood pressure management through diet and exercise is advised. " +
		"Stopping smoking is the single best step for heart health. " +
		"Incorporating regular moderate physical activity is highly beneficial. " +
		"Weight management strategies should be discussed with a provider. " +
		"Consult a healthcare professional for a personalized plan."

	assert.Equal(t, want, Generate(input))
}

func TestGenerateBorderlineThresholds(t *testing.T) {
	input := healthyInput()
	input.Cholesterol = "200"
	input.Glucose = "100"

	got := Generate(input)
	assert.Contains(t, got, "Dietary changes to lower cholesterol are recommended.")
	assert.Contains(t, got, "Monitor blood sugar levels and limit sugar intake.")
	assert.NotContains(t, got, "medication may be required")
	assert.NotContains(t, got, "critical")
}

func TestGenerateBloodPressureEitherBound(t *testing.T) {
	hi := healthyInput()
	hi.SystolicBP = "140"
	assert.Contains(t, Generate(hi), "Blood pressure management")

	lo := healthyInput()
	lo.DiastolicBP = "90"
	assert.Contains(t, Generate(lo), "Blood pressure management")
}

func TestGenerateMalformedFieldDoesNotFire(t *testing.T) {
	input := healthyInput()
	input.Cholesterol = "very high"

	got := Generate(input)
	assert.NotContains(t, got, "cholesterol")
}

func TestGenerateIsPure(t *testing.T) {
	input := healthyInput()
	input.Smoke = "1"

	first := Generate(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Generate(input))
	}
}
