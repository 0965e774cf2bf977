package report

import (
	"fmt"
	"time"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
	"github.com/twinkal0201/cardio-70-AI/internal/service/interpretation"
)

const (
	brandName     = "Cardio70"
	brandSubtitle = "AI-Based Cardiovascular Risk Prediction Analysis"
	footerLeft    = "Generated by: Cardio70 - AI Health Prediction System"
	footerRight   = "© Cardio70"

	disclaimerTitle = "Disclaimer:"
	disclaimerBody  = "This report is generated by an artificial intelligence (AI) model and is " +
		"intended solely for educational and informational purposes. It does not constitute " +
		"medical advice, diagnosis, or treatment. The predictions may not be hundred percentage " +
		"accurate. Also consult a qualified healthcare professional adviser for medical " +
		"evaluation and decisions."
)

// Compose assembles the report as an ordered list of section descriptors.
// Content assembly is decoupled from drawing: the layout engine and the
// renderers consume the same descriptors.
func Compose(pair *model.CurrentPrediction, reportID string, generatedAt time.Time) []Section {
	input := pair.Input
	result := pair.Result
	clinicalNote := interpretation.Generate(input)

	return []Section{
		&HeaderSection{
			Brand:    brandName,
			Subtitle: brandSubtitle,
			Meta:     fmt.Sprintf("Report ID: %s   |   Date: %s", reportID, generatedAt.Format("2006-01-02 15:04:05")),
		},
		&KeyValueSection{
			Title: "Patient Information",
			Pairs: []KVPair{
				{Label: "Age", Value: fmt.Sprintf("%s years", input.Age)},
				{Label: "Gender", Value: input.GenderLabel()},
				{Label: "Height", Value: fmt.Sprintf("%s cm", input.Height)},
				{Label: "Weight", Value: fmt.Sprintf("%s kg", input.Weight)},
				{Label: "Blood Pressure", Value: fmt.Sprintf("%s/%s mmHg", input.SystolicBP, input.DiastolicBP)},
				{Label: "BMI", Value: fmt.Sprintf("%.1f", result.BMI)},
				{Label: "Cholesterol", Value: fmt.Sprintf("%s mg/dL", input.Cholesterol)},
				{Label: "Glucose", Value: fmt.Sprintf("%s mg/dL", input.Glucose)},
				{Label: "Smoking", Value: model.YesNo(input.Smoke)},
				{Label: "Alcohol", Value: model.YesNo(input.Alcohol)},
				{Label: "Physical Activity", Value: model.YesNo(input.Active)},
			},
		},
		&SummarySection{
			Title:      "Prediction Summary",
			RiskLevel:  result.RiskLevel,
			Confidence: result.Confidence,
			RiskScore:  result.RiskScore,
		},
		&TextSection{
			Title: "AI Explanation",
			Body:  result.Explanation,
		},
		&TextSection{
			Title:  "Clinical Interpretation",
			Body:   clinicalNote,
			Italic: true,
		},
		&DisclaimerSection{
			Title: disclaimerTitle,
			Body:  disclaimerBody,
		},
		&FooterSection{
			Left:  footerLeft,
			Right: footerRight,
		},
	}
}
