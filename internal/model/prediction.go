package model

// Risk level tags as returned by the model service. Case-sensitive,
// lower-case.
const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// PredictionResult is the model service's response body. BMI is not part of
// the wire contract; it is computed from the patient input and attached
// before the pair is cached, so reports can render it.
type PredictionResult struct {
	Status      string  `json:"status"`
	Prediction  int     `json:"prediction,omitempty"`
	RiskLevel   string  `json:"risk_level"`
	RiskScore   float64 `json:"risk_score"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
	Timestamp   string  `json:"timestamp,omitempty"`
	BMI         float64 `json:"bmi,omitempty"`
}

// CurrentPrediction is the single-slot pair cached per session after a
// successful prediction. Overwritten whole on each success, never merged.
type CurrentPrediction struct {
	Result *PredictionResult `json:"result"`
	Input  *PatientInput     `json:"input_data"`
}

// DisplayState is the presenter's view of a successful prediction: the five
// independent pieces of UI state the dashboard renders.
type DisplayState struct {
	DisplayDate       string  `json:"display_date"`
	RiskLabel         string  `json:"risk_label"`
	RiskClass         string  `json:"risk_class"`
	RiskPercent       int     `json:"risk_percent"`
	IndicatorOffset   float64 `json:"indicator_offset"`
	ConfidencePercent int     `json:"confidence_percent"`
	ConfidenceWidth   float64 `json:"confidence_width"`
	Explanation       string  `json:"explanation"`
}
