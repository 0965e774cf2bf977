package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormValue carries a single form field. The dashboard form submits fields
// as strings, but JSON clients may send numbers; both decode to the raw
// textual value, which is forwarded to the model service verbatim.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	*v = FormValue(data)
	return nil
}

func (v FormValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

func (v FormValue) String() string {
	return string(v)
}

// Float coerces the field loosely. A value that does not parse reports
// ok=false so threshold rules treat it as "did not fire" instead of failing.
func (v FormValue) Float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int coerces the field to an integer, truncating fractional input.
func (v FormValue) Int() (int, bool) {
	f, ok := v.Float()
	if !ok {
		return 0, false
	}
	return int(f), true
}

// PatientInput is the flat record of the eleven form fields. All fields are
// required by the dashboard form; in lenient mode missing fields propagate
// as empty values rather than failing the submission.
type PatientInput struct {
	Age         FormValue `json:"age" validate:"required,numeric"`
	Gender      FormValue `json:"gender" validate:"required,oneof=1 2"`
	Height      FormValue `json:"height" validate:"required,numeric"`
	Weight      FormValue `json:"weight" validate:"required,numeric"`
	SystolicBP  FormValue `json:"ap_hi" validate:"required,numeric"`
	DiastolicBP FormValue `json:"ap_lo" validate:"required,numeric"`
	Cholesterol FormValue `json:"cholesterol" validate:"required,numeric"`
	Glucose     FormValue `json:"gluc" validate:"required,numeric"`
	Smoke       FormValue `json:"smoke" validate:"required,oneof=0 1"`
	Alcohol     FormValue `json:"alco" validate:"required,oneof=0 1"`
	Active      FormValue `json:"active" validate:"required,oneof=0 1"`
}

var validate = validator.New()

// Validate applies the strict parse mode: every field present and numeric,
// flags and gender restricted to their coded values.
func (p *PatientInput) Validate() error {
	return validate.Struct(p)
}

// BMI computes weight / height_m^2 from the raw fields. ok is false when
// either field is malformed or height is not positive.
func (p *PatientInput) BMI() (float64, bool) {
	height, hok := p.Height.Float()
	weight, wok := p.Weight.Float()
	if !hok || !wok || height <= 0 {
		return 0, false
	}
	heightM := height / 100
	return weight / (heightM * heightM), true
}

// GenderLabel renders the binary gender code for reports.
func (p *PatientInput) GenderLabel() string {
	if g, ok := p.Gender.Int(); ok && g == 1 {
		return "Male"
	}
	return "Female"
}

// Round1 rounds to one decimal place, the precision BMI is reported at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// YesNo renders a 0/1 flag field for reports.
func YesNo(v FormValue) string {
	if n, ok := v.Int(); ok && n == 1 {
		return "Yes"
	}
	return "No"
}
