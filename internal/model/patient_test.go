package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValueUnmarshal(t *testing.T) {
	var input PatientInput
	body := `{"age":"52","gender":2,"height":165,"weight":"70","ap_hi":120,"ap_lo":80,"cholesterol":"190","gluc":95,"smoke":0,"alco":"0","active":1}`
	require.NoError(t, json.Unmarshal([]byte(body), &input))

	assert.Equal(t, FormValue("52"), input.Age)
	assert.Equal(t, FormValue("2"), input.Gender)
	assert.Equal(t, FormValue("165"), input.Height)
	assert.Equal(t, FormValue("1"), input.Active)
}

func TestFormValueUnmarshalNull(t *testing.T) {
	var input PatientInput
	require.NoError(t, json.Unmarshal([]byte(`{"age":null}`), &input))
	assert.Equal(t, FormValue(""), input.Age)
}

func TestFormValueMarshalAsString(t *testing.T) {
	input := PatientInput{Age: "52"}
	data, err := json.Marshal(&input)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"age":"52"`)
}

func TestFormValueFloat(t *testing.T) {
	tests := []struct {
		value FormValue
		want  float64
		ok    bool
	}{
		{"120", 120, true},
		{" 82.4 ", 82.4, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.value.Float()
		assert.Equal(t, tt.ok, ok, "value %q", tt.value)
		assert.Equal(t, tt.want, got, "value %q", tt.value)
	}
}

func TestBMI(t *testing.T) {
	input := PatientInput{Height: "165", Weight: "70"}
	bmi, ok := input.BMI()
	require.True(t, ok)
	assert.InDelta(t, 25.7, Round1(bmi), 0.001)

	zero := PatientInput{Height: "0", Weight: "70"}
	_, ok = zero.BMI()
	assert.False(t, ok)

	bad := PatientInput{Height: "tall", Weight: "70"}
	_, ok = bad.BMI()
	assert.False(t, ok)
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "Male", (&PatientInput{Gender: "1"}).GenderLabel())
	assert.Equal(t, "Female", (&PatientInput{Gender: "2"}).GenderLabel())
	assert.Equal(t, "Female", (&PatientInput{Gender: ""}).GenderLabel())
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo("1"))
	assert.Equal(t, "No", YesNo("0"))
	assert.Equal(t, "No", YesNo(""))
}

func TestValidateStrict(t *testing.T) {
	valid := PatientInput{
		Age: "52", Gender: "1", Height: "165", Weight: "70",
		SystolicBP: "120", DiastolicBP: "80", Cholesterol: "190",
		Glucose: "95", Smoke: "0", Alcohol: "0", Active: "1",
	}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.Age = ""
	assert.Error(t, missing.Validate())

	badFlag := valid
	badFlag.Smoke = "2"
	assert.Error(t, badFlag.Validate())

	badNumber := valid
	badNumber.Height = "tall"
	assert.Error(t, badNumber.Validate())
}
