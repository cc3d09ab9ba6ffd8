package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() CandidateForm {
	return CandidateForm{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Phone:   "919876543210",
		JobRole: "Backend Engineer",
	}
}

func TestCandidateForm_Valid(t *testing.T) {
	form := validForm()
	assert.Nil(t, form.Validate())
}

func TestCandidateForm_NormalizesBeforeValidation(t *testing.T) {
	form := CandidateForm{
		Name:    "  Asha Verma  ",
		Email:   "  ASHA@Example.COM ",
		Phone:   " 919876543210 ",
		JobRole: " Backend Engineer ",
	}

	require.Nil(t, form.Validate())
	assert.Equal(t, "Asha Verma", form.Name)
	assert.Equal(t, "asha@example.com", form.Email)
	assert.Equal(t, "919876543210", form.Phone)
	assert.Equal(t, "Backend Engineer", form.JobRole)
}

func TestCandidateForm_MissingFields(t *testing.T) {
	form := CandidateForm{}

	ferr := form.Validate()
	require.NotNil(t, ferr)
	assert.Equal(t, "Validation failed", ferr.Message)
	assert.Contains(t, ferr.Errors, "Name")
}

func TestCandidateForm_BadEmail(t *testing.T) {
	form := validForm()
	form.Email = "not-an-email"

	ferr := form.Validate()
	require.NotNil(t, ferr)
	assert.Contains(t, ferr.Errors, "Email")
}

func TestCandidateForm_BadPhone(t *testing.T) {
	form := validForm()
	form.Phone = "98-765-43210"

	ferr := form.Validate()
	require.NotNil(t, ferr)
	assert.Contains(t, ferr.Errors, "Phone")

	form = validForm()
	form.Phone = "1234567"
	require.NotNil(t, form.Validate())
}

func TestCandidateForm_Lite(t *testing.T) {
	form := validForm()
	lite := form.Lite("5/9/2025, 3:07:02 pm")
	assert.Equal(t, "Asha Verma", lite.Name)
	assert.Equal(t, "5/9/2025, 3:07:02 pm", lite.Datetime)
}

func TestUpdateCandidateForm_RequiresOriginalIdentity(t *testing.T) {
	form := UpdateCandidateForm{Updated: validForm()}

	ferr := form.Validate()
	require.NotNil(t, ferr)
	assert.Contains(t, ferr.Errors, "Name")
	assert.Contains(t, ferr.Errors, "Email")
}

func TestUpdateCandidateForm_Valid(t *testing.T) {
	form := UpdateCandidateForm{
		Original: CandidateKey{Name: "Asha Verma", Email: "asha@example.com"},
		Updated:  validForm(),
	}
	assert.Nil(t, form.Validate())
}

func TestDeleteCandidateForm_TrimsIdentity(t *testing.T) {
	form := DeleteCandidateForm{Name: " Asha ", Email: " asha@example.com "}

	require.Nil(t, form.Validate())
	assert.Equal(t, "Asha", form.Name)
	assert.Equal(t, "asha@example.com", form.Email)
}

func TestDecisionForm_RequiresEmail(t *testing.T) {
	form := DecisionForm{Email: "   "}
	require.NotNil(t, form.Validate())

	form = DecisionForm{Email: "asha@example.com"}
	assert.Nil(t, form.Validate())
}
