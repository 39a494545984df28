package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStep(t *testing.T, slug string) Step {
	t.Helper()
	step, ok := StepBySlug(slug)
	require.True(t, ok, "step %s not registered", slug)
	return step
}

func TestValidateStepUnansweredTristate(t *testing.T) {
	step := mustStep(t, "personal-data")

	errs := ValidateStep(step, map[string]any{
		"otherNamesConfirmation":       "",
		"otherNationalityConfirmation": "Não",
	})
	assert.Equal(t, "selection required", errs["otherNamesConfirmation"])
	assert.NotContains(t, errs, "otherNationalityConfirmation")
}

func TestValidateStepRejectsUnknownTristateValue(t *testing.T) {
	step := mustStep(t, "personal-data")

	errs := ValidateStep(step, map[string]any{
		"otherNamesConfirmation":       "Yes",
		"otherNationalityConfirmation": "Sim",
		"otherNationalityCountry":      "Portugal",
	})
	assert.Equal(t, "selection required", errs["otherNamesConfirmation"])
}

func TestValidateStepDetailRequiredOnlyWhenGateIsYes(t *testing.T) {
	step := mustStep(t, "personal-data")

	base := map[string]any{
		"otherNamesConfirmation":       "Não",
		"otherNationalityConfirmation": "Sim",
		"otherNationalityCountry":      "",
	}
	errs := ValidateStep(step, base)
	assert.Equal(t, "required", errs["otherNationalityCountry"])
	assert.NotContains(t, errs, "otherNames")

	base["otherNationalityConfirmation"] = "Não"
	errs = ValidateStep(step, base)
	assert.NotContains(t, errs, "otherNationalityCountry")
}

func TestValidateStepUngatedTextIsOptional(t *testing.T) {
	step := mustStep(t, "personal-data")

	errs := ValidateStep(step, map[string]any{
		"otherNamesConfirmation":       "Não",
		"otherNationalityConfirmation": "Não",
		"firstName":                    "",
	})
	assert.NotContains(t, errs, "firstName")
	assert.NotContains(t, errs, "usSocialSecurityNumber")
}

func TestValidateStepDateFormats(t *testing.T) {
	step := mustStep(t, "personal-data")

	fields := map[string]any{
		"otherNamesConfirmation":       "Não",
		"otherNationalityConfirmation": "Não",
		"birthDate":                    "31/12/1990",
	}
	errs := ValidateStep(step, fields)
	assert.Equal(t, "invalid date", errs["birthDate"])

	fields["birthDate"] = "1990-12-31"
	errs = ValidateStep(step, fields)
	assert.NotContains(t, errs, "birthDate")

	// Absent date on an ungated field is fine.
	delete(fields, "birthDate")
	errs = ValidateStep(step, fields)
	assert.NotContains(t, errs, "birthDate")
}

func TestValidateStepSecurityDetails(t *testing.T) {
	step := mustStep(t, "security")

	fields := map[string]any{}
	for _, q := range securityQuestions {
		fields[q] = "Não"
	}
	errs := ValidateStep(step, fields)
	assert.Empty(t, errs)

	// One "Sim" answer demands its detail text; crimeConfirmation keeps the
	// legacy detail name.
	fields["crimeConfirmation"] = "Sim"
	errs = ValidateStep(step, fields)
	assert.Equal(t, "required", errs["crimeConfirmationDetails"])

	fields["crimeConfirmationDetails"] = "shoplifting conviction in 2004"
	errs = ValidateStep(step, fields)
	assert.Empty(t, errs)
}

func TestValidateStepSecurityAllUnanswered(t *testing.T) {
	step := mustStep(t, "security")

	errs := ValidateStep(step, map[string]any{})
	assert.Len(t, errs, len(securityQuestions))
	for _, q := range securityQuestions {
		assert.Equal(t, "selection required", errs[q])
	}
}

func TestValidateStepRecordListWholeCollection(t *testing.T) {
	step := mustStep(t, "work-education")

	fields := map[string]any{
		"previousJobConfirmation": "Sim",
		"courseConfirmation":      "Não",
		"previousJobs": []any{
			map[string]any{
				"companyName":   "Acme Ltda",
				"office":        "Analyst",
				"admissionDate": "2015-03-01",
			},
			map[string]any{
				"companyName":   "",
				"office":        "Clerk",
				"admissionDate": "not-a-date",
			},
		},
	}
	errs := ValidateStep(step, fields)
	assert.NotContains(t, errs, "previousJobs[0].companyName")
	assert.Equal(t, "required", errs["previousJobs[1].companyName"])
	assert.Equal(t, "invalid date", errs["previousJobs[1].admissionDate"])
}

func TestValidateStepRecordListEmptyWhenGateIsYes(t *testing.T) {
	step := mustStep(t, "passport")

	fields := map[string]any{
		"passportLostConfirmation": "Sim",
		"lostPassports":            []any{},
	}
	errs := ValidateStep(step, fields)
	assert.Equal(t, "required", errs["lostPassports"])
}

func TestValidateStepRecordListIgnoredWhenGateIsNo(t *testing.T) {
	step := mustStep(t, "passport")

	fields := map[string]any{
		"passportLostConfirmation": "Não",
		"lostPassports": []any{
			map[string]any{"number": "", "country": "", "details": ""},
		},
	}
	errs := ValidateStep(step, fields)
	assert.Empty(t, errs)
}

func TestValidateStepFirstErrorPerFieldWins(t *testing.T) {
	errs := FieldErrors{}
	errs.add("field", "first")
	errs.add("field", "second")
	assert.Equal(t, "first", errs["field"])
}
