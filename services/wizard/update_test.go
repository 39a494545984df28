package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildSubmitUpdateEncodesTristates(t *testing.T) {
	step := mustStep(t, "personal-data")

	update, err := BuildSubmitUpdate(step, map[string]any{
		"firstName":                    "Ana",
		"otherNamesConfirmation":       "Não",
		"otherNationalityConfirmation": "Sim",
		"otherNationalityCountry":      "Portugal",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", update["personalData.firstName"])
	assert.Equal(t, false, update["personalData.otherNamesConfirmation"])
	assert.Equal(t, true, update["personalData.otherNationalityConfirmation"])
	assert.Equal(t, "Portugal", update["personalData.otherNationalityCountry"])
}

func TestBuildSubmitUpdateParsesDates(t *testing.T) {
	step := mustStep(t, "personal-data")

	update, err := BuildSubmitUpdate(step, map[string]any{
		"birthDate": "1990-12-31",
	})
	require.NoError(t, err)

	d, ok := update["personalData.birthDate"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 1990, d.Year())
	assert.Equal(t, time.December, d.Month())

	_, err = BuildSubmitUpdate(step, map[string]any{"birthDate": "31/12/1990"})
	assert.Error(t, err)
}

func TestBuildSubmitUpdateOverwritesWithBlank(t *testing.T) {
	step := mustStep(t, "work-education")

	update, err := BuildSubmitUpdate(step, map[string]any{
		"occupation": "",
	})
	require.NoError(t, err)
	assert.Equal(t, "", update["workEducation.occupation"])
}

func TestBuildSaveUpdateSkipsEmptyValues(t *testing.T) {
	step := mustStep(t, "work-education")

	update, err := BuildSaveUpdate(step, map[string]any{
		"occupation":   "",
		"office":       "Developer",
		"previousJobs": []any{},
	})
	require.NoError(t, err)

	// A blank draft value never clears a stored answer.
	assert.NotContains(t, update, "workEducation.occupation")
	assert.NotContains(t, update, "workEducation.previousJobs")
	assert.Equal(t, "Developer", update["workEducation.office"])
}

func TestBuildSaveUpdateAbsentKeysUntouched(t *testing.T) {
	step := mustStep(t, "work-education")

	update, err := BuildSaveUpdate(step, map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, update)
}

func TestBuildUpdateUnansweredTristateSkipped(t *testing.T) {
	step := mustStep(t, "security")

	update, err := BuildSaveUpdate(step, map[string]any{
		"crimeConfirmation":    "",
		"deportedConfirmation": "Sim",
	})
	require.NoError(t, err)
	assert.NotContains(t, update, "security.crimeConfirmation")
	assert.Equal(t, true, update["security.deportedConfirmation"])
}

func TestBuildUpdateListsReplaceWholesale(t *testing.T) {
	step := mustStep(t, "passport")

	update, err := BuildSubmitUpdate(step, map[string]any{
		"passportLostConfirmation": "Sim",
		"lostPassports": []any{
			map[string]any{
				"number":  "FD123456",
				"country": "Brasil",
				"details": "stolen in transit",
				"ignored": "dropped",
			},
		},
	})
	require.NoError(t, err)

	records, ok := update["passport.lostPassports"].([]bson.M)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "Brasil", records[0]["country"])
	assert.NotContains(t, records[0], "ignored")
}

func TestConvertRecordsDropsUnknownKeys(t *testing.T) {
	step := mustStep(t, "passport")
	var listField Field
	for _, f := range step.Fields {
		if f.Name == "lostPassports" {
			listField = f
		}
	}
	require.NotEmpty(t, listField.Name)

	out, err := convertRecords(listField, []map[string]any{
		{"number": "FD123456", "country": "Brasil", "details": "stolen", "extra": "x"},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "FD123456", out[0]["number"])
	assert.NotContains(t, out[0], "extra")
}

func TestConvertRecordsParsesEntryDates(t *testing.T) {
	step := mustStep(t, "previous-travel")
	var listField Field
	for _, f := range step.Fields {
		if f.Name == "usaLastTravels" {
			listField = f
		}
	}
	require.NotEmpty(t, listField.Name)

	out, err := convertRecords(listField, []map[string]any{
		{"arriveDate": "2019-07-04", "estimatedTime": "2 weeks"},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	d, ok := out[0]["arriveDate"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2019, d.Year())

	_, err = convertRecords(listField, []map[string]any{
		{"arriveDate": "04/07/2019", "estimatedTime": "2 weeks"},
	})
	assert.Error(t, err)
}
