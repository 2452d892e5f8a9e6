package rowcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edupulse_backend/internals/features/imports/csvkit"
)

func TestStudentsFirstMissingWins(t *testing.T) {
	msg := Students(csvkit.Row{"studentId": "S1"})
	assert.Equal(t, "missing required field: name", msg)

	msg = Students(csvkit.Row{"studentId": "S1", "name": "Asha", "email": "a@b.edu"})
	assert.Equal(t, "missing required field: dob", msg)
}

func TestStudentsComplete(t *testing.T) {
	row := csvkit.Row{
		"studentId":       "S1",
		"name":            "Asha",
		"email":           "a@b.edu",
		"dob":             "2003-01-15",
		"currentSemester": "4",
	}
	assert.Empty(t, Students(row))
}

func TestOptionalFieldsNotRequired(t *testing.T) {
	// batchId is optional for students; paidDate for fees.
	row := csvkit.Row{
		"studentId":       "S1",
		"name":            "Asha",
		"email":           "a@b.edu",
		"dob":             "2003-01-15",
		"currentSemester": "4",
	}
	assert.Empty(t, Students(row))

	fee := csvkit.Row{
		"studentId": "S1",
		"dueDate":   "2025-01-01",
		"status":    "Pending",
		"dueMonths": "2",
	}
	assert.Empty(t, Fees(fee))
}

func TestForKindKnowsAllTags(t *testing.T) {
	for _, kind := range []string{
		"students", "attendance", "testscores", "backlogs", "fees",
		"projects", "phd", "fellowships", "mental-assessments",
		"counseling", "wellness", "support",
	} {
		_, ok := ForKind(kind)
		assert.True(t, ok, kind)
	}
	_, ok := ForKind("gradebook")
	assert.False(t, ok)
}

func TestKindsCount(t *testing.T) {
	assert.Len(t, Kinds(), 12)
}
