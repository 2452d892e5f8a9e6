// Package rowcheck holds the per-entity required-field validators for CSV
// imports. Validators only check presence; parsing and range rules live in
// the import service. An empty string counts as missing.
package rowcheck

import "edupulse_backend/internals/features/imports/csvkit"

// CheckFunc returns "" when the row is acceptable, otherwise a short defect
// message naming the first missing required field.
type CheckFunc func(csvkit.Row) string

func Students(r csvkit.Row) string {
	return firstMissing(r, "studentId", "name", "email", "dob", "currentSemester")
}

func Attendance(r csvkit.Row) string {
	return firstMissing(r, "studentId", "courseId", "month", "attendancePercent")
}

func TestScores(r csvkit.Row) string {
	return firstMissing(r, "studentId", "courseId", "testDate", "score")
}

func Backlogs(r csvkit.Row) string {
	return firstMissing(r, "studentId", "courseId", "attempts", "cleared")
}

func Fees(r csvkit.Row) string {
	return firstMissing(r, "studentId", "dueDate", "status", "dueMonths")
}

func Projects(r csvkit.Row) string {
	return firstMissing(r, "studentId", "title", "startDate")
}

func Phd(r csvkit.Row) string {
	return firstMissing(r, "studentId", "title", "researchArea", "startDate")
}

func Fellowships(r csvkit.Row) string {
	return firstMissing(r, "studentId", "type", "amount", "duration", "startDate")
}

func MentalAssessments(r csvkit.Row) string {
	return firstMissing(r, "studentId", "assessmentDate",
		"stress", "anxiety", "depression", "sleepQuality",
		"academicPressure", "socialSupport", "overallWellness")
}

func Counseling(r csvkit.Row) string {
	return firstMissing(r, "studentId", "counselorName", "appointmentDate", "duration", "type", "status")
}

func Wellness(r csvkit.Row) string {
	return firstMissing(r, "studentId", "challengeType", "title", "description",
		"targetValue", "currentProgress", "startDate", "endDate", "status")
}

func Support(r csvkit.Row) string {
	return firstMissing(r, "studentId", "category", "priority", "subject",
		"description", "status", "isAnonymous", "createdAt")
}

var byKind = map[string]CheckFunc{
	"students":           Students,
	"attendance":         Attendance,
	"testscores":         TestScores,
	"backlogs":           Backlogs,
	"fees":               Fees,
	"projects":           Projects,
	"phd":                Phd,
	"fellowships":        Fellowships,
	"mental-assessments": MentalAssessments,
	"counseling":         Counseling,
	"wellness":           Wellness,
	"support":            Support,
}

// ForKind resolves the validator for an upload type tag.
func ForKind(kind string) (CheckFunc, bool) {
	f, ok := byKind[kind]
	return f, ok
}

// Kinds lists the recognized upload type tags.
func Kinds() []string {
	out := make([]string, 0, len(byKind))
	for k := range byKind {
		out = append(out, k)
	}
	return out
}

func firstMissing(r csvkit.Row, fields ...string) string {
	for _, f := range fields {
		if _, ok := r.Get(f); !ok {
			return "missing required field: " + f
		}
	}
	return ""
}
