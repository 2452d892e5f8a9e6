package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edupulse_backend/internals/features/imports/csvkit"
)

func newTestImporter(store Store) *Importer {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return NewImporter(store, log)
}

func studentRow(code string) csvkit.Row {
	return csvkit.Row{
		"studentId":       code,
		"name":            "Asha",
		"email":           "asha@uni.edu",
		"dob":             "2003-01-15",
		"currentSemester": "4",
	}
}

func TestRunUnknownKind(t *testing.T) {
	im := newTestImporter(newFakeStore())
	_, err := im.Run(context.Background(), "gradebook", nil, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown import type")
}

func TestImportStudentCreateAssignsUploader(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)
	teacher := uuid.New()

	sum, err := im.Run(context.Background(), "students", []csvkit.Row{studentRow("S1")}, teacher)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)
	assert.Equal(t, 1, sum.Total)
	assert.Empty(t, sum.Errors)

	s := store.students["S1"]
	require.NotNil(t, s)
	require.NotNil(t, s.StudentTeacherID)
	assert.Equal(t, teacher, *s.StudentTeacherID)
	assert.Equal(t, 4, s.StudentSemester)
}

func TestImportStudentClaimsUnowned(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)
	teacher := uuid.New()

	// Seed an unowned student via a first import, then strip the owner.
	_, err := im.Run(context.Background(), "students", []csvkit.Row{studentRow("S1")}, teacher)
	require.NoError(t, err)
	store.students["S1"].StudentTeacherID = nil

	claimer := uuid.New()
	_, err = im.Run(context.Background(), "students", []csvkit.Row{studentRow("S1")}, claimer)
	require.NoError(t, err)

	require.NotNil(t, store.students["S1"].StudentTeacherID)
	assert.Equal(t, claimer, *store.students["S1"].StudentTeacherID)
}

func TestImportStudentNeverReassignsOwner(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)
	owner := uuid.New()

	_, err := im.Run(context.Background(), "students", []csvkit.Row{studentRow("S1")}, owner)
	require.NoError(t, err)

	// A second teacher re-uploads the same student with changed fields.
	row := studentRow("S1")
	row["name"] = "Asha Updated"
	row["currentSemester"] = "5"
	other := uuid.New()
	_, err = im.Run(context.Background(), "students", []csvkit.Row{row}, other)
	require.NoError(t, err)

	s := store.students["S1"]
	assert.Equal(t, owner, *s.StudentTeacherID, "owner must survive re-upload")
	assert.Equal(t, "Asha Updated", s.StudentName, "other fields still overwritten")
	assert.Equal(t, 5, s.StudentSemester)
}

func TestImportStudentAutoProvisionsBatch(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	row := studentRow("S1")
	row["batchId"] = "CSE2024B"
	sum, err := im.Run(context.Background(), "students", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)

	b := store.batches["CSE2024B"]
	require.NotNil(t, b)
	assert.Equal(t, "CSE", b.BatchDepartment)
	assert.Equal(t, 2024, b.BatchYear)
	assert.Equal(t, "B", b.BatchSection)

	course := store.courses["CSE_GENERAL"]
	require.NotNil(t, course)
	assert.Equal(t, "CSE", course.CourseDepartment)

	require.NotNil(t, store.students["S1"].StudentBatchCode)
	assert.Equal(t, "CSE2024B", *store.students["S1"].StudentBatchCode)
}

func TestImportStudentBadBatchCodeIsNonFatal(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	row := studentRow("S1")
	row["batchId"] = "notabatch"
	sum, err := im.Run(context.Background(), "students", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed, "student row still imports")
	assert.Nil(t, store.students["S1"].StudentBatchCode)
	assert.Empty(t, store.batches)
}

func TestImportStudentSemesterOutOfRange(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	row := studentRow("S1")
	row["currentSemester"] = "9"
	sum, err := im.Run(context.Background(), "students", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Processed)
	require.Len(t, sum.Errors, 1)
	assert.True(t, strings.HasPrefix(sum.Errors[0], "row 1: "))
	assert.Contains(t, sum.Errors[0], "currentSemester")
}

func TestImportAttendanceUpsertsOnTriple(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	row := csvkit.Row{
		"studentId":         "S1",
		"courseId":          "CSE101",
		"month":             "2024-03",
		"attendancePercent": "80",
	}
	_, err := im.Run(context.Background(), "attendance", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	require.Len(t, store.attendance, 1)

	// Same triple again with a new percent: update in place.
	row["attendancePercent"] = "92.5"
	sum, err := im.Run(context.Background(), "attendance", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)
	require.Len(t, store.attendance, 1)
	for _, a := range store.attendance {
		assert.Equal(t, 92.5, a.AttendancePercent)
	}

	// Different month creates a second record.
	row["month"] = "2024-04"
	_, err = im.Run(context.Background(), "attendance", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	assert.Len(t, store.attendance, 2)
}

func TestImportBacklogUpsertsOnPair(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	row := csvkit.Row{
		"studentId": "S1",
		"courseId":  "CSE101",
		"attempts":  "1",
		"cleared":   "false",
	}
	_, err := im.Run(context.Background(), "backlogs", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)

	row["attempts"] = "2"
	row["cleared"] = "true"
	_, err = im.Run(context.Background(), "backlogs", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)

	require.Len(t, store.backlogs, 1)
	b := store.backlogs["S1|CSE101"]
	assert.Equal(t, 2, b.BacklogAttempts)
	assert.True(t, b.BacklogCleared)
}

func TestImportTestScoresAreAppendOnly(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	row := csvkit.Row{
		"studentId": "S1",
		"courseId":  "CSE101",
		"testDate":  "2024-03-15",
		"score":     "74",
	}
	_, err := im.Run(context.Background(), "testscores", []csvkit.Row{row, row}, uuid.New())
	require.NoError(t, err)
	assert.Len(t, store.testScores, 2, "duplicates are two score events")
}

func TestImportFeeDefaultsAmount(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	row := csvkit.Row{
		"studentId": "S1",
		"dueDate":   "2024-06-01",
		"status":    "Pending",
		"dueMonths": "2",
	}
	_, err := im.Run(context.Background(), "fees", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	require.Len(t, store.fees, 1)
	assert.Equal(t, float64(50000), store.fees[0].FeePaymentAmount)
	assert.Nil(t, store.fees[0].FeePaymentPaidDate)

	row["amount"] = "12500"
	row["paidDate"] = "2024-05-20"
	_, err = im.Run(context.Background(), "fees", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, float64(12500), store.fees[1].FeePaymentAmount)
	require.NotNil(t, store.fees[1].FeePaymentPaidDate)
}

func TestImportProjectSupervisorIsUploader(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)
	teacher := uuid.New()

	row := csvkit.Row{
		"studentId": "S1",
		"title":     "Edge caching study",
		"startDate": "2024-01-10",
	}
	_, err := im.Run(context.Background(), "projects", []csvkit.Row{row}, teacher)
	require.NoError(t, err)
	require.Len(t, store.projects, 1)
	assert.Equal(t, teacher, store.projects[0].ProjectSupervisorID)
	assert.Equal(t, "Active", store.projects[0].ProjectStatus)
}

func TestImportAssessmentRiskScoreDefaultsToMean(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	row := csvkit.Row{
		"studentId":        "S1",
		"assessmentDate":   "2024-02-01",
		"stress":           "6",
		"anxiety":          "4",
		"depression":       "5",
		"sleepQuality":     "7",
		"academicPressure": "8",
		"socialSupport":    "5",
		"overallWellness":  "6",
	}
	_, err := im.Run(context.Background(), "mental-assessments", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	require.Len(t, store.assessments, 1)
	assert.InDelta(t, 5.0, store.assessments[0].AssessmentRiskScore, 0.0001)

	row["riskScore"] = "8.2"
	_, err = im.Run(context.Background(), "mental-assessments", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 8.2, store.assessments[1].AssessmentRiskScore)
}

func TestImportAssessmentMetricOutOfScale(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	row := csvkit.Row{
		"studentId":        "S1",
		"assessmentDate":   "2024-02-01",
		"stress":           "11",
		"anxiety":          "4",
		"depression":       "5",
		"sleepQuality":     "7",
		"academicPressure": "8",
		"socialSupport":    "5",
		"overallWellness":  "6",
	}
	sum, err := im.Run(context.Background(), "mental-assessments", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Processed)
	require.Len(t, sum.Errors, 1)
	assert.Contains(t, sum.Errors[0], "stress")
}

func TestImportCounselingDurationBounds(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	base := csvkit.Row{
		"studentId":       "S1",
		"counselorName":   "Dr. Rao",
		"appointmentDate": "2024-04-02",
		"type":            "Academic",
		"status":          "Scheduled",
	}

	for dur, wantOK := range map[string]bool{"15": true, "180": true, "10": false, "181": false} {
		row := csvkit.Row{}
		for k, v := range base {
			row[k] = v
		}
		row["duration"] = dur
		sum, err := im.Run(context.Background(), "counseling", []csvkit.Row{row}, uuid.New())
		require.NoError(t, err)
		if wantOK {
			assert.Equal(t, 1, sum.Processed, dur)
		} else {
			assert.Equal(t, 0, sum.Processed, dur)
		}
	}
}

func TestImportWellnessPointsDefault(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	row := csvkit.Row{
		"studentId":       "S1",
		"challengeType":   "Sleep",
		"title":           "Sleep 8 hours",
		"description":     "Track sleep for a month",
		"targetValue":     "30",
		"currentProgress": "7",
		"startDate":       "2024-03-01",
		"endDate":         "2024-03-31",
		"status":          "Active",
	}
	_, err := im.Run(context.Background(), "wellness", []csvkit.Row{row}, uuid.New())
	require.NoError(t, err)
	require.Len(t, store.challenges, 1)
	assert.Equal(t, 70, store.challenges[0].ChallengePoints)
}

func TestRunErrorTruncation(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	rows := make([]csvkit.Row, 0, 50)
	for i := 0; i < 50; i++ {
		row := studentRow(fmt.Sprintf("S%d", i))
		row["currentSemester"] = "99"
		rows = append(rows, row)
	}
	sum, err := im.Run(context.Background(), "students", rows, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Processed)
	assert.Equal(t, 50, sum.Total)
	assert.Len(t, sum.Errors, MaxReportedErrors)
	assert.True(t, strings.HasPrefix(sum.Errors[0], "row 1: "))
	assert.True(t, strings.HasPrefix(sum.Errors[9], "row 10: "))
}

func TestRunPerRowIsolation(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	good := studentRow("S1")
	bad := studentRow("S2")
	bad["dob"] = "not-a-date"
	alsoGood := studentRow("S3")

	sum, err := im.Run(context.Background(), "students", []csvkit.Row{good, bad, alsoGood}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Processed)
	assert.Equal(t, 3, sum.Total)
	require.Len(t, sum.Errors, 1)
	assert.True(t, strings.HasPrefix(sum.Errors[0], "row 2: "))
	assert.NotNil(t, store.students["S1"])
	assert.Nil(t, store.students["S2"])
	assert.NotNil(t, store.students["S3"])
}

func TestRunStorageFailureIsPerRow(t *testing.T) {
	store := newFakeStore()
	store.failOn = "CreateStudent"
	im := newTestImporter(store)

	sum, err := im.Run(context.Background(), "students", []csvkit.Row{studentRow("S1")}, uuid.New())
	require.NoError(t, err, "storage errors stay inside the row report")
	assert.Equal(t, 0, sum.Processed)
	require.Len(t, sum.Errors, 1)
	assert.Contains(t, sum.Errors[0], "forced CreateStudent failure")
}

func TestRunEndToEndFromCSV(t *testing.T) {
	store := newFakeStore()
	im := newTestImporter(store)

	csv := strings.Join([]string{
		"studentId,name,email,dob,currentSemester,batchId",
		"S1,Asha,asha@uni.edu,2003-01-15,4,CSE2024B",
		"S2,Binod,binod@uni.edu,2002-11-02,4,CSE2024B",
		"S3,Chitra,chitra@uni.edu,2003-05-20,banana,CSE2024B",
	}, "\n")

	rows := csvkit.Parse(csv)
	require.Len(t, rows, 3)

	sum, err := im.Run(context.Background(), "students", rows, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Processed)
	assert.Equal(t, 3, sum.Total)
	require.Len(t, sum.Errors, 1)
	assert.True(t, strings.HasPrefix(sum.Errors[0], "row 3: "))

	// One batch + one course provisioned for the whole file.
	assert.Len(t, store.batches, 1)
	assert.Len(t, store.courses, 1)
}
