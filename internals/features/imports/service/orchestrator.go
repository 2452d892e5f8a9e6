// Package service runs validated CSV rows through domain coercion and
// idempotent storage writes. Rows are processed strictly in file order, one
// at a time, so later rows can rely on entities provisioned by earlier ones.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	attendanceModel "edupulse_backend/internals/features/academics/attendance/model"
	scoreModel "edupulse_backend/internals/features/academics/scores/model"
	studentModel "edupulse_backend/internals/features/academics/students/model"
	feeModel "edupulse_backend/internals/features/finance/fees/model"
	researchModel "edupulse_backend/internals/features/research/model"
	wellnessModel "edupulse_backend/internals/features/wellness/model"

	"edupulse_backend/internals/features/imports/csvkit"
	"edupulse_backend/internals/features/imports/rowcheck"
)

// Only the first errors are reported back; the full batch still runs and
// counts toward the totals.
const MaxReportedErrors = 10

type Summary struct {
	Processed int      `json:"processed"`
	Total     int      `json:"total"`
	Errors    []string `json:"errors"`
}

type Importer struct {
	store Store
	log   logrus.FieldLogger
}

func NewImporter(store Store, log logrus.FieldLogger) *Importer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Importer{store: store, log: log}
}

// Run processes one upload batch with per-row isolation: a failing row is
// recorded and skipped, never aborting the rest. Row indexes in error
// messages are 1-based over data rows.
func (im *Importer) Run(ctx context.Context, kind string, rows []csvkit.Row, teacherID uuid.UUID) (Summary, error) {
	check, ok := rowcheck.ForKind(kind)
	if !ok {
		return Summary{}, fmt.Errorf("unknown import type %q", kind)
	}

	sum := Summary{Total: len(rows)}
	for i, row := range rows {
		if err := im.runRow(ctx, kind, check, row, teacherID); err != nil {
			if len(sum.Errors) < MaxReportedErrors {
				sum.Errors = append(sum.Errors, fmt.Sprintf("row %d: %s", i+1, err.Error()))
			}
			im.log.WithField("kind", kind).WithField("row", i+1).WithError(err).Warn("row skipped")
			continue
		}
		sum.Processed++
	}

	im.log.WithFields(logrus.Fields{
		"kind":      kind,
		"processed": sum.Processed,
		"total":     sum.Total,
		"failed":    sum.Total - sum.Processed,
	}).Info("import finished")
	return sum, nil
}

func (im *Importer) runRow(ctx context.Context, kind string, check rowcheck.CheckFunc, row csvkit.Row, teacherID uuid.UUID) error {
	if msg := check(row); msg != "" {
		return validationDefect(msg)
	}

	switch kind {
	case "students":
		return im.importStudent(ctx, row, teacherID)
	case "attendance":
		return im.importAttendance(ctx, row)
	case "testscores":
		return im.importTestScore(ctx, row)
	case "backlogs":
		return im.importBacklog(ctx, row)
	case "fees":
		return im.importFee(ctx, row)
	case "projects":
		return im.importProject(ctx, row, teacherID)
	case "phd":
		return im.importPhd(ctx, row, teacherID)
	case "fellowships":
		return im.importFellowship(ctx, row, teacherID)
	case "mental-assessments":
		return im.importAssessment(ctx, row)
	case "counseling":
		return im.importCounseling(ctx, row)
	case "wellness":
		return im.importWellness(ctx, row)
	case "support":
		return im.importSupport(ctx, row)
	}
	return fmt.Errorf("unknown import type %q", kind)
}

// importStudent carries the ownership contract: a teacher once assigned is
// never silently reassigned. New students get the uploader as owner;
// existing unowned students are claimed; owned students keep their owner
// while every other field is overwritten from the row.
func (im *Importer) importStudent(ctx context.Context, row csvkit.Row, teacherID uuid.UUID) error {
	code := row["studentId"]

	dob, defect := parseDate("dob", row["dob"])
	if defect != nil {
		return defect
	}
	semester, defect := parseIntRange("currentSemester", row["currentSemester"], 1, 8)
	if defect != nil {
		return defect
	}

	var batchCode *string
	if bc, ok := row.Get("batchId"); ok {
		batchCode = im.ensureBatch(ctx, bc)
	}

	existing, err := im.store.FindStudentByCode(ctx, code)
	if err != nil {
		return storageDefect(err)
	}

	if existing == nil {
		s := &studentModel.StudentModel{
			StudentCode:      code,
			StudentName:      row["name"],
			StudentEmail:     row["email"],
			StudentDOB:       dob,
			StudentSemester:  semester,
			StudentBatchCode: batchCode,
			StudentTeacherID: &teacherID,
		}
		if err := im.store.CreateStudent(ctx, s); err != nil {
			return storageDefect(err)
		}
		return nil
	}

	existing.StudentName = row["name"]
	existing.StudentEmail = row["email"]
	existing.StudentDOB = dob
	existing.StudentSemester = semester
	if batchCode != nil {
		existing.StudentBatchCode = batchCode
	}
	if existing.StudentTeacherID == nil {
		existing.StudentTeacherID = &teacherID
	}
	if err := im.store.UpdateStudent(ctx, existing); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importAttendance(ctx context.Context, row csvkit.Row) error {
	month, defect := parseMonth("month", row["month"])
	if defect != nil {
		return defect
	}
	percent, defect := parseFloatRange("attendancePercent", row["attendancePercent"], 0, 100)
	if defect != nil {
		return defect
	}

	existing, err := im.store.FindAttendance(ctx, row["studentId"], row["courseId"], month)
	if err != nil {
		return storageDefect(err)
	}
	if existing != nil {
		existing.AttendancePercent = percent
		if err := im.store.UpdateAttendance(ctx, existing); err != nil {
			return storageDefect(err)
		}
		return nil
	}

	a := &attendanceModel.AttendanceModel{
		AttendanceStudentCode: row["studentId"],
		AttendanceCourseCode:  row["courseId"],
		AttendanceMonth:       month,
		AttendancePercent:     percent,
	}
	if err := im.store.CreateAttendance(ctx, a); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importTestScore(ctx context.Context, row csvkit.Row) error {
	date, defect := parseDate("testDate", row["testDate"])
	if defect != nil {
		return defect
	}
	score, defect := parseFloatRange("score", row["score"], 0, 100)
	if defect != nil {
		return defect
	}

	t := &scoreModel.TestScoreModel{
		TestScoreStudentCode: row["studentId"],
		TestScoreCourseCode:  row["courseId"],
		TestScoreDate:        date,
		TestScoreValue:       score,
	}
	if err := im.store.CreateTestScore(ctx, t); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importBacklog(ctx context.Context, row csvkit.Row) error {
	attempts, defect := parseIntMin("attempts", row["attempts"], 1)
	if defect != nil {
		return defect
	}
	cleared := parseBool(row["cleared"])

	existing, err := im.store.FindBacklog(ctx, row["studentId"], row["courseId"])
	if err != nil {
		return storageDefect(err)
	}
	if existing != nil {
		existing.BacklogAttempts = attempts
		existing.BacklogCleared = cleared
		if err := im.store.UpdateBacklog(ctx, existing); err != nil {
			return storageDefect(err)
		}
		return nil
	}

	b := &scoreModel.BacklogModel{
		BacklogStudentCode: row["studentId"],
		BacklogCourseCode:  row["courseId"],
		BacklogAttempts:    attempts,
		BacklogCleared:     cleared,
	}
	if err := im.store.CreateBacklog(ctx, b); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importFee(ctx context.Context, row csvkit.Row) error {
	dueDate, defect := parseDate("dueDate", row["dueDate"])
	if defect != nil {
		return defect
	}
	dueMonths, defect := parseIntMin("dueMonths", row["dueMonths"], 1)
	if defect != nil {
		return defect
	}

	amount := float64(feeModel.FeeDefaultAmount)
	if s, ok := row.Get("amount"); ok {
		v, defect := parseFloat("amount", s)
		if defect != nil {
			return defect
		}
		amount = v
	}

	f := &feeModel.FeePaymentModel{
		FeePaymentStudentCode: row["studentId"],
		FeePaymentAmount:      amount,
		FeePaymentDueDate:     dueDate,
		FeePaymentStatus:      row["status"],
		FeePaymentDueMonths:   dueMonths,
	}
	if s, ok := row.Get("paidDate"); ok {
		pd, defect := parseDate("paidDate", s)
		if defect != nil {
			return defect
		}
		f.FeePaymentPaidDate = &pd
	}
	if err := im.store.CreateFeePayment(ctx, f); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importProject(ctx context.Context, row csvkit.Row, teacherID uuid.UUID) error {
	start, defect := parseDate("startDate", row["startDate"])
	if defect != nil {
		return defect
	}

	p := &researchModel.ProjectModel{
		ProjectStudentCode:  row["studentId"],
		ProjectSupervisorID: teacherID,
		ProjectTitle:        row["title"],
		ProjectStartDate:    start,
		ProjectStatus:       researchModel.ProjectStatusActive,
	}
	if s, ok := row.Get("description"); ok {
		p.ProjectDescription = &s
	}
	if s, ok := row.Get("status"); ok {
		p.ProjectStatus = s
	}
	if s, ok := row.Get("endDate"); ok {
		end, defect := parseDate("endDate", s)
		if defect != nil {
			return defect
		}
		p.ProjectEndDate = &end
	}
	if err := im.store.CreateProject(ctx, p); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importPhd(ctx context.Context, row csvkit.Row, teacherID uuid.UUID) error {
	start, defect := parseDate("startDate", row["startDate"])
	if defect != nil {
		return defect
	}

	p := &researchModel.PhdSupervisionModel{
		PhdStudentCode:  row["studentId"],
		PhdSupervisorID: teacherID,
		PhdTitle:        row["title"],
		PhdResearchArea: row["researchArea"],
		PhdStartDate:    start,
		PhdStatus:       researchModel.PhdStatusOngoing,
	}
	if s, ok := row.Get("status"); ok {
		p.PhdStatus = s
	}
	if err := im.store.CreatePhdSupervision(ctx, p); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importFellowship(ctx context.Context, row csvkit.Row, teacherID uuid.UUID) error {
	amount, defect := parseFloat("amount", row["amount"])
	if defect != nil {
		return defect
	}
	duration, defect := parseIntMin("duration", row["duration"], 1)
	if defect != nil {
		return defect
	}
	start, defect := parseDate("startDate", row["startDate"])
	if defect != nil {
		return defect
	}

	f := &researchModel.FellowshipModel{
		FellowshipStudentCode:  row["studentId"],
		FellowshipSupervisorID: teacherID,
		FellowshipType:         row["type"],
		FellowshipAmount:       amount,
		FellowshipDuration:     duration,
		FellowshipStartDate:    start,
		FellowshipStatus:       researchModel.FellowshipStatusActive,
	}
	if s, ok := row.Get("status"); ok {
		f.FellowshipStatus = s
	}
	if err := im.store.CreateFellowship(ctx, f); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importAssessment(ctx context.Context, row csvkit.Row) error {
	date, defect := parseDate("assessmentDate", row["assessmentDate"])
	if defect != nil {
		return defect
	}

	metrics := make(map[string]int, 7)
	for _, field := range []string{"stress", "anxiety", "depression", "sleepQuality", "academicPressure", "socialSupport", "overallWellness"} {
		v, defect := parseIntRange(field, row[field], 1, 10)
		if defect != nil {
			return defect
		}
		metrics[field] = v
	}

	risk := float64(metrics["stress"]+metrics["anxiety"]+metrics["depression"]) / 3
	if s, ok := row.Get("riskScore"); ok {
		v, defect := parseFloat("riskScore", s)
		if defect != nil {
			return defect
		}
		risk = v
	}

	a := &wellnessModel.MentalHealthAssessmentModel{
		AssessmentStudentCode:      row["studentId"],
		AssessmentDate:             date,
		AssessmentStress:           metrics["stress"],
		AssessmentAnxiety:          metrics["anxiety"],
		AssessmentDepression:       metrics["depression"],
		AssessmentSleepQuality:     metrics["sleepQuality"],
		AssessmentAcademicPressure: metrics["academicPressure"],
		AssessmentSocialSupport:    metrics["socialSupport"],
		AssessmentOverallWellness:  metrics["overallWellness"],
		AssessmentRiskScore:        risk,
	}
	if err := im.store.CreateAssessment(ctx, a); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importCounseling(ctx context.Context, row csvkit.Row) error {
	date, defect := parseDate("appointmentDate", row["appointmentDate"])
	if defect != nil {
		return defect
	}
	duration, defect := parseIntRange("duration", row["duration"], 15, 180)
	if defect != nil {
		return defect
	}

	a := &wellnessModel.CounselingAppointmentModel{
		AppointmentStudentCode:   row["studentId"],
		AppointmentCounselorName: row["counselorName"],
		AppointmentDate:          date,
		AppointmentDuration:      duration,
		AppointmentType:          row["type"],
		AppointmentStatus:        row["status"],
		AppointmentFollowUp:      parseBool(row["followUpNeeded"]),
	}
	if s, ok := row.Get("notes"); ok {
		a.AppointmentNotes = &s
	}
	if err := im.store.CreateAppointment(ctx, a); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importWellness(ctx context.Context, row csvkit.Row) error {
	target, defect := parseIntMin("targetValue", row["targetValue"], 1)
	if defect != nil {
		return defect
	}
	progress, defect := parseIntMin("currentProgress", row["currentProgress"], 0)
	if defect != nil {
		return defect
	}
	start, defect := parseDate("startDate", row["startDate"])
	if defect != nil {
		return defect
	}
	end, defect := parseDate("endDate", row["endDate"])
	if defect != nil {
		return defect
	}

	points := progress * 10
	if s, ok := row.Get("points"); ok {
		v, defect := parseIntMin("points", s, 0)
		if defect != nil {
			return defect
		}
		points = v
	}

	w := &wellnessModel.WellnessChallengeModel{
		ChallengeStudentCode: row["studentId"],
		ChallengeType:        row["challengeType"],
		ChallengeTitle:       row["title"],
		ChallengeDescription: row["description"],
		ChallengeTarget:      target,
		ChallengeProgress:    progress,
		ChallengeStartDate:   start,
		ChallengeEndDate:     end,
		ChallengeStatus:      row["status"],
		ChallengePoints:      points,
	}
	if err := im.store.CreateChallenge(ctx, w); err != nil {
		return storageDefect(err)
	}
	return nil
}

func (im *Importer) importSupport(ctx context.Context, row csvkit.Row) error {
	openedAt, defect := parseDate("createdAt", row["createdAt"])
	if defect != nil {
		return defect
	}

	t := &wellnessModel.SupportTicketModel{
		TicketStudentCode: row["studentId"],
		TicketCategory:    row["category"],
		TicketPriority:    row["priority"],
		TicketSubject:     row["subject"],
		TicketDescription: row["description"],
		TicketStatus:      row["status"],
		TicketIsAnonymous: parseBool(row["isAnonymous"]),
		TicketOpenedAt:    openedAt,
	}
	if s, ok := row.Get("resolvedAt"); ok {
		resolved, defect := parseDate("resolvedAt", s)
		if defect != nil {
			return defect
		}
		t.TicketResolvedAt = &resolved
	}
	if err := im.store.CreateTicket(ctx, t); err != nil {
		return storageDefect(err)
	}
	return nil
}
