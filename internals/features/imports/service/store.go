package service

import (
	"context"
	"time"

	attendanceModel "edupulse_backend/internals/features/academics/attendance/model"
	scoreModel "edupulse_backend/internals/features/academics/scores/model"
	studentModel "edupulse_backend/internals/features/academics/students/model"
	feeModel "edupulse_backend/internals/features/finance/fees/model"
	importModel "edupulse_backend/internals/features/imports/model"
	researchModel "edupulse_backend/internals/features/research/model"
	wellnessModel "edupulse_backend/internals/features/wellness/model"
)

// Store is the persistence collaborator for the import orchestrator. Find
// methods return (nil, nil) when no record matches, reserving errors for
// genuine storage failures.
type Store interface {
	FindStudentByCode(ctx context.Context, code string) (*studentModel.StudentModel, error)
	CreateStudent(ctx context.Context, s *studentModel.StudentModel) error
	UpdateStudent(ctx context.Context, s *studentModel.StudentModel) error

	FindBatchByCode(ctx context.Context, code string) (*studentModel.BatchModel, error)
	CreateBatch(ctx context.Context, b *studentModel.BatchModel) error

	FindCourseByCode(ctx context.Context, code string) (*studentModel.CourseModel, error)
	CreateCourse(ctx context.Context, c *studentModel.CourseModel) error

	FindAttendance(ctx context.Context, studentCode, courseCode string, month time.Time) (*attendanceModel.AttendanceModel, error)
	CreateAttendance(ctx context.Context, a *attendanceModel.AttendanceModel) error
	UpdateAttendance(ctx context.Context, a *attendanceModel.AttendanceModel) error

	CreateTestScore(ctx context.Context, t *scoreModel.TestScoreModel) error

	FindBacklog(ctx context.Context, studentCode, courseCode string) (*scoreModel.BacklogModel, error)
	CreateBacklog(ctx context.Context, b *scoreModel.BacklogModel) error
	UpdateBacklog(ctx context.Context, b *scoreModel.BacklogModel) error

	CreateFeePayment(ctx context.Context, f *feeModel.FeePaymentModel) error
	CreateProject(ctx context.Context, p *researchModel.ProjectModel) error
	CreatePhdSupervision(ctx context.Context, p *researchModel.PhdSupervisionModel) error
	CreateFellowship(ctx context.Context, f *researchModel.FellowshipModel) error
	CreateAssessment(ctx context.Context, a *wellnessModel.MentalHealthAssessmentModel) error
	CreateAppointment(ctx context.Context, a *wellnessModel.CounselingAppointmentModel) error
	CreateChallenge(ctx context.Context, w *wellnessModel.WellnessChallengeModel) error
	CreateTicket(ctx context.Context, t *wellnessModel.SupportTicketModel) error

	CreateImportRun(ctx context.Context, r *importModel.ImportRunModel) error
}

// DefectKind classifies why a row was skipped.
type DefectKind int

const (
	DefectValidation DefectKind = iota
	DefectCoercion
	DefectDependency
	DefectStorage
)

// RowDefect is a typed per-row failure. Rows failing with a defect are
// recorded and skipped; the batch keeps going.
type RowDefect struct {
	Kind    DefectKind
	Message string
}

func (d *RowDefect) Error() string { return d.Message }

func validationDefect(msg string) *RowDefect {
	return &RowDefect{Kind: DefectValidation, Message: msg}
}

func coercionDefect(msg string) *RowDefect {
	return &RowDefect{Kind: DefectCoercion, Message: msg}
}

func storageDefect(err error) *RowDefect {
	return &RowDefect{Kind: DefectStorage, Message: err.Error()}
}
