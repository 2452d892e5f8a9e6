package service

import (
	"context"
	"fmt"
	"time"

	attendanceModel "edupulse_backend/internals/features/academics/attendance/model"
	scoreModel "edupulse_backend/internals/features/academics/scores/model"
	studentModel "edupulse_backend/internals/features/academics/students/model"
	feeModel "edupulse_backend/internals/features/finance/fees/model"
	importModel "edupulse_backend/internals/features/imports/model"
	researchModel "edupulse_backend/internals/features/research/model"
	wellnessModel "edupulse_backend/internals/features/wellness/model"
)

// fakeStore keeps everything in maps/slices so orchestrator tests run
// without a database. failOn lets a test force a storage error for one
// operation name.
type fakeStore struct {
	students map[string]*studentModel.StudentModel
	batches  map[string]*studentModel.BatchModel
	courses  map[string]*studentModel.CourseModel

	attendance map[string]*attendanceModel.AttendanceModel
	backlogs   map[string]*scoreModel.BacklogModel

	testScores   []*scoreModel.TestScoreModel
	fees         []*feeModel.FeePaymentModel
	projects     []*researchModel.ProjectModel
	phds         []*researchModel.PhdSupervisionModel
	fellowships  []*researchModel.FellowshipModel
	assessments  []*wellnessModel.MentalHealthAssessmentModel
	appointments []*wellnessModel.CounselingAppointmentModel
	challenges   []*wellnessModel.WellnessChallengeModel
	tickets      []*wellnessModel.SupportTicketModel
	importRuns   []*importModel.ImportRunModel

	failOn string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		students:   map[string]*studentModel.StudentModel{},
		batches:    map[string]*studentModel.BatchModel{},
		courses:    map[string]*studentModel.CourseModel{},
		attendance: map[string]*attendanceModel.AttendanceModel{},
		backlogs:   map[string]*scoreModel.BacklogModel{},
	}
}

func (f *fakeStore) fail(op string) error {
	if f.failOn == op {
		return fmt.Errorf("forced %s failure", op)
	}
	return nil
}

func attKey(student, course string, month time.Time) string {
	return student + "|" + course + "|" + month.Format("2006-01")
}

func (f *fakeStore) FindStudentByCode(_ context.Context, code string) (*studentModel.StudentModel, error) {
	if err := f.fail("FindStudentByCode"); err != nil {
		return nil, err
	}
	return f.students[code], nil
}

func (f *fakeStore) CreateStudent(_ context.Context, s *studentModel.StudentModel) error {
	if err := f.fail("CreateStudent"); err != nil {
		return err
	}
	f.students[s.StudentCode] = s
	return nil
}

func (f *fakeStore) UpdateStudent(_ context.Context, s *studentModel.StudentModel) error {
	if err := f.fail("UpdateStudent"); err != nil {
		return err
	}
	f.students[s.StudentCode] = s
	return nil
}

func (f *fakeStore) FindBatchByCode(_ context.Context, code string) (*studentModel.BatchModel, error) {
	if err := f.fail("FindBatchByCode"); err != nil {
		return nil, err
	}
	return f.batches[code], nil
}

func (f *fakeStore) CreateBatch(_ context.Context, b *studentModel.BatchModel) error {
	if err := f.fail("CreateBatch"); err != nil {
		return err
	}
	f.batches[b.BatchCode] = b
	return nil
}

func (f *fakeStore) FindCourseByCode(_ context.Context, code string) (*studentModel.CourseModel, error) {
	if err := f.fail("FindCourseByCode"); err != nil {
		return nil, err
	}
	return f.courses[code], nil
}

func (f *fakeStore) CreateCourse(_ context.Context, c *studentModel.CourseModel) error {
	if err := f.fail("CreateCourse"); err != nil {
		return err
	}
	f.courses[c.CourseCode] = c
	return nil
}

func (f *fakeStore) FindAttendance(_ context.Context, student, course string, month time.Time) (*attendanceModel.AttendanceModel, error) {
	if err := f.fail("FindAttendance"); err != nil {
		return nil, err
	}
	return f.attendance[attKey(student, course, month)], nil
}

func (f *fakeStore) CreateAttendance(_ context.Context, a *attendanceModel.AttendanceModel) error {
	if err := f.fail("CreateAttendance"); err != nil {
		return err
	}
	f.attendance[attKey(a.AttendanceStudentCode, a.AttendanceCourseCode, a.AttendanceMonth)] = a
	return nil
}

func (f *fakeStore) UpdateAttendance(_ context.Context, a *attendanceModel.AttendanceModel) error {
	if err := f.fail("UpdateAttendance"); err != nil {
		return err
	}
	f.attendance[attKey(a.AttendanceStudentCode, a.AttendanceCourseCode, a.AttendanceMonth)] = a
	return nil
}

func (f *fakeStore) CreateTestScore(_ context.Context, t *scoreModel.TestScoreModel) error {
	if err := f.fail("CreateTestScore"); err != nil {
		return err
	}
	f.testScores = append(f.testScores, t)
	return nil
}

func (f *fakeStore) FindBacklog(_ context.Context, student, course string) (*scoreModel.BacklogModel, error) {
	if err := f.fail("FindBacklog"); err != nil {
		return nil, err
	}
	return f.backlogs[student+"|"+course], nil
}

func (f *fakeStore) CreateBacklog(_ context.Context, b *scoreModel.BacklogModel) error {
	if err := f.fail("CreateBacklog"); err != nil {
		return err
	}
	f.backlogs[b.BacklogStudentCode+"|"+b.BacklogCourseCode] = b
	return nil
}

func (f *fakeStore) UpdateBacklog(_ context.Context, b *scoreModel.BacklogModel) error {
	if err := f.fail("UpdateBacklog"); err != nil {
		return err
	}
	f.backlogs[b.BacklogStudentCode+"|"+b.BacklogCourseCode] = b
	return nil
}

func (f *fakeStore) CreateFeePayment(_ context.Context, p *feeModel.FeePaymentModel) error {
	if err := f.fail("CreateFeePayment"); err != nil {
		return err
	}
	f.fees = append(f.fees, p)
	return nil
}

func (f *fakeStore) CreateProject(_ context.Context, p *researchModel.ProjectModel) error {
	if err := f.fail("CreateProject"); err != nil {
		return err
	}
	f.projects = append(f.projects, p)
	return nil
}

func (f *fakeStore) CreatePhdSupervision(_ context.Context, p *researchModel.PhdSupervisionModel) error {
	if err := f.fail("CreatePhdSupervision"); err != nil {
		return err
	}
	f.phds = append(f.phds, p)
	return nil
}

func (f *fakeStore) CreateFellowship(_ context.Context, fw *researchModel.FellowshipModel) error {
	if err := f.fail("CreateFellowship"); err != nil {
		return err
	}
	f.fellowships = append(f.fellowships, fw)
	return nil
}

func (f *fakeStore) CreateAssessment(_ context.Context, a *wellnessModel.MentalHealthAssessmentModel) error {
	if err := f.fail("CreateAssessment"); err != nil {
		return err
	}
	f.assessments = append(f.assessments, a)
	return nil
}

func (f *fakeStore) CreateAppointment(_ context.Context, a *wellnessModel.CounselingAppointmentModel) error {
	if err := f.fail("CreateAppointment"); err != nil {
		return err
	}
	f.appointments = append(f.appointments, a)
	return nil
}

func (f *fakeStore) CreateChallenge(_ context.Context, w *wellnessModel.WellnessChallengeModel) error {
	if err := f.fail("CreateChallenge"); err != nil {
		return err
	}
	f.challenges = append(f.challenges, w)
	return nil
}

func (f *fakeStore) CreateTicket(_ context.Context, t *wellnessModel.SupportTicketModel) error {
	if err := f.fail("CreateTicket"); err != nil {
		return err
	}
	f.tickets = append(f.tickets, t)
	return nil
}

func (f *fakeStore) CreateImportRun(_ context.Context, r *importModel.ImportRunModel) error {
	if err := f.fail("CreateImportRun"); err != nil {
		return err
	}
	f.importRuns = append(f.importRuns, r)
	return nil
}
