package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	attendanceModel "edupulse_backend/internals/features/academics/attendance/model"
	scoreModel "edupulse_backend/internals/features/academics/scores/model"
	studentModel "edupulse_backend/internals/features/academics/students/model"
	feeModel "edupulse_backend/internals/features/finance/fees/model"
	importModel "edupulse_backend/internals/features/imports/model"
	researchModel "edupulse_backend/internals/features/research/model"
	wellnessModel "edupulse_backend/internals/features/wellness/model"
)

// GormStore backs the import pipeline with the shared *gorm.DB. Row-level
// atomicity comes from the database; the pipeline itself never opens a
// multi-row transaction.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) FindStudentByCode(ctx context.Context, code string) (*studentModel.StudentModel, error) {
	var m studentModel.StudentModel
	err := s.DB.WithContext(ctx).Where("student_code = ?", code).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) CreateStudent(ctx context.Context, m *studentModel.StudentModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) UpdateStudent(ctx context.Context, m *studentModel.StudentModel) error {
	return s.DB.WithContext(ctx).Save(m).Error
}

func (s *GormStore) FindBatchByCode(ctx context.Context, code string) (*studentModel.BatchModel, error) {
	var m studentModel.BatchModel
	err := s.DB.WithContext(ctx).Where("batch_code = ?", code).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) CreateBatch(ctx context.Context, m *studentModel.BatchModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) FindCourseByCode(ctx context.Context, code string) (*studentModel.CourseModel, error) {
	var m studentModel.CourseModel
	err := s.DB.WithContext(ctx).Where("course_code = ?", code).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) CreateCourse(ctx context.Context, m *studentModel.CourseModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) FindAttendance(ctx context.Context, studentCode, courseCode string, month time.Time) (*attendanceModel.AttendanceModel, error) {
	var m attendanceModel.AttendanceModel
	err := s.DB.WithContext(ctx).
		Where("attendance_student_code = ? AND attendance_course_code = ? AND attendance_month = ?", studentCode, courseCode, month).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) CreateAttendance(ctx context.Context, m *attendanceModel.AttendanceModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) UpdateAttendance(ctx context.Context, m *attendanceModel.AttendanceModel) error {
	return s.DB.WithContext(ctx).Save(m).Error
}

func (s *GormStore) CreateTestScore(ctx context.Context, m *scoreModel.TestScoreModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) FindBacklog(ctx context.Context, studentCode, courseCode string) (*scoreModel.BacklogModel, error) {
	var m scoreModel.BacklogModel
	err := s.DB.WithContext(ctx).
		Where("backlog_student_code = ? AND backlog_course_code = ?", studentCode, courseCode).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) CreateBacklog(ctx context.Context, m *scoreModel.BacklogModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) UpdateBacklog(ctx context.Context, m *scoreModel.BacklogModel) error {
	return s.DB.WithContext(ctx).Save(m).Error
}

func (s *GormStore) CreateFeePayment(ctx context.Context, m *feeModel.FeePaymentModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) CreateProject(ctx context.Context, m *researchModel.ProjectModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) CreatePhdSupervision(ctx context.Context, m *researchModel.PhdSupervisionModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) CreateFellowship(ctx context.Context, m *researchModel.FellowshipModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) CreateAssessment(ctx context.Context, m *wellnessModel.MentalHealthAssessmentModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) CreateAppointment(ctx context.Context, m *wellnessModel.CounselingAppointmentModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) CreateChallenge(ctx context.Context, m *wellnessModel.WellnessChallengeModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) CreateTicket(ctx context.Context, m *wellnessModel.SupportTicketModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) CreateImportRun(ctx context.Context, m *importModel.ImportRunModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}
