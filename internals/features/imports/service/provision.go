package service

import (
	"context"
	"regexp"
	"strconv"

	studentModel "edupulse_backend/internals/features/academics/students/model"
)

// Batch codes look like CSE2024B: department, intake year, section.
var batchCodeRe = regexp.MustCompile(`^([A-Z]+)(\d{4})([A-Z])$`)

// ensureBatch resolves a referenced batch, provisioning it (and its default
// <DEPT>_GENERAL course) when absent. It returns the batch code to assign to
// the student, or nil when the reference could not be resolved. Failures
// here are dependency defects at most: they are logged through the observer
// and the student row proceeds without a batch.
func (im *Importer) ensureBatch(ctx context.Context, code string) *string {
	b, err := im.store.FindBatchByCode(ctx, code)
	if err != nil {
		im.log.WithError(err).WithField("batch", code).Warn("batch lookup failed, importing student without batch")
		return nil
	}
	if b != nil {
		return &b.BatchCode
	}

	m := batchCodeRe.FindStringSubmatch(code)
	if m == nil {
		im.log.WithField("batch", code).Warn("batch code does not match <DEPT><YYYY><SECTION>, skipping provisioning")
		return nil
	}
	dept, yearStr, section := m[1], m[2], m[3]

	courseCode := dept + "_GENERAL"
	course, err := im.store.FindCourseByCode(ctx, courseCode)
	if err != nil {
		im.log.WithError(err).WithField("course", courseCode).Warn("course lookup failed, importing student without batch")
		return nil
	}
	if course == nil {
		course = &studentModel.CourseModel{
			CourseCode:       courseCode,
			CourseName:       dept + " General",
			CourseSemester:   1,
			CourseDepartment: dept,
		}
		if err := im.store.CreateCourse(ctx, course); err != nil {
			im.log.WithError(err).WithField("course", courseCode).Warn("course provisioning failed, importing student without batch")
			return nil
		}
	}

	year, _ := strconv.Atoi(yearStr)
	batch := &studentModel.BatchModel{
		BatchCode:       code,
		BatchDepartment: dept,
		BatchYear:       year,
		BatchSection:    section,
		BatchCourseCode: &courseCode,
	}
	if err := im.store.CreateBatch(ctx, batch); err != nil {
		im.log.WithError(err).WithField("batch", code).Warn("batch provisioning failed, importing student without batch")
		return nil
	}

	im.log.WithField("batch", code).WithField("course", courseCode).Info("auto-provisioned batch")
	return &batch.BatchCode
}
