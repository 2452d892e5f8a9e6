package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studentModel "edupulse_backend/internals/features/academics/students/model"
	importModel "edupulse_backend/internals/features/imports/model"
	"edupulse_backend/internals/features/imports/service"
)

// stubStore overrides only the calls a students upload makes; anything else
// panics through the embedded nil interface.
type stubStore struct {
	service.Store
	created []*studentModel.StudentModel
	runs    []*importModel.ImportRunModel
}

func (s *stubStore) FindStudentByCode(context.Context, string) (*studentModel.StudentModel, error) {
	return nil, nil
}

func (s *stubStore) CreateStudent(_ context.Context, st *studentModel.StudentModel) error {
	s.created = append(s.created, st)
	return nil
}

func (s *stubStore) CreateImportRun(_ context.Context, r *importModel.ImportRunModel) error {
	s.runs = append(s.runs, r)
	return nil
}

func newUploadApp(store service.Store, teacherID string) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)
	ctl := NewImportController(store, log)

	app := fiber.New()
	app.Post("/imports", func(c *fiber.Ctx) error {
		if teacherID != "" {
			c.Locals("teacher_id", teacherID)
		}
		return ctl.Upload(c)
	})
	return app
}

func multipartCSV(t *testing.T, kind, csv string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if kind != "" {
		require.NoError(t, w.WriteField("type", kind))
	}
	if csv != "" {
		fw, err := w.CreateFormFile("file", "upload.csv")
		require.NoError(t, err)
		_, err = fw.Write([]byte(csv))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestUploadRequiresIdentity(t *testing.T) {
	app := newUploadApp(&stubStore{}, "")
	body, ct := multipartCSV(t, "students", "studentId,name\nS1,A\n")

	req, _ := http.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUploadRejectsMissingType(t *testing.T) {
	app := newUploadApp(&stubStore{}, uuid.NewString())
	body, ct := multipartCSV(t, "", "studentId,name\nS1,A\n")

	req, _ := http.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectsUnknownType(t *testing.T) {
	app := newUploadApp(&stubStore{}, uuid.NewString())
	body, ct := multipartCSV(t, "gradebook", "studentId,name\nS1,A\n")

	req, _ := http.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectsMissingFile(t *testing.T) {
	app := newUploadApp(&stubStore{}, uuid.NewString())
	body, ct := multipartCSV(t, "students", "")

	req, _ := http.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectsHeaderOnlyFile(t *testing.T) {
	app := newUploadApp(&stubStore{}, uuid.NewString())
	body, ct := multipartCSV(t, "students", "studentId,name,email,dob,currentSemester\n")

	req, _ := http.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadStudentsSummary(t *testing.T) {
	store := &stubStore{}
	app := newUploadApp(store, uuid.NewString())

	csv := "studentId,name,email,dob,currentSemester\n" +
		"S1,Asha,asha@uni.edu,2003-01-15,4\n" +
		"S2,Binod,binod@uni.edu,2002-11-02,99\n"
	body, ct := multipartCSV(t, "students", csv)

	req, _ := http.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Success   bool     `json:"success"`
		Processed int      `json:"processed"`
		Total     int      `json:"total"`
		Errors    []string `json:"errors"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.True(t, out.Success)
	assert.Equal(t, 1, out.Processed)
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0], "row 2")

	require.Len(t, store.created, 1)
	assert.Equal(t, "S1", store.created[0].StudentCode)

	// Audit trail row recorded per upload.
	require.Len(t, store.runs, 1)
	assert.Equal(t, "students", store.runs[0].ImportRunKind)
	assert.Equal(t, "upload.csv", store.runs[0].ImportRunFileName)
}

func TestUploadCleanFileHasEmptyErrorArray(t *testing.T) {
	store := &stubStore{}
	app := newUploadApp(store, uuid.NewString())

	csv := "studentId,name,email,dob,currentSemester\nS1,Asha,asha@uni.edu,2003-01-15,4\n"
	body, ct := multipartCSV(t, "students", csv)

	req, _ := http.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"errors":[]`)
}
