package controller

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"edupulse_backend/internals/features/imports/csvkit"
	importModel "edupulse_backend/internals/features/imports/model"
	"edupulse_backend/internals/features/imports/rowcheck"
	"edupulse_backend/internals/features/imports/service"
	helper "edupulse_backend/internals/helpers"
)

type ImportController struct {
	Store    service.Store
	Importer *service.Importer
	Log      logrus.FieldLogger
}

func NewImportController(store service.Store, log logrus.FieldLogger) *ImportController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ImportController{
		Store:    store,
		Importer: service.NewImporter(store, log),
		Log:      log,
	}
}

// Upload handles POST multipart {file, type}. Input defects (missing file or
// type, unknown type) abort before any row is touched; row defects are
// collected into the summary instead.
func (ctl *ImportController) Upload(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	kind := strings.TrimSpace(c.FormValue("type"))
	if kind == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "type is required")
	}
	if _, ok := rowcheck.ForKind(kind); !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "unknown import type: "+kind)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "could not read uploaded file")
	}

	rows := csvkit.Parse(string(raw))
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "no valid data found in file")
	}

	sum, err := ctl.Importer.Run(c.UserContext(), kind, rows, teacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if sum.Errors == nil {
		sum.Errors = []string{}
	}

	// Audit trail; the upload result does not depend on it.
	errsJSON, _ := json.Marshal(sum.Errors)
	run := &importModel.ImportRunModel{
		ImportRunTeacherID: teacherID,
		ImportRunKind:      kind,
		ImportRunFileName:  fh.Filename,
		ImportRunProcessed: sum.Processed,
		ImportRunTotal:     sum.Total,
		ImportRunErrors:    errsJSON,
	}
	if err := ctl.Store.CreateImportRun(c.UserContext(), run); err != nil {
		ctl.Log.WithError(err).Warn("import run audit write failed")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"processed": sum.Processed,
		"total":     sum.Total,
		"errors":    sum.Errors,
	})
}
