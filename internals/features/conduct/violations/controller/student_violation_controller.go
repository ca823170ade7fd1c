package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/conduct/violations/dto"
	model "sekolahku_backend/internals/features/conduct/violations/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentViolationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentViolationController(db *gorm.DB) *StudentViolationController {
	return &StudentViolationController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/a/:school_id/student-violations
//
// Poin diambil dari jenis pelanggaran saat ini dan disalin ke record.
func (ctrl *StudentViolationController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentViolationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	occurredAt, err := req.ParseOccurredAt()
	if err != nil {
		return err
	}

	var vt model.ViolationTypeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("violation_type_id = ? AND violation_type_school_id = ?", req.StudentViolationTypeID, schoolID).
		Take(&vt).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Jenis pelanggaran tidak ditemukan")
		}
		return apierror.NewStorage("student_violations.get_type", err)
	}

	m := &model.StudentViolationModel{
		StudentViolationSchoolID:   schoolID,
		StudentViolationStudentID:  req.StudentViolationStudentID,
		StudentViolationTypeID:     vt.ViolationTypeID,
		StudentViolationPoints:     vt.ViolationTypePoints,
		StudentViolationNotes:      req.StudentViolationNotes,
		StudentViolationRecordedBy: userID,
		StudentViolationOccurredAt: datatypes.Date(occurredAt),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.NewStorage("student_violations.create", err)
	}
	return helper.JsonCreated(c, "Pelanggaran siswa berhasil dicatat", m)
}

/* ===================== LIST ===================== */
// GET /api/a/:school_id/student-violations
func (ctrl *StudentViolationController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListStudentViolationQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.StudentViolationModel{}).
		Where("student_violation_school_id = ?", schoolID)
	if q.StudentID != nil {
		tx = tx.Where("student_violation_student_id = ?", *q.StudentID)
	}
	if q.TypeID != nil {
		tx = tx.Where("student_violation_type_id = ?", *q.TypeID)
	}
	if q.DateFrom != nil {
		tx = tx.Where("student_violation_occurred_at >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		tx = tx.Where("student_violation_occurred_at <= ?", *q.DateTo)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("student_violations.count", err)
	}
	var rows []model.StudentViolationModel
	if err := tx.Order("student_violation_occurred_at DESC, student_violation_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("student_violations.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar pelanggaran siswa", rows, &pg)
}

/* ===================== SUMMARY ===================== */
// GET /api/a/:school_id/student-violations/summary?student_id=...
//
// Total poin seorang siswa, untuk ambang pembinaan.
func (ctrl *StudentViolationController) Summary(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	}

	var out struct {
		TotalPoints int64 `json:"total_points"`
		TotalCount  int64 `json:"total_count"`
	}
	err = ctrl.DB.WithContext(c.UserContext()).
		Model(&model.StudentViolationModel{}).
		Select("COALESCE(SUM(student_violation_points),0) AS total_points, COUNT(*) AS total_count").
		Where("student_violation_school_id = ? AND student_violation_student_id = ?", schoolID, studentID).
		Scan(&out).Error
	if err != nil {
		return apierror.NewStorage("student_violations.summary", err)
	}
	return helper.JsonOK(c, "Rekap pelanggaran siswa", fiber.Map{
		"student_id":   studentID,
		"total_points": out.TotalPoints,
		"total_count":  out.TotalCount,
	})
}

/* ===================== DELETE ===================== */
// DELETE /api/a/:school_id/student-violations/:id
func (ctrl *StudentViolationController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("student_violation_id = ? AND student_violation_school_id = ?", id, schoolID).
		Delete(&model.StudentViolationModel{})
	if res.Error != nil {
		return apierror.NewStorage("student_violations.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pelanggaran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pelanggaran berhasil dihapus", fiber.Map{"student_violation_id": id})
}
