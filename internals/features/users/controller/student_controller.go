package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/dto"
	model "sekolahku_backend/internals/features/users/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// GET /api/a/:school_id/students
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.StudentModel{}).
		Where("student_school_id = ?", schoolID)
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		tx = tx.Where("student_class_id = ?", classID)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		tx = tx.Where("student_name ILIKE ? OR student_nis ILIKE ?", "%"+s+"%", "%"+s+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("students.count", err)
	}
	var rows []model.StudentModel
	if err := tx.Order("student_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("students.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar siswa", rows, &pg)
}

// POST /api/a/:school_id/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := &model.StudentModel{
		StudentSchoolID: schoolID,
		StudentUserID:   req.StudentUserID,
		StudentClassID:  req.StudentClassID,
		StudentNIS:      strings.TrimSpace(req.StudentNIS),
		StudentName:     strings.TrimSpace(req.StudentName),
		StudentGuardian: req.StudentGuardian,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.AsConflict("students.create", "NIS sudah terdaftar", err)
	}
	return helper.JsonCreated(c, "Siswa berhasil dibuat", m)
}

// PATCH /api/a/:school_id/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.StudentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return apierror.NewStorage("students.get", err)
	}

	if req.StudentClassID != nil {
		m.StudentClassID = req.StudentClassID
	}
	if req.StudentName != nil {
		m.StudentName = strings.TrimSpace(*req.StudentName)
	}
	if req.StudentGuardian != nil {
		m.StudentGuardian = req.StudentGuardian
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.NewStorage("students.update", err)
	}
	return helper.JsonUpdated(c, "Siswa berhasil diubah", m)
}

// DELETE /api/a/:school_id/students/:id
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return apierror.NewStorage("students.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": id})
}
