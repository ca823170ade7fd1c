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

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

// GET /api/a/:school_id/teachers
func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.TeacherModel{}).
		Where("teacher_school_id = ?", schoolID)
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		tx = tx.Where("teacher_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("teachers.count", err)
	}
	var rows []model.TeacherModel
	if err := tx.Order("teacher_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("teachers.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar guru", rows, &pg)
}

// POST /api/a/:school_id/teachers
func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := &model.TeacherModel{
		TeacherSchoolID: schoolID,
		TeacherUserID:   req.TeacherUserID,
		TeacherNIP:      req.TeacherNIP,
		TeacherName:     strings.TrimSpace(req.TeacherName),
		TeacherPhone:    req.TeacherPhone,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.AsConflict("teachers.create", "NIP sudah terdaftar", err)
	}
	return helper.JsonCreated(c, "Guru berhasil dibuat", m)
}

// PATCH /api/a/:school_id/teachers/:id
func (ctrl *TeacherController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.TeacherModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return apierror.NewStorage("teachers.get", err)
	}

	if req.TeacherNIP != nil {
		m.TeacherNIP = req.TeacherNIP
	}
	if req.TeacherName != nil {
		m.TeacherName = strings.TrimSpace(*req.TeacherName)
	}
	if req.TeacherPhone != nil {
		m.TeacherPhone = req.TeacherPhone
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.AsConflict("teachers.update", "NIP sudah terdaftar", err)
	}
	return helper.JsonUpdated(c, "Guru berhasil diubah", m)
}

// DELETE /api/a/:school_id/teachers/:id
func (ctrl *TeacherController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		Delete(&model.TeacherModel{})
	if res.Error != nil {
		return apierror.NewStorage("teachers.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Guru berhasil dihapus", fiber.Map{"teacher_id": id})
}
