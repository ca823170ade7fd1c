package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/classes/dto"
	model "sekolahku_backend/internals/features/academics/classes/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

// GET /api/a/:school_id/classes
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListClassQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ClassModel{}).
		Where("class_school_id = ?", schoolID)
	if q.AcademicYearID != nil {
		tx = tx.Where("class_academic_year_id = ?", *q.AcademicYearID)
	}
	if q.Search != nil && *q.Search != "" {
		tx = tx.Where("class_name ILIKE ?", "%"+*q.Search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("classes.count", err)
	}
	var rows []model.ClassModel
	if err := tx.Order("class_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return apierror.NewStorage("classes.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar kelas", rows, &pg)
}

// GET /api/a/:school_id/classes/:id
func (ctrl *ClassController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return apierror.NewStorage("classes.get", err)
	}
	return helper.JsonOK(c, "", m)
}

// POST /api/a/:school_id/classes
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.AsConflict("classes.create", "Nama kelas sudah dipakai di tahun ajaran ini", err)
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", m)
}

// PATCH /api/a/:school_id/classes/:id
func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return apierror.NewStorage("classes.get", err)
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.AsConflict("classes.update", "Nama kelas sudah dipakai di tahun ajaran ini", err)
	}
	return helper.JsonUpdated(c, "Kelas berhasil diubah", m)
}

// DELETE /api/a/:school_id/classes/:id
func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		Delete(&model.ClassModel{})
	if res.Error != nil {
		return apierror.NewStorage("classes.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": id})
}
