package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/subjects/dto"
	model "sekolahku_backend/internals/features/academics/subjects/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

// GET /api/a/:school_id/subjects
func (ctrl *SubjectController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SubjectModel{}).
		Where("subject_school_id = ?", schoolID)
	if q := c.Query("q"); q != "" {
		tx = tx.Where("subject_name ILIKE ? OR subject_code ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("subjects.count", err)
	}
	var rows []model.SubjectModel
	if err := tx.Order("subject_code ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return apierror.NewStorage("subjects.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar mata pelajaran", rows, &pg)
}

// POST /api/a/:school_id/subjects
func (ctrl *SubjectController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.AsConflict("subjects.create", "Kode mapel sudah dipakai", err)
	}
	return helper.JsonCreated(c, "Mata pelajaran berhasil dibuat", m)
}

// PATCH /api/a/:school_id/subjects/:id
func (ctrl *SubjectController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.SubjectModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Mata pelajaran tidak ditemukan")
		}
		return apierror.NewStorage("subjects.get", err)
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.AsConflict("subjects.update", "Kode mapel sudah dipakai", err)
	}
	return helper.JsonUpdated(c, "Mata pelajaran berhasil diubah", m)
}

// DELETE /api/a/:school_id/subjects/:id
func (ctrl *SubjectController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		Delete(&model.SubjectModel{})
	if res.Error != nil {
		return apierror.NewStorage("subjects.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Mata pelajaran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Mata pelajaran berhasil dihapus", fiber.Map{"subject_id": id})
}
