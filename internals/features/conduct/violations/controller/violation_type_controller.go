package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/conduct/violations/dto"
	model "sekolahku_backend/internals/features/conduct/violations/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ViolationTypeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewViolationTypeController(db *gorm.DB) *ViolationTypeController {
	return &ViolationTypeController{DB: db, Validate: validator.New()}
}

/* ===================== LIST ===================== */
// GET /api/a/:school_id/violation-types
func (ctrl *ViolationTypeController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ViolationTypeModel{}).
		Where("violation_type_school_id = ?", schoolID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("violation_types.count", err)
	}
	var rows []model.ViolationTypeModel
	if err := tx.Order("violation_type_points DESC, violation_type_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("violation_types.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar jenis pelanggaran", rows, &pg)
}

/* ===================== CREATE ===================== */
// POST /api/a/:school_id/violation-types
func (ctrl *ViolationTypeController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateViolationTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.NewStorage("violation_types.create", err)
	}
	return helper.JsonCreated(c, "Jenis pelanggaran berhasil dibuat", m)
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/:school_id/violation-types/:id
func (ctrl *ViolationTypeController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateViolationTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.ViolationTypeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("violation_type_id = ? AND violation_type_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Jenis pelanggaran tidak ditemukan")
		}
		return apierror.NewStorage("violation_types.get", err)
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.NewStorage("violation_types.update", err)
	}
	return helper.JsonUpdated(c, "Jenis pelanggaran berhasil diubah", m)
}

/* ===================== DELETE (soft) ===================== */
// DELETE /api/a/:school_id/violation-types/:id
func (ctrl *ViolationTypeController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("violation_type_id = ? AND violation_type_school_id = ?", id, schoolID).
		Delete(&model.ViolationTypeModel{})
	if res.Error != nil {
		return apierror.NewStorage("violation_types.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Jenis pelanggaran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jenis pelanggaran berhasil dihapus", fiber.Map{"violation_type_id": id})
}
