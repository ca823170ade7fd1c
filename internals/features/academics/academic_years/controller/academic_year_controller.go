package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/academic_years/dto"
	model "sekolahku_backend/internals/features/academics/academic_years/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AcademicYearController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAcademicYearController(db *gorm.DB) *AcademicYearController {
	return &AcademicYearController{DB: db, Validate: validator.New()}
}

/* ===================== LIST ===================== */
// GET /api/a/:school_id/academic-years
func (ctrl *AcademicYearController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.AcademicYearModel{}).
		Where("academic_year_school_id = ?", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return apierror.NewStorage("academic_years.count", err)
	}

	var rows []model.AcademicYearModel
	if err := q.Order("academic_year_start_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("academic_years.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar tahun ajaran", rows, &pg)
}

/* ===================== GET BY ID ===================== */
// GET /api/a/:school_id/academic-years/:id
func (ctrl *AcademicYearController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AcademicYearModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("academic_year_id = ? AND academic_year_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return apierror.NewStorage("academic_years.get", err)
	}
	return helper.JsonOK(c, "", m)
}

/* ===================== CREATE ===================== */
// POST /api/a/:school_id/academic-years
func (ctrl *AcademicYearController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAcademicYearRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)

	// maksimal satu tahun ajaran aktif per sekolah
	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if m.AcademicYearIsActive {
			if err := tx.Model(&model.AcademicYearModel{}).
				Where("academic_year_school_id = ?", schoolID).
				Update("academic_year_is_active", false).Error; err != nil {
				return apierror.NewStorage("academic_years.deactivate", err)
			}
		}
		if err := tx.Create(m).Error; err != nil {
			return apierror.AsConflict("academic_years.create", "Nama tahun ajaran sudah dipakai", err)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "Tahun ajaran berhasil dibuat", m)
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/:school_id/academic-years/:id
func (ctrl *AcademicYearController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAcademicYearRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.AcademicYearModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("academic_year_id = ? AND academic_year_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
		}
		return apierror.NewStorage("academic_years.get", err)
	}

	req.ApplyToModel(&m)

	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if m.AcademicYearIsActive {
			if err := tx.Model(&model.AcademicYearModel{}).
				Where("academic_year_school_id = ? AND academic_year_id <> ?", schoolID, id).
				Update("academic_year_is_active", false).Error; err != nil {
				return apierror.NewStorage("academic_years.deactivate", err)
			}
		}
		if err := tx.Save(&m).Error; err != nil {
			return apierror.AsConflict("academic_years.update", "Nama tahun ajaran sudah dipakai", err)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Tahun ajaran berhasil diubah", m)
}

/* ===================== DELETE (soft) ===================== */
// DELETE /api/a/:school_id/academic-years/:id
func (ctrl *AcademicYearController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("academic_year_id = ? AND academic_year_school_id = ?", id, schoolID).
		Delete(&model.AcademicYearModel{})
	if res.Error != nil {
		return apierror.NewStorage("academic_years.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tahun ajaran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Tahun ajaran berhasil dihapus", fiber.Map{"academic_year_id": id})
}
