package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/announcements/dto"
	model "sekolahku_backend/internals/features/announcements/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db, Validate: validator.New()}
}

/* ===================== LIST (admin) ===================== */
// GET /api/a/:school_id/announcements
func (ctrl *AnnouncementController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListAnnouncementQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.AnnouncementModel{}).
		Where("announcement_school_id = ?", schoolID)
	if q.ClassID != nil {
		tx = tx.Where("announcement_class_id = ?", *q.ClassID)
	}
	if q.DateFrom != nil {
		tx = tx.Where("announcement_date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		tx = tx.Where("announcement_date <= ?", *q.DateTo)
	}
	if q.Search != nil && *q.Search != "" {
		tx = tx.Where("announcement_title ILIKE ?", "%"+*q.Search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("announcements.count", err)
	}
	var rows []model.AnnouncementModel
	if err := tx.Order("announcement_date DESC, announcement_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("announcements.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar pengumuman", rows, &pg)
}

/* ===================== LIST (user) ===================== */
// GET /api/u/announcements — hanya yang terbit; siswa melihat pengumuman
// sekolah + kelasnya sendiri.
func (ctrl *AnnouncementController) ListPublished(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.AnnouncementModel{}).
		Where("announcement_school_id = ? AND announcement_is_published = TRUE", schoolID)

	if studentID, err := helperAuth.GetStudentIDFromToken(c); err == nil {
		tx = tx.Where(
			"announcement_class_id IS NULL OR announcement_class_id IN (?)",
			ctrl.DB.Table("students").
				Select("student_class_id").
				Where("student_id = ?", studentID),
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("announcements.count", err)
	}
	var rows []model.AnnouncementModel
	if err := tx.Order("announcement_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("announcements.list_published", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar pengumuman", rows, &pg)
}

/* ===================== CREATE ===================== */
// POST /api/a/:school_id/announcements
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel(schoolID, userID)
	if err != nil {
		return err
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.NewStorage("announcements.create", err)
	}
	return helper.JsonCreated(c, "Pengumuman berhasil dibuat", m)
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/:school_id/announcements/:id
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.AnnouncementModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("announcement_id = ? AND announcement_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return apierror.NewStorage("announcements.get", err)
	}

	if err := req.ApplyToModel(&m); err != nil {
		return err
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.NewStorage("announcements.update", err)
	}
	return helper.JsonUpdated(c, "Pengumuman berhasil diubah", m)
}

/* ===================== DELETE (soft) ===================== */
// DELETE /api/a/:school_id/announcements/:id
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("announcement_id = ? AND announcement_school_id = ?", id, schoolID).
		Delete(&model.AnnouncementModel{})
	if res.Error != nil {
		return apierror.NewStorage("announcements.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pengumuman berhasil dihapus", fiber.Map{"announcement_id": id})
}
