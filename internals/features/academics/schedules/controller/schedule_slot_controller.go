package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/schedules/dto"
	model "sekolahku_backend/internals/features/academics/schedules/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ScheduleSlotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleSlotController(db *gorm.DB) *ScheduleSlotController {
	return &ScheduleSlotController{DB: db, Validate: validator.New()}
}

/* ===================== LIST ===================== */
// GET /api/a/:school_id/schedule-slots
func (ctrl *ScheduleSlotController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListScheduleSlotQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ScheduleSlotModel{}).
		Where("schedule_slot_school_id = ?", schoolID)
	if q.AcademicYearID != nil {
		tx = tx.Where("schedule_slot_academic_year_id = ?", *q.AcademicYearID)
	}
	if q.ClassID != nil {
		tx = tx.Where("schedule_slot_class_id = ?", *q.ClassID)
	}
	if q.TeacherID != nil {
		tx = tx.Where("schedule_slot_teacher_id = ?", *q.TeacherID)
	}
	if q.DayOfWeek != nil {
		tx = tx.Where("schedule_slot_day_of_week = ?", dto.NormalizeDayOfWeek(*q.DayOfWeek))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("schedule_slots.count", err)
	}
	var rows []model.ScheduleSlotModel
	if err := tx.Order("schedule_slot_day_of_week ASC, schedule_slot_start_time ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("schedule_slots.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar jadwal", rows, &pg)
}

/* ===================== CREATE ===================== */
// POST /api/a/:school_id/schedule-slots
func (ctrl *ScheduleSlotController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateScheduleSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel(schoolID)
	if err != nil {
		return err
	}

	// keunikan tuple (tahun, kelas, mapel, guru, hari, jam mulai) dijaga unique index;
	// 23505 dipetakan ke 409
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.AsConflict("schedule_slots.create", "Slot jadwal yang sama sudah ada", err)
	}
	return helper.JsonCreated(c, "Jadwal berhasil dibuat", m)
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/a/:school_id/schedule-slots/:id
func (ctrl *ScheduleSlotController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateScheduleSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.ScheduleSlotModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("schedule_slot_id = ? AND schedule_slot_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return apierror.NewStorage("schedule_slots.get", err)
	}

	if err := req.ApplyToModel(&m); err != nil {
		return err
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.AsConflict("schedule_slots.update", "Slot jadwal yang sama sudah ada", err)
	}
	return helper.JsonUpdated(c, "Jadwal berhasil diubah", m)
}

/* ===================== DELETE (soft) ===================== */
// DELETE /api/a/:school_id/schedule-slots/:id
func (ctrl *ScheduleSlotController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("schedule_slot_id = ? AND schedule_slot_school_id = ?", id, schoolID).
		Delete(&model.ScheduleSlotModel{})
	if res.Error != nil {
		return apierror.NewStorage("schedule_slots.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jadwal berhasil dihapus", fiber.Map{"schedule_slot_id": id})
}
