package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/calendar/events/dto"
	model "sekolahku_backend/internals/features/calendar/events/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type CalendarEventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCalendarEventController(db *gorm.DB) *CalendarEventController {
	return &CalendarEventController{DB: db, Validate: validator.New()}
}

// GET /api/a/:school_id/calendar-events
func (ctrl *CalendarEventController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CalendarEventModel{}).
		Where("calendar_event_school_id = ?", schoolID)
	if t := c.Query("type"); t != "" {
		tx = tx.Where("calendar_event_type = ?", t)
	}
	if from := c.Query("date_from"); from != "" {
		tx = tx.Where("calendar_event_date >= ?", from)
	}
	if to := c.Query("date_to"); to != "" {
		tx = tx.Where("calendar_event_date <= ?", to)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("calendar_events.count", err)
	}
	var rows []model.CalendarEventModel
	if err := tx.Order("calendar_event_date ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return apierror.NewStorage("calendar_events.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar agenda kalender", rows, &pg)
}

// POST /api/a/:school_id/calendar-events
func (ctrl *CalendarEventController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.NewStorage("calendar_events.create", err)
	}
	return helper.JsonCreated(c, "Agenda berhasil dibuat", m)
}

// PATCH /api/a/:school_id/calendar-events/:id
func (ctrl *CalendarEventController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.CalendarEventModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("calendar_event_id = ? AND calendar_event_school_id = ?", id, schoolID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Agenda tidak ditemukan")
		}
		return apierror.NewStorage("calendar_events.get", err)
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return apierror.NewStorage("calendar_events.update", err)
	}
	return helper.JsonUpdated(c, "Agenda berhasil diubah", m)
}

// POST /api/a/:school_id/calendar-events/:id/publish
func (ctrl *CalendarEventController) Publish(c *fiber.Ctx) error {
	return ctrl.setPublished(c, true, "Agenda dipublikasikan")
}

// POST /api/a/:school_id/calendar-events/:id/unpublish
func (ctrl *CalendarEventController) Unpublish(c *fiber.Ctx) error {
	return ctrl.setPublished(c, false, "Agenda disembunyikan")
}

func (ctrl *CalendarEventController) setPublished(c *fiber.Ctx, published bool, msg string) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CalendarEventModel{}).
		Where("calendar_event_id = ? AND calendar_event_school_id = ?", id, schoolID).
		Update("calendar_event_is_published", published)
	if res.Error != nil {
		return apierror.NewStorage("calendar_events.publish", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Agenda tidak ditemukan")
	}
	return helper.JsonUpdated(c, msg, fiber.Map{"calendar_event_id": id, "calendar_event_is_published": published})
}

// DELETE /api/a/:school_id/calendar-events/:id
func (ctrl *CalendarEventController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("calendar_event_id = ? AND calendar_event_school_id = ?", id, schoolID).
		Delete(&model.CalendarEventModel{})
	if res.Error != nil {
		return apierror.NewStorage("calendar_events.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Agenda tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Agenda berhasil dihapus", fiber.Map{"calendar_event_id": id})
}
