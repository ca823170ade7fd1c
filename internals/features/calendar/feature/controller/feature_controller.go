package controller

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "sekolahku_backend/internals/features/calendar/events/model"
	"sekolahku_backend/internals/features/calendar/feature/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type CalendarFeatureController struct {
	DB *gorm.DB
}

func NewCalendarFeatureController(db *gorm.DB) *CalendarFeatureController {
	return &CalendarFeatureController{DB: db}
}

// baris hasil join slot + nama mapel/kelas, bahan SlotInput
type slotRow struct {
	SlotID      uuid.UUID `gorm:"column:schedule_slot_id"`
	DayOfWeek   int       `gorm:"column:schedule_slot_day_of_week"`
	StartTime   string    `gorm:"column:start_time"`
	EndTime     string    `gorm:"column:end_time"`
	Room        *string   `gorm:"column:schedule_slot_room"`
	SubjectName string    `gorm:"column:subject_name"`
	ClassName   string    `gorm:"column:class_name"`
}

/* ===================== GET FEATURES ===================== */
// GET /api/u/calendar/features?year=2025
// Scope slot mengikuti identitas token: guru melihat jadwal mengajarnya,
// siswa melihat jadwal kelasnya.
func (ctrl *CalendarFeatureController) GetFeatures(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	ref := time.Now()
	if y := c.Query("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil || year < 1900 || year > 2200 {
			return fiber.NewError(fiber.StatusBadRequest, "Parameter year tidak valid")
		}
		ref = time.Date(year, time.June, 1, 0, 0, 0, 0, time.Local)
	}

	q := ctrl.DB.WithContext(c.UserContext()).
		Table("schedule_slots").
		Select(`schedule_slots.schedule_slot_id,
			schedule_slots.schedule_slot_day_of_week,
			to_char(schedule_slots.schedule_slot_start_time, 'HH24:MI') AS start_time,
			to_char(schedule_slots.schedule_slot_end_time, 'HH24:MI') AS end_time,
			schedule_slots.schedule_slot_room,
			subjects.subject_name,
			classes.class_name`).
		Joins("JOIN subjects ON subjects.subject_id = schedule_slots.schedule_slot_subject_id").
		Joins("JOIN classes ON classes.class_id = schedule_slots.schedule_slot_class_id").
		Where("schedule_slots.schedule_slot_school_id = ?", schoolID).
		Where("schedule_slots.schedule_slot_deleted_at IS NULL")

	// batasi visibilitas sesuai identitas token
	if teacherID, err := helperAuth.GetTeacherIDFromToken(c); err == nil {
		q = q.Where("schedule_slots.schedule_slot_teacher_id = ?", teacherID)
	} else if studentID, err := helperAuth.GetStudentIDFromToken(c); err == nil {
		q = q.Where(`schedule_slots.schedule_slot_class_id =
			(SELECT student_class_id FROM students WHERE student_id = ?)`, studentID)
	}

	var rows []slotRow
	if err := q.Scan(&rows).Error; err != nil {
		return apierror.NewStorage("calendar_features.slots", err)
	}

	var events []eventModel.CalendarEventModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("calendar_event_school_id = ? AND calendar_event_is_published = TRUE", schoolID).
		Order("calendar_event_date ASC").
		Find(&events).Error; err != nil {
		return apierror.NewStorage("calendar_features.events", err)
	}

	slots := make([]service.SlotInput, 0, len(rows))
	for _, r := range rows {
		name := fmt.Sprintf("%s - %s", r.SubjectName, r.ClassName)
		desc := ""
		if r.Room != nil {
			desc = "Ruang " + *r.Room
		}
		slots = append(slots, service.SlotInput{
			ID:          r.SlotID.String(),
			Name:        name,
			Description: desc,
			DayOfWeek:   r.DayOfWeek,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
		})
	}

	eventInputs := make([]service.EventInput, 0, len(events))
	for _, ev := range events {
		desc := ""
		if ev.CalendarEventDescription != nil {
			desc = *ev.CalendarEventDescription
		}
		eventInputs = append(eventInputs, service.EventInput{
			ID:          ev.CalendarEventID.String(),
			Title:       ev.CalendarEventTitle,
			Description: desc,
			Date:        time.Time(ev.CalendarEventDate),
			Type:        string(ev.CalendarEventType),
			IsPublished: ev.CalendarEventIsPublished,
		})
	}

	features, err := service.Expand(slots, eventInputs, ref)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Kalender berhasil disusun", features)
}
