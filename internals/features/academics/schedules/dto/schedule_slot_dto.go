package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/schedules/model"
	"sekolahku_backend/internals/helpers/apierror"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* ===================== REQUESTS ===================== */

type CreateScheduleSlotRequest struct {
	ScheduleSlotAcademicYearID uuid.UUID `json:"schedule_slot_academic_year_id" validate:"required"`
	ScheduleSlotClassID        uuid.UUID `json:"schedule_slot_class_id" validate:"required"`
	ScheduleSlotSubjectID      uuid.UUID `json:"schedule_slot_subject_id" validate:"required"`
	ScheduleSlotTeacherID      uuid.UUID `json:"schedule_slot_teacher_id" validate:"required"`
	ScheduleSlotDayOfWeek      int       `json:"schedule_slot_day_of_week" validate:"min=0,max=7"`
	ScheduleSlotStartTime      string    `json:"schedule_slot_start_time" validate:"required"`
	ScheduleSlotEndTime        string    `json:"schedule_slot_end_time" validate:"required"`
	ScheduleSlotRoom           *string   `json:"schedule_slot_room" validate:"omitempty,max=64"`
}

// NormalizeDayOfWeek: konvensi kanonik 0=Minggu; sebagian sumber memakai 7 untuk Minggu.
func NormalizeDayOfWeek(d int) int {
	if d == 7 {
		return 0
	}
	return d
}

func (r CreateScheduleSlotRequest) ToModel(schoolID uuid.UUID) (*model.ScheduleSlotModel, error) {
	start, err := dbtime.Parse(r.ScheduleSlotStartTime)
	if err != nil {
		return nil, apierror.NewValidation("schedule_slot_start_time", "format jam harus HH:MM")
	}
	end, err := dbtime.Parse(r.ScheduleSlotEndTime)
	if err != nil {
		return nil, apierror.NewValidation("schedule_slot_end_time", "format jam harus HH:MM")
	}

	m := &model.ScheduleSlotModel{
		ScheduleSlotSchoolID:       schoolID,
		ScheduleSlotAcademicYearID: r.ScheduleSlotAcademicYearID,
		ScheduleSlotClassID:        r.ScheduleSlotClassID,
		ScheduleSlotSubjectID:      r.ScheduleSlotSubjectID,
		ScheduleSlotTeacherID:      r.ScheduleSlotTeacherID,
		ScheduleSlotDayOfWeek:      NormalizeDayOfWeek(r.ScheduleSlotDayOfWeek),
		ScheduleSlotStartTime:      start,
		ScheduleSlotEndTime:        end,
	}
	if r.ScheduleSlotRoom != nil {
		room := strings.TrimSpace(*r.ScheduleSlotRoom)
		if room != "" {
			m.ScheduleSlotRoom = &room
		}
	}
	return m, nil
}

/* ===================== UPDATE (partial) ===================== */

type UpdateScheduleSlotRequest struct {
	ScheduleSlotDayOfWeek *int    `json:"schedule_slot_day_of_week" validate:"omitempty,min=0,max=7"`
	ScheduleSlotStartTime *string `json:"schedule_slot_start_time" validate:"omitempty"`
	ScheduleSlotEndTime   *string `json:"schedule_slot_end_time" validate:"omitempty"`
	ScheduleSlotTeacherID *uuid.UUID `json:"schedule_slot_teacher_id" validate:"omitempty"`
	ScheduleSlotRoom      *string `json:"schedule_slot_room" validate:"omitempty,max=64"`
}

func (r *UpdateScheduleSlotRequest) ApplyToModel(m *model.ScheduleSlotModel) error {
	if r.ScheduleSlotDayOfWeek != nil {
		m.ScheduleSlotDayOfWeek = NormalizeDayOfWeek(*r.ScheduleSlotDayOfWeek)
	}
	if r.ScheduleSlotStartTime != nil {
		t, err := dbtime.Parse(*r.ScheduleSlotStartTime)
		if err != nil {
			return apierror.NewValidation("schedule_slot_start_time", "format jam harus HH:MM")
		}
		m.ScheduleSlotStartTime = t
	}
	if r.ScheduleSlotEndTime != nil {
		t, err := dbtime.Parse(*r.ScheduleSlotEndTime)
		if err != nil {
			return apierror.NewValidation("schedule_slot_end_time", "format jam harus HH:MM")
		}
		m.ScheduleSlotEndTime = t
	}
	if r.ScheduleSlotTeacherID != nil {
		m.ScheduleSlotTeacherID = *r.ScheduleSlotTeacherID
	}
	if r.ScheduleSlotRoom != nil {
		room := strings.TrimSpace(*r.ScheduleSlotRoom)
		if room == "" {
			m.ScheduleSlotRoom = nil
		} else {
			m.ScheduleSlotRoom = &room
		}
	}
	return nil
}

type ListScheduleSlotQuery struct {
	AcademicYearID *uuid.UUID `query:"academic_year_id"`
	ClassID        *uuid.UUID `query:"class_id"`
	TeacherID      *uuid.UUID `query:"teacher_id"`
	DayOfWeek      *int       `query:"day_of_week"`
}
