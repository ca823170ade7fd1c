package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/attendance/teachers/model"
	"sekolahku_backend/internals/helpers/apierror"
)

/* ===================== BULK ===================== */

// Satu status & tanggal untuk banyak guru sekaligus.
type BulkTeacherAttendanceRequest struct {
	TeacherIDs  []uuid.UUID `json:"teacher_ids" validate:"required,min=1,dive,required"`
	Date        string      `json:"date" validate:"required"` // YYYY-MM-DD
	Status      string      `json:"status" validate:"required"`
	Notes       *string     `json:"notes" validate:"omitempty,max=500"`
	CheckinTime *string     `json:"checkin_time" validate:"omitempty"` // HH:MM, default "sekarang"
}

func (r BulkTeacherAttendanceRequest) ParseDate() (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", r.Date, time.Local)
	if err != nil {
		return time.Time{}, apierror.NewValidation("date", "format tanggal harus YYYY-MM-DD")
	}
	return d, nil
}

func (r BulkTeacherAttendanceRequest) ParseCheckin() (*time.Time, error) {
	if r.CheckinTime == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*r.CheckinTime)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return nil, apierror.NewValidation("checkin_time", "format jam harus HH:MM")
	}
	return &t, nil
}

func (r BulkTeacherAttendanceRequest) ValidStatus() bool {
	return model.TeacherAttendanceStatus(r.Status).Valid()
}

/* ===================== SINGLE ===================== */

type CreateTeacherAttendanceRequest struct {
	TeacherAttendanceTeacherID uuid.UUID `json:"teacher_attendance_teacher_id" validate:"required"`
	TeacherAttendanceDate      string    `json:"teacher_attendance_date" validate:"required"`
	TeacherAttendanceStatus    string    `json:"teacher_attendance_status" validate:"required"`
	TeacherAttendanceNotes     *string   `json:"teacher_attendance_notes" validate:"omitempty,max=500"`
}

/* ===================== UPDATE (partial) ===================== */

// Dipakai juga untuk check-out di akhir hari.
type UpdateTeacherAttendanceRequest struct {
	TeacherAttendanceStatus       *string `json:"teacher_attendance_status" validate:"omitempty"`
	TeacherAttendanceNotes        *string `json:"teacher_attendance_notes" validate:"omitempty,max=500"`
	TeacherAttendanceCheckoutTime *string `json:"teacher_attendance_checkout_time" validate:"omitempty"` // HH:MM
}

type ListTeacherAttendanceQuery struct {
	TeacherID *uuid.UUID `query:"teacher_id"`
	DateFrom  *string    `query:"date_from"`
	DateTo    *string    `query:"date_to"`
	Status    *string    `query:"status"`
}
