package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/attendance/students/model"
	"sekolahku_backend/internals/helpers/apierror"
)

/* ===================== BULK ===================== */

// Absensi satu kelas sekaligus; schedule_slot_id opsional (harian vs per jam pelajaran).
type BulkStudentAttendanceRequest struct {
	StudentIDs     []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
	ScheduleSlotID *uuid.UUID  `json:"schedule_slot_id" validate:"omitempty"`
	Date           string      `json:"date" validate:"required"` // YYYY-MM-DD
	Status         string      `json:"status" validate:"required"`
	Notes          *string     `json:"notes" validate:"omitempty,max=500"`
}

func (r BulkStudentAttendanceRequest) ParseDate() (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", r.Date, time.Local)
	if err != nil {
		return time.Time{}, apierror.NewValidation("date", "format tanggal harus YYYY-MM-DD")
	}
	return d, nil
}

func (r BulkStudentAttendanceRequest) ValidStatus() bool {
	return model.StudentAttendanceStatus(r.Status).Valid()
}

/* ===================== SINGLE ===================== */

type CreateStudentAttendanceRequest struct {
	StudentAttendanceStudentID      uuid.UUID  `json:"student_attendance_student_id" validate:"required"`
	StudentAttendanceScheduleSlotID *uuid.UUID `json:"student_attendance_schedule_slot_id" validate:"omitempty"`
	StudentAttendanceDate           string     `json:"student_attendance_date" validate:"required"`
	StudentAttendanceStatus         string     `json:"student_attendance_status" validate:"required"`
	StudentAttendanceNotes          *string    `json:"student_attendance_notes" validate:"omitempty,max=500"`
}

/* ===================== UPDATE (partial) ===================== */

type UpdateStudentAttendanceRequest struct {
	StudentAttendanceStatus *string `json:"student_attendance_status" validate:"omitempty"`
	StudentAttendanceNotes  *string `json:"student_attendance_notes" validate:"omitempty,max=500"`
}

type ListStudentAttendanceQuery struct {
	StudentID      *uuid.UUID `query:"student_id"`
	ScheduleSlotID *uuid.UUID `query:"schedule_slot_id"`
	DateFrom       *string    `query:"date_from"`
	DateTo         *string    `query:"date_to"`
	Status         *string    `query:"status"`
}
