package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudentAttendanceStatus: status kehadiran siswa.
type StudentAttendanceStatus string

const (
	StudentPresent StudentAttendanceStatus = "present"
	StudentLate    StudentAttendanceStatus = "late"
	StudentExcused StudentAttendanceStatus = "excused"
	StudentSick    StudentAttendanceStatus = "sick"
	StudentAbsent  StudentAttendanceStatus = "absent"
)

func (s StudentAttendanceStatus) Valid() bool {
	switch s {
	case StudentPresent, StudentLate, StudentExcused, StudentSick, StudentAbsent:
		return true
	default:
		return false
	}
}

// Keunikan dijaga dua partial unique index: harian (slot NULL) dan per-slot.
type StudentAttendanceModel struct {
	StudentAttendanceID             uuid.UUID               `gorm:"column:student_attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_attendance_id"`
	StudentAttendanceSchoolID       uuid.UUID               `gorm:"column:student_attendance_school_id;type:uuid;not null" json:"student_attendance_school_id"`
	StudentAttendanceStudentID      uuid.UUID               `gorm:"column:student_attendance_student_id;type:uuid;not null" json:"student_attendance_student_id"`
	StudentAttendanceScheduleSlotID *uuid.UUID              `gorm:"column:student_attendance_schedule_slot_id;type:uuid" json:"student_attendance_schedule_slot_id,omitempty"`
	StudentAttendanceDate           datatypes.Date          `gorm:"column:student_attendance_date;type:date;not null" json:"student_attendance_date"`
	StudentAttendanceStatus         StudentAttendanceStatus `gorm:"column:student_attendance_status;type:varchar(8);not null" json:"student_attendance_status"`
	StudentAttendanceNotes          *string                 `gorm:"column:student_attendance_notes;type:text" json:"student_attendance_notes,omitempty"`
	StudentAttendanceCreatedBy      uuid.UUID               `gorm:"column:student_attendance_created_by;type:uuid;not null" json:"student_attendance_created_by"`

	StudentAttendanceCreatedAt time.Time `gorm:"column:student_attendance_created_at;autoCreateTime" json:"student_attendance_created_at"`
	StudentAttendanceUpdatedAt time.Time `gorm:"column:student_attendance_updated_at;autoUpdateTime" json:"student_attendance_updated_at"`
}

func (StudentAttendanceModel) TableName() string { return "student_attendances" }
