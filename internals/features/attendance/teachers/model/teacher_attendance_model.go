package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/helpers/dbtime"
)

// TeacherAttendanceStatus: status kehadiran guru.
type TeacherAttendanceStatus string

const (
	TeacherHadir TeacherAttendanceStatus = "hadir"
	TeacherSakit TeacherAttendanceStatus = "sakit"
	TeacherIzin  TeacherAttendanceStatus = "izin"
	TeacherAlfa  TeacherAttendanceStatus = "alfa"
)

func (s TeacherAttendanceStatus) Valid() bool {
	switch s {
	case TeacherHadir, TeacherSakit, TeacherIzin, TeacherAlfa:
		return true
	default:
		return false
	}
}

// Satu record per (guru, tanggal) — dijaga unique index uq_teacher_attendances_per_day.
type TeacherAttendanceModel struct {
	TeacherAttendanceID           uuid.UUID               `gorm:"column:teacher_attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_attendance_id"`
	TeacherAttendanceSchoolID     uuid.UUID               `gorm:"column:teacher_attendance_school_id;type:uuid;not null" json:"teacher_attendance_school_id"`
	TeacherAttendanceTeacherID    uuid.UUID               `gorm:"column:teacher_attendance_teacher_id;type:uuid;not null" json:"teacher_attendance_teacher_id"`
	TeacherAttendanceDate         datatypes.Date          `gorm:"column:teacher_attendance_date;type:date;not null" json:"teacher_attendance_date"`
	TeacherAttendanceStatus       TeacherAttendanceStatus `gorm:"column:teacher_attendance_status;type:varchar(8);not null" json:"teacher_attendance_status"`
	TeacherAttendanceNotes        *string                 `gorm:"column:teacher_attendance_notes;type:text" json:"teacher_attendance_notes,omitempty"`
	TeacherAttendanceCheckinTime  *dbtime.Tod             `gorm:"column:teacher_attendance_checkin_time;type:time" json:"teacher_attendance_checkin_time,omitempty"`
	TeacherAttendanceCheckoutTime *dbtime.Tod             `gorm:"column:teacher_attendance_checkout_time;type:time" json:"teacher_attendance_checkout_time,omitempty"`
	TeacherAttendanceCreatedBy    uuid.UUID               `gorm:"column:teacher_attendance_created_by;type:uuid;not null" json:"teacher_attendance_created_by"`

	TeacherAttendanceCreatedAt time.Time `gorm:"column:teacher_attendance_created_at;autoCreateTime" json:"teacher_attendance_created_at"`
	TeacherAttendanceUpdatedAt time.Time `gorm:"column:teacher_attendance_updated_at;autoUpdateTime" json:"teacher_attendance_updated_at"`
}

func (TeacherAttendanceModel) TableName() string { return "teacher_attendances" }
