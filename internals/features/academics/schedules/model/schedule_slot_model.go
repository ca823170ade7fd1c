package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/helpers/dbtime"
)

// ScheduleSlotModel: satu pertemuan kelas mingguan berulang.
// Konvensi hari: 0=Minggu .. 6=Sabtu (input 7 dinormalisasi ke 0 di DTO).
type ScheduleSlotModel struct {
	ScheduleSlotID             uuid.UUID  `gorm:"column:schedule_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_slot_id"`
	ScheduleSlotSchoolID       uuid.UUID  `gorm:"column:schedule_slot_school_id;type:uuid;not null" json:"schedule_slot_school_id"`
	ScheduleSlotAcademicYearID uuid.UUID  `gorm:"column:schedule_slot_academic_year_id;type:uuid;not null" json:"schedule_slot_academic_year_id"`
	ScheduleSlotClassID        uuid.UUID  `gorm:"column:schedule_slot_class_id;type:uuid;not null" json:"schedule_slot_class_id"`
	ScheduleSlotSubjectID      uuid.UUID  `gorm:"column:schedule_slot_subject_id;type:uuid;not null" json:"schedule_slot_subject_id"`
	ScheduleSlotTeacherID      uuid.UUID  `gorm:"column:schedule_slot_teacher_id;type:uuid;not null" json:"schedule_slot_teacher_id"`
	ScheduleSlotDayOfWeek      int        `gorm:"column:schedule_slot_day_of_week;not null" json:"schedule_slot_day_of_week"`
	ScheduleSlotStartTime      dbtime.Tod `gorm:"column:schedule_slot_start_time;type:time;not null" json:"schedule_slot_start_time"`
	ScheduleSlotEndTime        dbtime.Tod `gorm:"column:schedule_slot_end_time;type:time;not null" json:"schedule_slot_end_time"`
	ScheduleSlotRoom           *string    `gorm:"column:schedule_slot_room;type:varchar(64)" json:"schedule_slot_room,omitempty"`

	ScheduleSlotCreatedAt time.Time      `gorm:"column:schedule_slot_created_at;autoCreateTime" json:"schedule_slot_created_at"`
	ScheduleSlotUpdatedAt time.Time      `gorm:"column:schedule_slot_updated_at;autoUpdateTime" json:"schedule_slot_updated_at"`
	ScheduleSlotDeletedAt gorm.DeletedAt `gorm:"column:schedule_slot_deleted_at;index" json:"schedule_slot_deleted_at,omitempty"`
}

func (ScheduleSlotModel) TableName() string { return "schedule_slots" }
