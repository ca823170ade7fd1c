package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jenis pelanggaran beserta bobot poinnya, dikelola per sekolah.
type ViolationTypeModel struct {
	ViolationTypeID             uuid.UUID  `gorm:"column:violation_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"violation_type_id"`
	ViolationTypeSchoolID       uuid.UUID  `gorm:"column:violation_type_school_id;type:uuid;not null" json:"violation_type_school_id"`
	ViolationTypeAcademicYearID *uuid.UUID `gorm:"column:violation_type_academic_year_id;type:uuid" json:"violation_type_academic_year_id,omitempty"`
	ViolationTypeName           string     `gorm:"column:violation_type_name;type:varchar(120);not null" json:"violation_type_name"`
	ViolationTypePoints         int        `gorm:"column:violation_type_points;not null;default:0" json:"violation_type_points"`

	ViolationTypeCreatedAt time.Time      `gorm:"column:violation_type_created_at;autoCreateTime" json:"violation_type_created_at"`
	ViolationTypeUpdatedAt time.Time      `gorm:"column:violation_type_updated_at;autoUpdateTime" json:"violation_type_updated_at"`
	ViolationTypeDeletedAt gorm.DeletedAt `gorm:"column:violation_type_deleted_at;index" json:"-"`
}

func (ViolationTypeModel) TableName() string { return "violation_types" }

// Poin disalin dari jenis pelanggaran saat pencatatan; perubahan bobot
// di kemudian hari tidak mengubah catatan lama.
type StudentViolationModel struct {
	StudentViolationID         uuid.UUID      `gorm:"column:student_violation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_violation_id"`
	StudentViolationSchoolID   uuid.UUID      `gorm:"column:student_violation_school_id;type:uuid;not null" json:"student_violation_school_id"`
	StudentViolationStudentID  uuid.UUID      `gorm:"column:student_violation_student_id;type:uuid;not null" json:"student_violation_student_id"`
	StudentViolationTypeID     uuid.UUID      `gorm:"column:student_violation_type_id;type:uuid;not null" json:"student_violation_type_id"`
	StudentViolationPoints     int            `gorm:"column:student_violation_points;not null" json:"student_violation_points"`
	StudentViolationNotes      *string        `gorm:"column:student_violation_notes;type:text" json:"student_violation_notes,omitempty"`
	StudentViolationRecordedBy uuid.UUID      `gorm:"column:student_violation_recorded_by;type:uuid;not null" json:"student_violation_recorded_by"`
	StudentViolationOccurredAt datatypes.Date `gorm:"column:student_violation_occurred_at;type:date;not null" json:"student_violation_occurred_at"`

	StudentViolationCreatedAt time.Time `gorm:"column:student_violation_created_at;autoCreateTime" json:"student_violation_created_at"`
}

func (StudentViolationModel) TableName() string { return "student_violations" }
