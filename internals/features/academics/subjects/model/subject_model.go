package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID       uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectSchoolID uuid.UUID `gorm:"column:subject_school_id;type:uuid;not null" json:"subject_school_id"`
	SubjectCode     string    `gorm:"column:subject_code;type:varchar(32);not null" json:"subject_code"`
	SubjectName     string    `gorm:"column:subject_name;type:varchar(120);not null" json:"subject_name"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
