package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID                uuid.UUID  `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassSchoolID          uuid.UUID  `gorm:"column:class_school_id;type:uuid;not null" json:"class_school_id"`
	ClassAcademicYearID    uuid.UUID  `gorm:"column:class_academic_year_id;type:uuid;not null" json:"class_academic_year_id"`
	ClassName              string     `gorm:"column:class_name;type:varchar(64);not null" json:"class_name"`
	ClassHomeroomTeacherID *uuid.UUID `gorm:"column:class_homeroom_teacher_id;type:uuid" json:"class_homeroom_teacher_id,omitempty"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
