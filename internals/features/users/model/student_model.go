package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID       uuid.UUID  `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentSchoolID uuid.UUID  `gorm:"column:student_school_id;type:uuid;not null" json:"student_school_id"`
	StudentUserID   *uuid.UUID `gorm:"column:student_user_id;type:uuid" json:"student_user_id,omitempty"`
	StudentClassID  *uuid.UUID `gorm:"column:student_class_id;type:uuid" json:"student_class_id,omitempty"`
	StudentNIS      string     `gorm:"column:student_nis;type:varchar(32);not null" json:"student_nis"`
	StudentName     string     `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentGuardian *string    `gorm:"column:student_guardian;type:varchar(120)" json:"student_guardian,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }
