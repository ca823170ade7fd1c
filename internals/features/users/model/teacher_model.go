package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID       uuid.UUID  `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherSchoolID uuid.UUID  `gorm:"column:teacher_school_id;type:uuid;not null" json:"teacher_school_id"`
	TeacherUserID   *uuid.UUID `gorm:"column:teacher_user_id;type:uuid" json:"teacher_user_id,omitempty"`
	TeacherNIP      *string    `gorm:"column:teacher_nip;type:varchar(32)" json:"teacher_nip,omitempty"`
	TeacherName     string     `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`
	TeacherPhone    *string    `gorm:"column:teacher_phone;type:varchar(24)" json:"teacher_phone,omitempty"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"-"`
}

func (TeacherModel) TableName() string { return "teachers" }
