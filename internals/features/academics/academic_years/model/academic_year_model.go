package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AcademicYearModel struct {
	AcademicYearID       uuid.UUID      `gorm:"column:academic_year_id;type:uuid;default:gen_random_uuid();primaryKey" json:"academic_year_id"`
	AcademicYearSchoolID uuid.UUID      `gorm:"column:academic_year_school_id;type:uuid;not null" json:"academic_year_school_id"`
	AcademicYearName     string         `gorm:"column:academic_year_name;type:varchar(32);not null" json:"academic_year_name"`
	AcademicYearStart    datatypes.Date `gorm:"column:academic_year_start_date;type:date;not null" json:"academic_year_start_date"`
	AcademicYearEnd      datatypes.Date `gorm:"column:academic_year_end_date;type:date;not null" json:"academic_year_end_date"`
	AcademicYearIsActive bool           `gorm:"column:academic_year_is_active;not null;default:false" json:"academic_year_is_active"`

	AcademicYearCreatedAt time.Time      `gorm:"column:academic_year_created_at;autoCreateTime" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"column:academic_year_updated_at;autoUpdateTime" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"academic_year_deleted_at,omitempty"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }
