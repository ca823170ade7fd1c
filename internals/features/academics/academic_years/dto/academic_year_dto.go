package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/academics/academic_years/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

// Create: school_id diambil dari token, bukan dari body.
type CreateAcademicYearRequest struct {
	AcademicYearName     string `json:"academic_year_name" validate:"required,min=4,max=32"`
	AcademicYearStart    string `json:"academic_year_start_date" validate:"required,datetime=2006-01-02"`
	AcademicYearEnd      string `json:"academic_year_end_date" validate:"required,datetime=2006-01-02"`
	AcademicYearIsActive *bool  `json:"academic_year_is_active" validate:"omitempty"`
}

func (r CreateAcademicYearRequest) ToModel(schoolID uuid.UUID) *model.AcademicYearModel {
	start, _ := time.Parse("2006-01-02", strings.TrimSpace(r.AcademicYearStart))
	end, _ := time.Parse("2006-01-02", strings.TrimSpace(r.AcademicYearEnd))

	m := &model.AcademicYearModel{
		AcademicYearSchoolID: schoolID,
		AcademicYearName:     strings.TrimSpace(r.AcademicYearName),
		AcademicYearStart:    datatypes.Date(start),
		AcademicYearEnd:      datatypes.Date(end),
	}
	if r.AcademicYearIsActive != nil {
		m.AcademicYearIsActive = *r.AcademicYearIsActive
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateAcademicYearRequest struct {
	AcademicYearName     *string `json:"academic_year_name" validate:"omitempty,min=4,max=32"`
	AcademicYearStart    *string `json:"academic_year_start_date" validate:"omitempty,datetime=2006-01-02"`
	AcademicYearEnd      *string `json:"academic_year_end_date" validate:"omitempty,datetime=2006-01-02"`
	AcademicYearIsActive *bool   `json:"academic_year_is_active" validate:"omitempty"`
}

func (r *UpdateAcademicYearRequest) ApplyToModel(m *model.AcademicYearModel) {
	if r.AcademicYearName != nil {
		m.AcademicYearName = strings.TrimSpace(*r.AcademicYearName)
	}
	if r.AcademicYearStart != nil {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.AcademicYearStart)); err == nil {
			m.AcademicYearStart = datatypes.Date(d)
		}
	}
	if r.AcademicYearEnd != nil {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.AcademicYearEnd)); err == nil {
			m.AcademicYearEnd = datatypes.Date(d)
		}
	}
	if r.AcademicYearIsActive != nil {
		m.AcademicYearIsActive = *r.AcademicYearIsActive
	}
}
