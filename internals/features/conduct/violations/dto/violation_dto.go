package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/conduct/violations/model"
	"sekolahku_backend/internals/helpers/apierror"
)

/* ===================== VIOLATION TYPES ===================== */

type CreateViolationTypeRequest struct {
	ViolationTypeAcademicYearID *uuid.UUID `json:"violation_type_academic_year_id" validate:"omitempty"`
	ViolationTypeName           string     `json:"violation_type_name" validate:"required,max=120"`
	ViolationTypePoints         int        `json:"violation_type_points" validate:"min=0,max=1000"`
}

func (r CreateViolationTypeRequest) ToModel(schoolID uuid.UUID) *model.ViolationTypeModel {
	return &model.ViolationTypeModel{
		ViolationTypeSchoolID:       schoolID,
		ViolationTypeAcademicYearID: r.ViolationTypeAcademicYearID,
		ViolationTypeName:           strings.TrimSpace(r.ViolationTypeName),
		ViolationTypePoints:         r.ViolationTypePoints,
	}
}

type UpdateViolationTypeRequest struct {
	ViolationTypeName   *string `json:"violation_type_name" validate:"omitempty,max=120"`
	ViolationTypePoints *int    `json:"violation_type_points" validate:"omitempty,min=0,max=1000"`
}

func (r *UpdateViolationTypeRequest) ApplyToModel(m *model.ViolationTypeModel) {
	if r.ViolationTypeName != nil {
		m.ViolationTypeName = strings.TrimSpace(*r.ViolationTypeName)
	}
	if r.ViolationTypePoints != nil {
		m.ViolationTypePoints = *r.ViolationTypePoints
	}
}

/* ===================== STUDENT VIOLATIONS ===================== */

type CreateStudentViolationRequest struct {
	StudentViolationStudentID  uuid.UUID `json:"student_violation_student_id" validate:"required"`
	StudentViolationTypeID     uuid.UUID `json:"student_violation_type_id" validate:"required"`
	StudentViolationNotes      *string   `json:"student_violation_notes" validate:"omitempty,max=500"`
	StudentViolationOccurredAt string    `json:"student_violation_occurred_at" validate:"required"` // YYYY-MM-DD
}

func (r CreateStudentViolationRequest) ParseOccurredAt() (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", r.StudentViolationOccurredAt, time.Local)
	if err != nil {
		return time.Time{}, apierror.NewValidation("student_violation_occurred_at", "format tanggal harus YYYY-MM-DD")
	}
	return d, nil
}

type ListStudentViolationQuery struct {
	StudentID *uuid.UUID `query:"student_id"`
	TypeID    *uuid.UUID `query:"type_id"`
	DateFrom  *string    `query:"date_from"`
	DateTo    *string    `query:"date_to"`
}
