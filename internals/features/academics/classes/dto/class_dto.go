package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/classes/model"
)

type CreateClassRequest struct {
	ClassAcademicYearID    uuid.UUID  `json:"class_academic_year_id" validate:"required"`
	ClassName              string     `json:"class_name" validate:"required,min=1,max=64"`
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id" validate:"omitempty"`
}

func (r CreateClassRequest) ToModel(schoolID uuid.UUID) *model.ClassModel {
	return &model.ClassModel{
		ClassSchoolID:          schoolID,
		ClassAcademicYearID:    r.ClassAcademicYearID,
		ClassName:              strings.TrimSpace(r.ClassName),
		ClassHomeroomTeacherID: r.ClassHomeroomTeacherID,
	}
}

type UpdateClassRequest struct {
	ClassName              *string    `json:"class_name" validate:"omitempty,min=1,max=64"`
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id" validate:"omitempty"`
}

func (r *UpdateClassRequest) ApplyToModel(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassHomeroomTeacherID != nil {
		m.ClassHomeroomTeacherID = r.ClassHomeroomTeacherID
	}
}

type ListClassQuery struct {
	AcademicYearID *uuid.UUID `query:"academic_year_id"`
	Search         *string    `query:"q"`
}
