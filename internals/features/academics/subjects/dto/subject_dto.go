package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectCode string `json:"subject_code" validate:"required,min=1,max=32"`
	SubjectName string `json:"subject_name" validate:"required,min=1,max=120"`
}

func (r CreateSubjectRequest) ToModel(schoolID uuid.UUID) *model.SubjectModel {
	return &model.SubjectModel{
		SubjectSchoolID: schoolID,
		SubjectCode:     strings.ToUpper(strings.TrimSpace(r.SubjectCode)),
		SubjectName:     strings.TrimSpace(r.SubjectName),
	}
}

type UpdateSubjectRequest struct {
	SubjectCode *string `json:"subject_code" validate:"omitempty,min=1,max=32"`
	SubjectName *string `json:"subject_name" validate:"omitempty,min=1,max=120"`
}

func (r *UpdateSubjectRequest) ApplyToModel(m *model.SubjectModel) {
	if r.SubjectCode != nil {
		m.SubjectCode = strings.ToUpper(strings.TrimSpace(*r.SubjectCode))
	}
	if r.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
}
