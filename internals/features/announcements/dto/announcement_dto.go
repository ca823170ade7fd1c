package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/announcements/model"
	"sekolahku_backend/internals/helpers/apierror"
)

type CreateAnnouncementRequest struct {
	AnnouncementClassID     *uuid.UUID `json:"announcement_class_id" validate:"omitempty"`
	AnnouncementTitle       string     `json:"announcement_title" validate:"required,max=200"`
	AnnouncementContent     string     `json:"announcement_content" validate:"required"`
	AnnouncementDate        string     `json:"announcement_date" validate:"required"` // YYYY-MM-DD
	AnnouncementIsPublished *bool      `json:"announcement_is_published" validate:"omitempty"`
}

func (r CreateAnnouncementRequest) ToModel(schoolID, createdBy uuid.UUID) (*model.AnnouncementModel, error) {
	d, err := time.ParseInLocation("2006-01-02", r.AnnouncementDate, time.Local)
	if err != nil {
		return nil, apierror.NewValidation("announcement_date", "format tanggal harus YYYY-MM-DD")
	}

	m := &model.AnnouncementModel{
		AnnouncementSchoolID:    schoolID,
		AnnouncementClassID:     r.AnnouncementClassID,
		AnnouncementTitle:       strings.TrimSpace(r.AnnouncementTitle),
		AnnouncementContent:     r.AnnouncementContent,
		AnnouncementDate:        datatypes.Date(d),
		AnnouncementIsPublished: true,
		AnnouncementCreatedBy:   createdBy,
	}
	if r.AnnouncementIsPublished != nil {
		m.AnnouncementIsPublished = *r.AnnouncementIsPublished
	}
	return m, nil
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle       *string `json:"announcement_title" validate:"omitempty,max=200"`
	AnnouncementContent     *string `json:"announcement_content" validate:"omitempty"`
	AnnouncementDate        *string `json:"announcement_date" validate:"omitempty"`
	AnnouncementIsPublished *bool   `json:"announcement_is_published" validate:"omitempty"`
}

func (r *UpdateAnnouncementRequest) ApplyToModel(m *model.AnnouncementModel) error {
	if r.AnnouncementTitle != nil {
		m.AnnouncementTitle = strings.TrimSpace(*r.AnnouncementTitle)
	}
	if r.AnnouncementContent != nil {
		m.AnnouncementContent = *r.AnnouncementContent
	}
	if r.AnnouncementDate != nil {
		d, err := time.ParseInLocation("2006-01-02", *r.AnnouncementDate, time.Local)
		if err != nil {
			return apierror.NewValidation("announcement_date", "format tanggal harus YYYY-MM-DD")
		}
		m.AnnouncementDate = datatypes.Date(d)
	}
	if r.AnnouncementIsPublished != nil {
		m.AnnouncementIsPublished = *r.AnnouncementIsPublished
	}
	return nil
}

type ListAnnouncementQuery struct {
	ClassID  *uuid.UUID `query:"class_id"`
	DateFrom *string    `query:"date_from"`
	DateTo   *string    `query:"date_to"`
	Search   *string    `query:"search"`
}
