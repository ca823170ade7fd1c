package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/calendar/events/model"
)

type CreateCalendarEventRequest struct {
	CalendarEventAcademicYearID *uuid.UUID `json:"calendar_event_academic_year_id" validate:"omitempty"`
	CalendarEventTitle          string     `json:"calendar_event_title" validate:"required,min=3,max=160"`
	CalendarEventDescription    *string    `json:"calendar_event_description" validate:"omitempty"`
	CalendarEventDate           string     `json:"calendar_event_date" validate:"required,datetime=2006-01-02"`
	CalendarEventType           string     `json:"calendar_event_type" validate:"required,oneof=HOLIDAY EXAM EVENT"`
	CalendarEventIsPublished    *bool      `json:"calendar_event_is_published" validate:"omitempty"`
}

func (r CreateCalendarEventRequest) ToModel(schoolID uuid.UUID) *model.CalendarEventModel {
	d, _ := time.Parse("2006-01-02", strings.TrimSpace(r.CalendarEventDate))

	m := &model.CalendarEventModel{
		CalendarEventSchoolID:       schoolID,
		CalendarEventAcademicYearID: r.CalendarEventAcademicYearID,
		CalendarEventTitle:          strings.TrimSpace(r.CalendarEventTitle),
		CalendarEventDate:           datatypes.Date(d),
		CalendarEventType:           model.EventTypeEnum(r.CalendarEventType),
	}
	if r.CalendarEventDescription != nil {
		desc := strings.TrimSpace(*r.CalendarEventDescription)
		if desc != "" {
			m.CalendarEventDescription = &desc
		}
	}
	if r.CalendarEventIsPublished != nil {
		m.CalendarEventIsPublished = *r.CalendarEventIsPublished
	}
	return m
}

type UpdateCalendarEventRequest struct {
	CalendarEventTitle       *string `json:"calendar_event_title" validate:"omitempty,min=3,max=160"`
	CalendarEventDescription *string `json:"calendar_event_description" validate:"omitempty"`
	CalendarEventDate        *string `json:"calendar_event_date" validate:"omitempty,datetime=2006-01-02"`
	CalendarEventType        *string `json:"calendar_event_type" validate:"omitempty,oneof=HOLIDAY EXAM EVENT"`
	CalendarEventIsPublished *bool   `json:"calendar_event_is_published" validate:"omitempty"`
}

func (r *UpdateCalendarEventRequest) ApplyToModel(m *model.CalendarEventModel) {
	if r.CalendarEventTitle != nil {
		m.CalendarEventTitle = strings.TrimSpace(*r.CalendarEventTitle)
	}
	if r.CalendarEventDescription != nil {
		desc := strings.TrimSpace(*r.CalendarEventDescription)
		if desc == "" {
			m.CalendarEventDescription = nil
		} else {
			m.CalendarEventDescription = &desc
		}
	}
	if r.CalendarEventDate != nil {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.CalendarEventDate)); err == nil {
			m.CalendarEventDate = datatypes.Date(d)
		}
	}
	if r.CalendarEventType != nil {
		m.CalendarEventType = model.EventTypeEnum(*r.CalendarEventType)
	}
	if r.CalendarEventIsPublished != nil {
		m.CalendarEventIsPublished = *r.CalendarEventIsPublished
	}
}
