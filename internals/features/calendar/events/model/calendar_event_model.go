package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventTypeEnum: jenis entri kalender akademik.
type EventTypeEnum string

const (
	EventTypeHoliday EventTypeEnum = "HOLIDAY"
	EventTypeExam    EventTypeEnum = "EXAM"
	EventTypeEvent   EventTypeEnum = "EVENT"
)

func (e EventTypeEnum) Valid() bool {
	switch e {
	case EventTypeHoliday, EventTypeExam, EventTypeEvent:
		return true
	default:
		return false
	}
}

type CalendarEventModel struct {
	CalendarEventID             uuid.UUID      `gorm:"column:calendar_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"calendar_event_id"`
	CalendarEventSchoolID       uuid.UUID      `gorm:"column:calendar_event_school_id;type:uuid;not null" json:"calendar_event_school_id"`
	CalendarEventAcademicYearID *uuid.UUID     `gorm:"column:calendar_event_academic_year_id;type:uuid" json:"calendar_event_academic_year_id,omitempty"`
	CalendarEventTitle          string         `gorm:"column:calendar_event_title;type:varchar(160);not null" json:"calendar_event_title"`
	CalendarEventDescription    *string        `gorm:"column:calendar_event_description;type:text" json:"calendar_event_description,omitempty"`
	CalendarEventDate           datatypes.Date `gorm:"column:calendar_event_date;type:date;not null" json:"calendar_event_date"`
	CalendarEventType           EventTypeEnum  `gorm:"column:calendar_event_type;type:varchar(16);not null" json:"calendar_event_type"`
	CalendarEventIsPublished    bool           `gorm:"column:calendar_event_is_published;not null;default:false" json:"calendar_event_is_published"`

	CalendarEventCreatedAt time.Time      `gorm:"column:calendar_event_created_at;autoCreateTime" json:"calendar_event_created_at"`
	CalendarEventUpdatedAt time.Time      `gorm:"column:calendar_event_updated_at;autoUpdateTime" json:"calendar_event_updated_at"`
	CalendarEventDeletedAt gorm.DeletedAt `gorm:"column:calendar_event_deleted_at;index" json:"calendar_event_deleted_at,omitempty"`
}

func (CalendarEventModel) TableName() string { return "calendar_events" }
