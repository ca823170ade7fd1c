package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnnouncementClassID nil berarti pengumuman untuk seluruh sekolah.
type AnnouncementModel struct {
	AnnouncementID          uuid.UUID      `gorm:"column:announcement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"announcement_id"`
	AnnouncementSchoolID    uuid.UUID      `gorm:"column:announcement_school_id;type:uuid;not null" json:"announcement_school_id"`
	AnnouncementClassID     *uuid.UUID     `gorm:"column:announcement_class_id;type:uuid" json:"announcement_class_id,omitempty"`
	AnnouncementTitle       string         `gorm:"column:announcement_title;type:varchar(200);not null" json:"announcement_title"`
	AnnouncementContent     string         `gorm:"column:announcement_content;type:text;not null" json:"announcement_content"`
	AnnouncementDate        datatypes.Date `gorm:"column:announcement_date;type:date;not null" json:"announcement_date"`
	AnnouncementIsPublished bool           `gorm:"column:announcement_is_published;not null;default:true" json:"announcement_is_published"`
	AnnouncementCreatedBy   uuid.UUID      `gorm:"column:announcement_created_by;type:uuid;not null" json:"announcement_created_by"`

	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"-"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
