package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserSchoolID uuid.UUID `gorm:"column:user_school_id;type:uuid;not null" json:"user_school_id"`
	UserRoleID   uuid.UUID `gorm:"column:user_role_id;type:uuid;not null" json:"user_role_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(120);not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(160);not null" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:varchar(120);not null" json:"-"`
	UserIsActive bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`

	Role *RoleModel `gorm:"foreignKey:UserRoleID;references:RoleID" json:"role,omitempty"`
}

func (UserModel) TableName() string { return "users" }
