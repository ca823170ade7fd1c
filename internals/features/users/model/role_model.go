package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Role dengan daftar resource yang boleh diakses; dicek guard middleware.
type RoleModel struct {
	RoleID          uuid.UUID      `gorm:"column:role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"role_id"`
	RoleName        string         `gorm:"column:role_name;type:varchar(32);uniqueIndex;not null" json:"role_name"`
	RolePermissions pq.StringArray `gorm:"column:role_permissions;type:text[]" json:"role_permissions"`

	RoleCreatedAt time.Time `gorm:"column:role_created_at;autoCreateTime" json:"role_created_at"`
	RoleUpdatedAt time.Time `gorm:"column:role_updated_at;autoUpdateTime" json:"role_updated_at"`
}

func (RoleModel) TableName() string { return "roles" }
