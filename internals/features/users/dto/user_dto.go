package dto

import (
	"strings"

	"github.com/google/uuid"
)

/* ===================== ROLES ===================== */

type CreateRoleRequest struct {
	RoleName        string   `json:"role_name" validate:"required,max=32"`
	RolePermissions []string `json:"role_permissions" validate:"required,dive,required"`
}

type UpdateRoleRequest struct {
	RolePermissions *[]string `json:"role_permissions" validate:"omitempty,dive,required"`
}

/* ===================== USERS ===================== */

type CreateUserRequest struct {
	UserRoleID   uuid.UUID `json:"user_role_id" validate:"required"`
	UserName     string    `json:"user_name" validate:"required,max=120"`
	UserEmail    string    `json:"user_email" validate:"required,email,max=160"`
	UserPassword string    `json:"user_password" validate:"required,min=8,max=72"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type UpdateUserRequest struct {
	UserRoleID   *uuid.UUID `json:"user_role_id" validate:"omitempty"`
	UserName     *string    `json:"user_name" validate:"omitempty,max=120"`
	UserPassword *string    `json:"user_password" validate:"omitempty,min=8,max=72"`
	UserIsActive *bool      `json:"user_is_active" validate:"omitempty"`
}

type ListUserQuery struct {
	RoleID *uuid.UUID `query:"role_id"`
	Search *string    `query:"search"`
}

/* ===================== PROFILES ===================== */

// Struct tertutup per jenis subjek: field siswa tidak bisa menyelundup ke guru.
type CreateTeacherRequest struct {
	TeacherUserID *uuid.UUID `json:"teacher_user_id" validate:"omitempty"`
	TeacherNIP    *string    `json:"teacher_nip" validate:"omitempty,max=32"`
	TeacherName   string     `json:"teacher_name" validate:"required,max=120"`
	TeacherPhone  *string    `json:"teacher_phone" validate:"omitempty,max=24"`
}

type CreateStudentRequest struct {
	StudentUserID   *uuid.UUID `json:"student_user_id" validate:"omitempty"`
	StudentClassID  *uuid.UUID `json:"student_class_id" validate:"omitempty"`
	StudentNIS      string     `json:"student_nis" validate:"required,max=32"`
	StudentName     string     `json:"student_name" validate:"required,max=120"`
	StudentGuardian *string    `json:"student_guardian" validate:"omitempty,max=120"`
}

type UpdateTeacherRequest struct {
	TeacherNIP   *string `json:"teacher_nip" validate:"omitempty,max=32"`
	TeacherName  *string `json:"teacher_name" validate:"omitempty,max=120"`
	TeacherPhone *string `json:"teacher_phone" validate:"omitempty,max=24"`
}

type UpdateStudentRequest struct {
	StudentClassID  *uuid.UUID `json:"student_class_id" validate:"omitempty"`
	StudentName     *string    `json:"student_name" validate:"omitempty,max=120"`
	StudentGuardian *string    `json:"student_guardian" validate:"omitempty,max=120"`
}
