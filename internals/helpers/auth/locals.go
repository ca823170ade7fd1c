package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang dihydrate oleh middleware AuthJWT.
const (
	LocUserID      = "user_id"
	LocSchoolID    = "school_id"
	LocTeacherID   = "teacher_id"
	LocStudentID   = "student_id"
	LocRole        = "role"
	LocPermissions = "permissions"
)

func uuidLocal(c *fiber.Ctx, key, label string) (uuid.UUID, error) {
	v, ok := c.Locals(key).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, label+" tidak ditemukan di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, label+" tidak valid")
	}
	return id, nil
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocUserID, "user_id")
}

func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocSchoolID, "school_id")
}

func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocTeacherID, "teacher_id")
}

func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocStudentID, "student_id")
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return v
	}
	return ""
}

// GetPermissionsFromToken mengembalikan daftar permission dari claims
// (hasil hydrate middleware; bentuk aslinya []interface{} dari JSON).
func GetPermissionsFromToken(c *fiber.Ctx) []string {
	switch v := c.Locals(LocPermissions).(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, p := range v {
			if s, ok := p.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
