package features

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// RequirePermission: guard eksplisit (subject, resource) → allow/deny.
// Permission dibaca dari claims token, dicek SEBELUM handler jalan —
// tidak ada pengecekan role ad-hoc di dalam handler.
func RequirePermission(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// admin selalu lolos
		if helperAuth.GetRoleFromToken(c) == constants.RoleAdmin {
			return c.Next()
		}
		for _, p := range helperAuth.GetPermissionsFromToken(c) {
			if p == resource {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Tidak punya akses ke fitur "+resource)
	}
}

// RequireRole membatasi grup route ke role tertentu.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := helperAuth.GetRoleFromToken(c)
		for _, r := range roles {
			if got == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Role tidak diizinkan mengakses fitur ini")
	}
}

// RequirePathScopeMatch memastikan :school_id di path sama dengan school_id token.
func RequirePathScopeMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pathID := c.Params("school_id")
		if pathID == "" {
			return c.Next()
		}
		tokenID, err := helperAuth.GetSchoolIDFromToken(c)
		if err != nil {
			return err
		}
		if pathID != tokenID.String() {
			return fiber.NewError(fiber.StatusForbidden, "school_id tidak sesuai dengan token")
		}
		return c.Next()
	}
}
