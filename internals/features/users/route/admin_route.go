package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtl "sekolahku_backend/internals/features/users/controller"
)

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	users := userCtl.NewUserController(db)
	roles := userCtl.NewRoleController(db)
	teachers := userCtl.NewTeacherController(db)
	students := userCtl.NewStudentController(db)

	u := r.Group("/users")
	u.Get("/", users.List)
	u.Post("/", users.Create)
	u.Post("/import", users.Import)
	u.Patch("/:id", users.Update)
	u.Delete("/:id", users.Delete)

	rl := r.Group("/roles")
	rl.Get("/", roles.List)
	rl.Post("/", roles.Create)
	rl.Patch("/:id", roles.Update)

	t := r.Group("/teachers")
	t.Get("/", teachers.List)
	t.Post("/", teachers.Create)
	t.Patch("/:id", teachers.Update)
	t.Delete("/:id", teachers.Delete)

	s := r.Group("/students")
	s.Get("/", students.List)
	s.Post("/", students.Create)
	s.Patch("/:id", students.Update)
	s.Delete("/:id", students.Delete)
}
