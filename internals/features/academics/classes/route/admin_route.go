package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtl "sekolahku_backend/internals/features/academics/classes/controller"
)

func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classCtl.NewClassController(db)

	grp := r.Group("/classes")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
