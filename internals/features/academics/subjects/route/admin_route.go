package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectCtl "sekolahku_backend/internals/features/academics/subjects/controller"
)

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectCtl.NewSubjectController(db)

	grp := r.Group("/subjects")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
