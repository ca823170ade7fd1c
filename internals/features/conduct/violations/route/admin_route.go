package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	violationCtl "sekolahku_backend/internals/features/conduct/violations/controller"
)

func ViolationAdminRoutes(r fiber.Router, db *gorm.DB) {
	typeCtl := violationCtl.NewViolationTypeController(db)
	recCtl := violationCtl.NewStudentViolationController(db)

	types := r.Group("/violation-types")
	types.Get("/", typeCtl.List)
	types.Post("/", typeCtl.Create)
	types.Patch("/:id", typeCtl.Update)
	types.Delete("/:id", typeCtl.Delete)

	recs := r.Group("/student-violations")
	recs.Get("/", recCtl.List)
	recs.Get("/summary", recCtl.Summary)
	recs.Post("/", recCtl.Create)
	recs.Delete("/:id", recCtl.Delete)
}
