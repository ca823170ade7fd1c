package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearCtl "sekolahku_backend/internals/features/academics/academic_years/controller"
)

// Rute ADMIN untuk tahun ajaran. Router 'r' sudah melewati auth + guard di level atas.
func AcademicYearAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := yearCtl.NewAcademicYearController(db)

	grp := r.Group("/academic-years")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
