package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtl "sekolahku_backend/internals/features/attendance/teachers/controller"
)

func TeacherAttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.NewTeacherAttendanceController(db)

	grp := r.Group("/teacher-attendances")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Post("/bulk", ctl.Bulk)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
