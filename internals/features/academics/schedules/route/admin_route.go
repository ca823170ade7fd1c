package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	slotCtl "sekolahku_backend/internals/features/academics/schedules/controller"
)

func ScheduleSlotAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := slotCtl.NewScheduleSlotController(db)

	grp := r.Group("/schedule-slots")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
