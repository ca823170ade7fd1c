package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventCtl "sekolahku_backend/internals/features/calendar/events/controller"
)

func CalendarEventAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := eventCtl.NewCalendarEventController(db)

	grp := r.Group("/calendar-events")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Update)
	grp.Post("/:id/publish", ctl.Publish)
	grp.Post("/:id/unpublish", ctl.Unpublish)
	grp.Delete("/:id", ctl.Delete)
}
