package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	featureCtl "sekolahku_backend/internals/features/calendar/feature/controller"
)

func CalendarFeatureUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := featureCtl.NewCalendarFeatureController(db)

	grp := r.Group("/calendar")
	grp.Get("/features", ctl.GetFeatures)
}
