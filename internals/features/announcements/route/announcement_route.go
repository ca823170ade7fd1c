package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementCtl "sekolahku_backend/internals/features/announcements/controller"
)

func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := announcementCtl.NewAnnouncementController(db)

	grp := r.Group("/announcements")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

func AnnouncementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := announcementCtl.NewAnnouncementController(db)

	grp := r.Group("/announcements")
	grp.Get("/", ctl.ListPublished)
}
