package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "sekolahku_backend/internals/features/payments/controller"
)

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	grp := r.Group("/payments")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
}

// PaymentPublicRoutes: endpoint notifikasi gateway, tanpa auth.
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	grp := r.Group("/payments")
	grp.Post("/webhook", ctl.HandleNotification)
}
