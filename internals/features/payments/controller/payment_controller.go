package controller

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/payments/dto"
	model "sekolahku_backend/internals/features/payments/model"
	"sekolahku_backend/internals/features/payments/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/apierror"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/a/:school_id/payments
//
// Membuat tagihan + token Snap dalam satu langkah. order_id unik per tagihan.
func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := &model.PaymentModel{
		PaymentSchoolID:  schoolID,
		PaymentStudentID: req.PaymentStudentID,
		PaymentOrderID:   fmt.Sprintf("PAY-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
		PaymentAmount:    req.PaymentAmount,
		PaymentPurpose:   req.PaymentPurpose,
		PaymentStatus:    model.PaymentPending,
	}

	token, err := service.GenerateSnapToken(*m, req.PayerName, req.PayerEmail)
	if err != nil {
		return apierror.NewStorage("payments.snap_token", err)
	}
	m.PaymentSnapToken = &token

	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return apierror.AsConflict("payments.create", "Order ID sudah dipakai", err)
	}
	return helper.JsonCreated(c, "Tagihan berhasil dibuat", m)
}

/* ===================== LIST ===================== */
// GET /api/a/:school_id/payments
func (ctrl *PaymentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var q dto.ListPaymentQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.PaymentModel{}).
		Where("payment_school_id = ?", schoolID)
	if q.StudentID != nil {
		tx = tx.Where("payment_student_id = ?", *q.StudentID)
	}
	if q.Status != nil {
		tx = tx.Where("payment_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return apierror.NewStorage("payments.count", err)
	}
	var rows []model.PaymentModel
	if err := tx.Order("payment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return apierror.NewStorage("payments.list", err)
	}

	pg := helper.BuildPagination(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Daftar tagihan", rows, &pg)
}

/* ===================== WEBHOOK ===================== */
// POST /api/public/payments/webhook
//
// Endpoint notifikasi Midtrans (tanpa auth). Idempotent: notifikasi ulang
// untuk order yang sudah final tidak mengubah apa pun.
func (ctrl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var n dto.MidtransNotification
	if err := c.BodyParser(&n); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if n.OrderID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "order_id kosong")
	}

	var m model.PaymentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("payment_order_id = ?", n.OrderID).
		Take(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return apierror.NewStorage("payments.get_by_order", err)
	}

	next := m.PaymentStatus
	switch n.TransactionStatus {
	case "capture", "settlement":
		if n.FraudStatus == "" || n.FraudStatus == "accept" {
			next = model.PaymentPaid
		}
	case "deny", "cancel":
		next = model.PaymentFailed
	case "expire":
		next = model.PaymentExpired
	}

	if next == m.PaymentStatus {
		return helper.JsonOK(c, "Status tidak berubah", fiber.Map{"payment_order_id": n.OrderID})
	}

	updates := map[string]any{"payment_status": next}
	if next == model.PaymentPaid {
		updates["payment_paid_at"] = time.Now()
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.PaymentModel{}).
		Where("payment_order_id = ?", n.OrderID).
		Updates(updates).Error; err != nil {
		return apierror.NewStorage("payments.update_status", err)
	}
	return helper.JsonOK(c, "Status pembayaran diperbarui", fiber.Map{
		"payment_order_id": n.OrderID,
		"payment_status":   next,
	})
}
