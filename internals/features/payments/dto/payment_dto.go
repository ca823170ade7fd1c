package dto

import "github.com/google/uuid"

type CreatePaymentRequest struct {
	PaymentStudentID uuid.UUID `json:"payment_student_id" validate:"required"`
	PaymentAmount    int64     `json:"payment_amount" validate:"required,min=1"`
	PaymentPurpose   string    `json:"payment_purpose" validate:"required,max=160"`
	PayerName        string    `json:"payer_name" validate:"required,max=120"`
	PayerEmail       string    `json:"payer_email" validate:"required,email"`
}

// Payload notifikasi HTTP dari Midtrans; hanya field yang dipakai.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

type ListPaymentQuery struct {
	StudentID *uuid.UUID `query:"student_id"`
	Status    *string    `query:"status"`
}
