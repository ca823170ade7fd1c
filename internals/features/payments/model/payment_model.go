package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
	PaymentExpired PaymentStatus = "expired"
)

// Tagihan sekolah (SPP, seragam, kegiatan) yang dibayar lewat Midtrans Snap.
type PaymentModel struct {
	PaymentID        uuid.UUID     `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentSchoolID  uuid.UUID     `gorm:"column:payment_school_id;type:uuid;not null" json:"payment_school_id"`
	PaymentStudentID uuid.UUID     `gorm:"column:payment_student_id;type:uuid;not null" json:"payment_student_id"`
	PaymentOrderID   string        `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex;not null" json:"payment_order_id"`
	PaymentAmount    int64         `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentPurpose   string        `gorm:"column:payment_purpose;type:varchar(160);not null" json:"payment_purpose"`
	PaymentStatus    PaymentStatus `gorm:"column:payment_status;type:varchar(16);not null;default:pending" json:"payment_status"`
	PaymentSnapToken *string       `gorm:"column:payment_snap_token;type:varchar(120)" json:"payment_snap_token,omitempty"`
	PaymentPaidAt    *time.Time    `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }
