package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is one rent installment against an agreement. Pending balance and
// progress are derived from the stored amounts, never stored themselves.
type Payment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;index;not null" json:"userId"`
	AgreementID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"agreementId"`
	Agreement      *Agreement `gorm:"foreignKey:AgreementID" json:"agreement,omitempty"`
	ExpectedAmount float64    `gorm:"column:expected_amount;not null" json:"expectedAmount"`
	ReceivedAmount float64    `gorm:"column:received_amount;not null" json:"receivedAmount"`
	PaymentDate    *DateOnly  `gorm:"column:payment_date" json:"paymentDate,omitempty"`
	Status         string     `gorm:"column:status;size:20;not null;default:pending" json:"status"` // pending, partial, paid
	Notes          *string    `gorm:"column:notes" json:"notes,omitempty"`

	// Derived, filled after every read.
	PendingAmount   float64 `gorm:"-" json:"pendingAmount"`
	ProgressPercent float64 `gorm:"-" json:"progressPercent"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

func (p *Payment) AfterFind(tx *gorm.DB) (err error) {
	p.PendingAmount = p.PendingBalance()
	p.ProgressPercent = p.Progress()
	return
}

// PendingBalance is expected minus received. Negative when over-received;
// callers display it unclamped.
func (p *Payment) PendingBalance() float64 {
	return p.ExpectedAmount - p.ReceivedAmount
}

// Progress is how much of the expected amount has arrived, as a percentage
// capped at 100. Zero expected means zero progress.
func (p *Payment) Progress() float64 {
	if p.ExpectedAmount == 0 {
		return 0
	}
	progress := p.ReceivedAmount / p.ExpectedAmount * 100
	if progress > 100 {
		return 100
	}
	return progress
}
