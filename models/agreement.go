package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Agreement is a lease between the owner and a farmer over one land.
// PaymentType "crop_share" means rent is a share of the harvest rather
// than the fixed ExpectedAmount.
type Agreement struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	LandID         uuid.UUID `gorm:"type:uuid;index;not null" json:"landId"`
	Land           *Land     `gorm:"foreignKey:LandID" json:"land,omitempty"`
	FarmerID       uuid.UUID `gorm:"type:uuid;index;not null" json:"farmerId"`
	Farmer         *Farmer   `gorm:"foreignKey:FarmerID" json:"farmer,omitempty"`
	StartDate      DateOnly  `gorm:"column:start_date;not null" json:"startDate"`
	EndDate        DateOnly  `gorm:"column:end_date;not null" json:"endDate"`
	PaymentType    string    `gorm:"column:payment_type;size:20;not null;default:fixed" json:"paymentType"` // fixed, crop_share
	ExpectedAmount float64   `gorm:"column:expected_amount;not null" json:"expectedAmount"`
	Status         string    `gorm:"column:status;size:20;not null;default:active" json:"status"` // active, expired, renewal_pending

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (a *Agreement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
