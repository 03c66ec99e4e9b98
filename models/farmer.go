package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Farmer is a lessee/handler who works one or more lands.
type Farmer struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Name    string    `gorm:"column:name;size:100;not null" json:"name"`
	Phone   *string   `gorm:"column:phone;size:15" json:"phone,omitempty"`
	Village *string   `gorm:"column:village;size:100" json:"village,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (f *Farmer) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
