package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Crop is one season's sowing record for a land. Months are free text
// because records use local month names as often as calendar ones.
type Crop struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	LandID       uuid.UUID `gorm:"type:uuid;index;not null" json:"landId"`
	Land         *Land     `gorm:"foreignKey:LandID" json:"land,omitempty"`
	Season       string    `gorm:"column:season;size:20;not null;default:rabi" json:"season"` // rabi, kharif, zaid
	CropName     string    `gorm:"column:crop_name;size:100;not null" json:"cropName"`
	SowingMonth  *string   `gorm:"column:sowing_month;size:30" json:"sowingMonth,omitempty"`
	HarvestMonth *string   `gorm:"column:harvest_month;size:30" json:"harvestMonth,omitempty"`
	Year         int       `gorm:"column:year;not null" json:"year"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (c *Crop) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
