package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Land is one plot in the owner's records, identified by a human-readable
// code plus the khasra (survey) number from the land registry. Area is kept
// in both acres and bigha because records in the field use either.
type Land struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"userId"`
	LandIDCode string     `gorm:"column:land_id_code;size:50;not null" json:"landIdCode"`
	Village    *string    `gorm:"column:village;size:100" json:"village,omitempty"`
	KhasraNo   string     `gorm:"column:khasra_no;size:50;not null" json:"khasraNo"`
	AreaAcres  *float64   `gorm:"column:area_acres" json:"areaAcres,omitempty"`
	AreaBigha  *float64   `gorm:"column:area_bigha" json:"areaBigha,omitempty"`
	FarmerID   *uuid.UUID `gorm:"type:uuid;index" json:"farmerId,omitempty"`
	Farmer     *Farmer    `gorm:"foreignKey:FarmerID" json:"farmer,omitempty"`
	Details    *string    `gorm:"column:details" json:"details,omitempty"`
	Status     string     `gorm:"column:status;size:20;not null;default:active" json:"status"` // active, leased, inactive

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (l *Land) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
