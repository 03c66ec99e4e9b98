package models

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Parchi is a scanned receipt or document (mandi sale slip, payment proof)
// attached to a land and season. The uploaded file is optional; when present
// FileURL and FilePath must refer to the same stored object.
type Parchi struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	LandID         uuid.UUID `gorm:"type:uuid;index;not null" json:"landId"`
	Land           *Land     `gorm:"foreignKey:LandID" json:"land,omitempty"`
	Season         string    `gorm:"column:season;size:20;not null;default:rabi" json:"season"`
	CropName       string    `gorm:"column:crop_name;size:100;not null" json:"cropName"`
	ParchiType     string    `gorm:"column:parchi_type;size:20;not null;default:mandi_sale" json:"parchiType"` // mandi_sale, payment, other
	ParchiDate     DateOnly  `gorm:"column:parchi_date;not null" json:"parchiDate"`
	Amount         *float64  `gorm:"column:amount" json:"amount,omitempty"`
	QuantityWeight *float64  `gorm:"column:quantity_weight" json:"quantityWeight,omitempty"`
	FileURL        *string   `gorm:"column:file_url" json:"fileUrl,omitempty"`
	FilePath       *string   `gorm:"column:file_path" json:"filePath,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Parchi) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// HasImageFile reports whether the attached file can be previewed inline.
// Anything else (pdf etc.) goes through the download branch.
func (p *Parchi) HasImageFile() bool {
	if p.FileURL == nil {
		return false
	}
	return imageExtensions[strings.ToLower(path.Ext(*p.FileURL))]
}
