package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/zameen/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Farmer{}, &models.Land{},
					&models.Agreement{}, &models.Crop{}, &models.Parchi{}, &models.Payment{})
			},
		},
		{
			ID: "20250819_add_list_ordering_indexes",
			Migrate: func(tx *gorm.DB) error {
				// Lists come back newest-first; parchis order by document date.
				if err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_parchis_parchi_date ON parchis(parchi_date)").Error; err != nil {
					return err
				}
				if err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_agreements_end_date ON agreements(end_date)").Error; err != nil {
					return err
				}
				return nil
			},
		},
	})
	return m.Migrate()
}
