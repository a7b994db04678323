package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/entity"
)

// OpenLeadDB opens (or creates) the SQLite analytical store and makes sure
// the leads table exists.
func OpenLeadDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entity.Lead{}); err != nil {
		return nil, err
	}
	return db, nil
}

// LeadStore persists batch pull results. Re-ingesting a lead replaces the
// full row, so the table always reflects the latest pull.
type LeadStore struct {
	db *gorm.DB
}

func NewLeadStore(db *gorm.DB) *LeadStore {
	return &LeadStore{db: db}
}

func (s *LeadStore) UpsertAll(leads []entity.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).CreateInBatches(leads, 100).Error
}
