package storage

import "gorm.io/gorm"

// Migrate creates the tables behind the persistence boundary.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&roundRecord{},
		&submissionRecord{},
		&certificateRecord{},
	)
}
