// Package persistence provides database storage implementations.
package persistence

import (
	"time"

	"github.com/helixml/almanac/internal/database"
)

// InputModel is the cached puzzle input row.
type InputModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Year      int       `gorm:"not null;uniqueIndex:idx_inputs_year_day"`
	Day       int       `gorm:"not null;uniqueIndex:idx_inputs_year_day"`
	Content   string    `gorm:"type:text;not null"`
	FetchedAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name.
func (InputModel) TableName() string { return "puzzle_inputs" }

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	return db.GORM().AutoMigrate(&InputModel{})
}
