package persistence

import (
	"context"
	"fmt"

	"github.com/helixml/almanac/domain/puzzle"
	"github.com/helixml/almanac/internal/database"
	"gorm.io/gorm/clause"
)

// InputStore implements puzzle.InputStore using GORM.
type InputStore struct {
	db     database.Database
	mapper InputMapper
}

// NewInputStore creates a new InputStore.
func NewInputStore(db database.Database) InputStore {
	return InputStore{db: db}
}

// Get returns the cached input for year and day.
func (s InputStore) Get(ctx context.Context, year, day int) (puzzle.Input, error) {
	var model InputModel
	err := s.db.Session(ctx).
		Where("year = ? AND day = ?", year, day).
		First(&model).Error
	if err != nil {
		return puzzle.Input{}, fmt.Errorf("get input %d/%d: %w", year, day, database.TranslateError(err))
	}
	return s.mapper.ToDomain(model), nil
}

// Save inserts the input, replacing any cached content for the same year and day.
func (s InputStore) Save(ctx context.Context, input puzzle.Input) error {
	model := s.mapper.ToModel(input)
	err := s.db.Session(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "fetched_at", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("save input %d/%d: %w", input.Year(), input.Day(), err)
	}
	return nil
}

// Delete removes the cached input for year and day. Missing rows are not an error.
func (s InputStore) Delete(ctx context.Context, year, day int) error {
	err := s.db.Session(ctx).
		Where("year = ? AND day = ?", year, day).
		Delete(&InputModel{}).Error
	if err != nil {
		return fmt.Errorf("delete input %d/%d: %w", year, day, err)
	}
	return nil
}

var _ puzzle.InputStore = InputStore{}
