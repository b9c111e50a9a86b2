package storage

import (
	"context"
	"time"

	"github.com/SohanMitra1729/CodeFest/internal/model"
	"gorm.io/gorm"
)

// roundRecord is the database shape of a round. Columns use snake_case names
// (started_at, duration_in_minutes) while the in-memory model uses Go field
// names; the mapping functions below are the only place that translation
// happens.
type roundRecord struct {
	ID                int        `gorm:"primaryKey;column:id"`
	Name              string     `gorm:"column:name"`
	Status            string     `gorm:"column:status"`
	StartedAt         *time.Time `gorm:"column:started_at"`
	DurationInMinutes *int       `gorm:"column:duration_in_minutes"`
}

func (roundRecord) TableName() string { return "rounds" }

func roundToRecord(r model.Round) roundRecord {
	return roundRecord{
		ID:                r.ID,
		Name:              r.Name,
		Status:            string(r.Status),
		StartedAt:         r.StartedAt,
		DurationInMinutes: r.DurationInMinutes,
	}
}

func roundFromRecord(rec roundRecord) model.Round {
	return model.Round{
		ID:                rec.ID,
		Name:              rec.Name,
		Status:            model.RoundStatus(rec.Status),
		StartedAt:         rec.StartedAt,
		DurationInMinutes: rec.DurationInMinutes,
	}
}

// roundFieldsToColumns translates a partial update into column/value pairs.
func roundFieldsToColumns(fields RoundFields) map[string]interface{} {
	cols := map[string]interface{}{}
	if fields.Status != nil {
		cols["status"] = string(*fields.Status)
	}
	if fields.StartedAt != nil {
		cols["started_at"] = *fields.StartedAt
	}
	if fields.DurationInMinutes != nil {
		cols["duration_in_minutes"] = *fields.DurationInMinutes
	}
	return cols
}

type gormRoundStore struct {
	db *gorm.DB
}

func NewRoundStore(db *gorm.DB) RoundStore {
	return &gormRoundStore{db: db}
}

func (s *gormRoundStore) ListRounds(ctx context.Context) ([]model.Round, error) {
	var records []roundRecord
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	rounds := make([]model.Round, 0, len(records))
	for _, rec := range records {
		rounds = append(rounds, roundFromRecord(rec))
	}
	return rounds, nil
}

func (s *gormRoundStore) UpdateRound(ctx context.Context, id int, fields RoundFields) error {
	cols := roundFieldsToColumns(fields)
	if len(cols) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&roundRecord{}).Where("id = ?", id).Updates(cols).Error
}
