package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SohanMitra1729/CodeFest/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type submissionRecord struct {
	TeamID        string         `gorm:"primaryKey;column:team_id"`
	MCQAnswers    datatypes.JSON `gorm:"column:mcq_answers"`
	CodingAnswers datatypes.JSON `gorm:"column:coding_answers"`
	SubmittedAt   time.Time      `gorm:"column:submitted_at"`
	Score         *int           `gorm:"column:score"`
}

func (submissionRecord) TableName() string { return "round1_submissions" }

func submissionToRecord(sub model.Round1Submission) (submissionRecord, error) {
	mcq, err := json.Marshal(sub.MCQAnswers)
	if err != nil {
		return submissionRecord{}, fmt.Errorf("marshal mcq answers: %w", err)
	}
	coding, err := json.Marshal(sub.CodingAnswers)
	if err != nil {
		return submissionRecord{}, fmt.Errorf("marshal coding answers: %w", err)
	}
	return submissionRecord{
		TeamID:        sub.TeamID,
		MCQAnswers:    mcq,
		CodingAnswers: coding,
		SubmittedAt:   sub.SubmittedAt,
		Score:         sub.Score,
	}, nil
}

type gormSubmissionStore struct {
	db *gorm.DB
}

func NewSubmissionStore(db *gorm.DB) SubmissionStore {
	return &gormSubmissionStore{db: db}
}

// SaveSubmission upserts by team_id so a resubmission replaces the mirrored
// row the same way the ledger replaces its in-memory record.
func (s *gormSubmissionStore) SaveSubmission(ctx context.Context, sub model.Round1Submission) error {
	rec, err := submissionToRecord(sub)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}},
			UpdateAll: true,
		}).
		Create(&rec).Error
}
