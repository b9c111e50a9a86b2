package storage

import (
	"context"
	"time"

	"github.com/SohanMitra1729/CodeFest/internal/model"
	"gorm.io/gorm"
)

// certificateRecord rows are append-only; no uniqueness constraint, duplicate
// awards produce duplicate rows.
type certificateRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id"`
	TeamID    string    `gorm:"column:team_id"`
	TeamName  string    `gorm:"column:team_name"`
	Type      string    `gorm:"column:type"`
	AwardedAt time.Time `gorm:"column:awarded_at"`
}

func (certificateRecord) TableName() string { return "certificates" }

type gormCertificateStore struct {
	db *gorm.DB
}

func NewCertificateStore(db *gorm.DB) CertificateStore {
	return &gormCertificateStore{db: db}
}

func (s *gormCertificateStore) SaveCertificate(ctx context.Context, cert model.Certificate) error {
	rec := certificateRecord{
		TeamID:    cert.TeamID,
		TeamName:  cert.TeamName,
		Type:      string(cert.Type),
		AwardedAt: cert.AwardedAt,
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}
