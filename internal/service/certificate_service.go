package service

import (
	"context"
	"sync"
	"time"

	"github.com/SohanMitra1729/CodeFest/internal/model"
	"github.com/SohanMitra1729/CodeFest/internal/outbox"
	"github.com/SohanMitra1729/CodeFest/internal/storage"
	"github.com/rs/zerolog/log"
)

// CertificateService issues award records. Append-only and deliberately not
// idempotent: awarding twice produces two certificates.
type CertificateService interface {
	AwardCertificate(teamID, teamName string, certType model.CertificateType) model.Certificate
	ListCertificates() []model.Certificate
}

type certificateService struct {
	mu    sync.RWMutex
	certs []model.Certificate
	store storage.CertificateStore
	box   *outbox.Outbox
	now   func() time.Time
}

func NewCertificateService(store storage.CertificateStore, box *outbox.Outbox) CertificateService {
	return &certificateService{
		store: store,
		box:   box,
		now:   time.Now,
	}
}

func (s *certificateService) AwardCertificate(teamID, teamName string, certType model.CertificateType) model.Certificate {
	cert := model.Certificate{
		TeamID:    teamID,
		TeamName:  teamName,
		Type:      certType,
		AwardedAt: s.now(),
	}

	s.mu.Lock()
	s.certs = append(s.certs, cert)
	s.mu.Unlock()

	log.Info().Str("teamID", teamID).Str("type", string(certType)).Msg("Certificate awarded")

	s.box.Enqueue("certificate.save", func(ctx context.Context) error {
		return s.store.SaveCertificate(ctx, cert)
	})
	return cert
}

func (s *certificateService) ListCertificates() []model.Certificate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Certificate, len(s.certs))
	copy(out, s.certs)
	return out
}
