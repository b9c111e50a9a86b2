package storage

import (
	"context"
	"time"

	"github.com/SohanMitra1729/CodeFest/internal/model"
)

// RoundFields is a partial update for a round. Nil fields are left untouched
// by UpdateRound.
type RoundFields struct {
	Status            *model.RoundStatus
	StartedAt         *time.Time
	DurationInMinutes *int
}

// RoundStore is the persistence boundary for rounds. Callers treat every
// write as best-effort: failures are logged by the caller and never rolled
// back into the in-memory state.
type RoundStore interface {
	ListRounds(ctx context.Context) ([]model.Round, error)
	UpdateRound(ctx context.Context, id int, fields RoundFields) error
}

// SubmissionStore mirrors accepted submissions. Memory stays authoritative.
type SubmissionStore interface {
	SaveSubmission(ctx context.Context, sub model.Round1Submission) error
}

type CertificateStore interface {
	SaveCertificate(ctx context.Context, cert model.Certificate) error
}
