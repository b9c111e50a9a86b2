package service

import (
	"context"
	"sync"

	"github.com/SohanMitra1729/CodeFest/internal/model"
	"github.com/SohanMitra1729/CodeFest/internal/outbox"
	"github.com/SohanMitra1729/CodeFest/internal/storage"
)

type roundUpdate struct {
	id     int
	fields storage.RoundFields
}

type fakeRoundStore struct {
	mu       sync.Mutex
	rounds   []model.Round
	listErr  error
	updErr   error
	updates  []roundUpdate
	notified chan struct{}
}

func newFakeRoundStore() *fakeRoundStore {
	return &fakeRoundStore{notified: make(chan struct{}, 16)}
}

func (f *fakeRoundStore) ListRounds(ctx context.Context) ([]model.Round, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rounds, nil
}

func (f *fakeRoundStore) UpdateRound(ctx context.Context, id int, fields storage.RoundFields) error {
	f.mu.Lock()
	f.updates = append(f.updates, roundUpdate{id: id, fields: fields})
	f.mu.Unlock()
	f.notified <- struct{}{}
	return f.updErr
}

func (f *fakeRoundStore) recordedUpdates() []roundUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]roundUpdate, len(f.updates))
	copy(out, f.updates)
	return out
}

type fakeSubmissionStore struct {
	mu    sync.Mutex
	saved []model.Round1Submission
}

func (f *fakeSubmissionStore) SaveSubmission(ctx context.Context, sub model.Round1Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, sub)
	return nil
}

type fakeCertificateStore struct {
	mu    sync.Mutex
	saved []model.Certificate
}

func (f *fakeCertificateStore) SaveCertificate(ctx context.Context, cert model.Certificate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, cert)
	return nil
}

// idleOutbox returns an outbox that buffers but never runs tasks, keeping
// tests synchronous.
func idleOutbox() *outbox.Outbox {
	return outbox.New(64)
}
