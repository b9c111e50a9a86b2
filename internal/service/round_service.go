package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SohanMitra1729/CodeFest/internal/model"
	"github.com/SohanMitra1729/CodeFest/internal/outbox"
	"github.com/SohanMitra1729/CodeFest/internal/storage"
	"github.com/rs/zerolog/log"
)

const firstRoundID = 1

// RoundService owns round lifecycle state. The in-memory copy is authoritative
// and every mutation applies synchronously; persistence happens through the
// outbox and is allowed to fail without affecting local state.
type RoundService interface {
	StartRound(roundID int)
	EndRound(roundID int)
	SetRoundDuration(roundID int, minutes int)
	GetRoundByID(roundID int) (model.Round, bool)
	ListRounds() []model.Round
	LoadPersisted(ctx context.Context)
}

type roundService struct {
	mu     sync.RWMutex
	rounds map[int]model.Round
	store  storage.RoundStore
	box    *outbox.Outbox
	now    func() time.Time
}

// DefaultRounds is the built-in seed used until (and unless) a bulk load from
// the store succeeds.
func DefaultRounds() []model.Round {
	return []model.Round{
		{ID: 1, Name: "Round 1: MCQs & Speed Coding", Status: model.RoundNotStarted},
		{ID: 2, Name: "Round 2: Final Build", Status: model.RoundNotStarted},
	}
}

func NewRoundService(store storage.RoundStore, box *outbox.Outbox) RoundService {
	s := &roundService{
		rounds: make(map[int]model.Round),
		store:  store,
		box:    box,
		now:    time.Now,
	}
	for _, r := range DefaultRounds() {
		s.rounds[r.ID] = r
	}
	return s
}

// LoadPersisted replaces the seed with rounds from the store. Any failure
// keeps the seed; the contest must stay operable without the database.
func (s *roundService) LoadPersisted(ctx context.Context) {
	rounds, err := s.store.ListRounds(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load rounds from store, keeping seed data")
		return
	}
	if len(rounds) == 0 {
		log.Info().Msg("No persisted rounds found, keeping seed data")
		return
	}
	s.mu.Lock()
	s.rounds = make(map[int]model.Round, len(rounds))
	for _, r := range rounds {
		s.rounds[r.ID] = r
	}
	s.mu.Unlock()
	log.Info().Int("count", len(rounds)).Msg("Loaded rounds from store")
}

func (s *roundService) StartRound(roundID int) {
	startedAt := s.now()

	s.mu.Lock()
	r, ok := s.rounds[roundID]
	if !ok {
		s.mu.Unlock()
		log.Warn().Int("roundID", roundID).Msg("StartRound: unknown round")
		return
	}
	r.Status = model.RoundActive
	r.StartedAt = &startedAt
	s.rounds[roundID] = r
	s.mu.Unlock()

	log.Info().Int("roundID", roundID).Time("startedAt", startedAt).Msg("Round started")

	status := model.RoundActive
	s.box.Enqueue("round.start", func(ctx context.Context) error {
		return s.store.UpdateRound(ctx, roundID, storage.RoundFields{
			Status:    &status,
			StartedAt: &startedAt,
		})
	})
}

// EndRound finishes the round. Finishing the first round also unlocks round 2
// by resetting it to Not Started; the two writes go out independently so one
// can fail without the other.
func (s *roundService) EndRound(roundID int) {
	s.mu.Lock()
	r, ok := s.rounds[roundID]
	if !ok {
		s.mu.Unlock()
		log.Warn().Int("roundID", roundID).Msg("EndRound: unknown round")
		return
	}
	r.Status = model.RoundFinished
	s.rounds[roundID] = r
	if roundID == firstRoundID {
		if r2, ok := s.rounds[2]; ok {
			r2.Status = model.RoundNotStarted
			s.rounds[2] = r2
		}
	}
	s.mu.Unlock()

	log.Info().Int("roundID", roundID).Msg("Round finished")

	finished := model.RoundFinished
	s.box.Enqueue("round.end", func(ctx context.Context) error {
		return s.store.UpdateRound(ctx, roundID, storage.RoundFields{Status: &finished})
	})
	if roundID == firstRoundID {
		notStarted := model.RoundNotStarted
		s.box.Enqueue("round.unlock", func(ctx context.Context) error {
			return s.store.UpdateRound(ctx, 2, storage.RoundFields{Status: &notStarted})
		})
	}
}

func (s *roundService) SetRoundDuration(roundID int, minutes int) {
	s.mu.Lock()
	r, ok := s.rounds[roundID]
	if !ok {
		s.mu.Unlock()
		log.Warn().Int("roundID", roundID).Msg("SetRoundDuration: unknown round")
		return
	}
	r.DurationInMinutes = &minutes
	s.rounds[roundID] = r
	s.mu.Unlock()

	s.box.Enqueue("round.duration", func(ctx context.Context) error {
		return s.store.UpdateRound(ctx, roundID, storage.RoundFields{DurationInMinutes: &minutes})
	})
}

func (s *roundService) GetRoundByID(roundID int) (model.Round, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rounds[roundID]
	return r, ok
}

func (s *roundService) ListRounds() []model.Round {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rounds := make([]model.Round, 0, len(s.rounds))
	for _, r := range s.rounds {
		rounds = append(rounds, r)
	}
	sort.Slice(rounds, func(i, j int) bool { return rounds[i].ID < rounds[j].ID })
	return rounds
}
