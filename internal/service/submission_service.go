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

// SubmissionService is the ledger of Round 1 submissions: one record per team,
// full replacement on resubmit. Scores enter only through SetScore.
type SubmissionService interface {
	SubmitRound1(teamID string, mcqAnswers []model.MCQAnswer, codingAnswers []model.CodingAnswer) model.Round1Submission
	GetTeamSubmission(teamID string) (model.Round1Submission, bool)
	ListSubmissions() []model.Round1Submission
	SetScore(teamID string, score int)
}

type submissionService struct {
	mu    sync.RWMutex
	subs  map[string]model.Round1Submission
	store storage.SubmissionStore
	box   *outbox.Outbox
	now   func() time.Time
}

func NewSubmissionService(store storage.SubmissionStore, box *outbox.Outbox) SubmissionService {
	return &submissionService{
		subs:  make(map[string]model.Round1Submission),
		store: store,
		box:   box,
		now:   time.Now,
	}
}

// SubmitRound1 upserts by team. A resubmission replaces the prior record
// entirely; any previously calculated score is dropped, not carried forward.
func (s *submissionService) SubmitRound1(teamID string, mcqAnswers []model.MCQAnswer, codingAnswers []model.CodingAnswer) model.Round1Submission {
	sub := model.Round1Submission{
		TeamID:        teamID,
		MCQAnswers:    mcqAnswers,
		CodingAnswers: codingAnswers,
		SubmittedAt:   s.now(),
	}

	s.mu.Lock()
	_, existed := s.subs[teamID]
	s.subs[teamID] = sub
	s.mu.Unlock()

	if existed {
		log.Info().Str("teamID", teamID).Msg("Round 1 submission replaced")
	} else {
		log.Info().Str("teamID", teamID).Msg("Round 1 submission recorded")
	}

	s.mirror(sub)
	return sub
}

func (s *submissionService) GetTeamSubmission(teamID string) (model.Round1Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subs[teamID]
	return sub, ok
}

func (s *submissionService) ListSubmissions() []model.Round1Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Round1Submission, 0, len(s.subs))
	for _, sub := range s.subs {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out
}

// SetScore writes a calculated score back into the team's record, leaving all
// other fields untouched. Unknown teams are a silent no-op.
func (s *submissionService) SetScore(teamID string, score int) {
	s.mu.Lock()
	sub, ok := s.subs[teamID]
	if !ok {
		s.mu.Unlock()
		return
	}
	sub.Score = &score
	s.subs[teamID] = sub
	s.mu.Unlock()

	log.Info().Str("teamID", teamID).Int("score", score).Msg("Round 1 score recorded")
	s.mirror(sub)
}

func (s *submissionService) mirror(sub model.Round1Submission) {
	s.box.Enqueue("submission.save", func(ctx context.Context) error {
		return s.store.SaveSubmission(ctx, sub)
	})
}
