package service

import (
	"fmt"
	"sync"

	"github.com/SohanMitra1729/CodeFest/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ContentService holds authored Round 1 content. Creation is append-only and
// content is immutable afterwards; there are no update or delete operations.
type ContentService interface {
	AddMCQ(question string, options []model.MCQOption, correctAnswerID string) (model.MCQ, error)
	AddCodingProblem(title, description string) model.CodingProblem
	GetMCQ(id string) (model.MCQ, bool)
	ListMCQs() []model.MCQ
	ListCodingProblems() []model.CodingProblem
}

type contentService struct {
	mu       sync.RWMutex
	mcqs     []model.MCQ
	mcqByID  map[string]model.MCQ
	problems []model.CodingProblem
}

func NewContentService() ContentService {
	return &contentService{
		mcqByID: make(map[string]model.MCQ),
	}
}

func (s *contentService) AddMCQ(question string, options []model.MCQOption, correctAnswerID string) (model.MCQ, error) {
	valid := false
	for _, opt := range options {
		if opt.ID == correctAnswerID {
			valid = true
			break
		}
	}
	if !valid {
		return model.MCQ{}, fmt.Errorf("correct answer id %q does not match any option", correctAnswerID)
	}

	mcq := model.MCQ{
		ID:              "mcq-" + uuid.NewString(),
		Question:        question,
		Options:         options,
		CorrectAnswerID: correctAnswerID,
	}

	s.mu.Lock()
	s.mcqs = append(s.mcqs, mcq)
	s.mcqByID[mcq.ID] = mcq
	s.mu.Unlock()

	log.Info().Str("mcqID", mcq.ID).Msg("MCQ added")
	return mcq, nil
}

// AddCodingProblem creates the problem with empty test-case collections; test
// cases are populated outside this core.
func (s *contentService) AddCodingProblem(title, description string) model.CodingProblem {
	problem := model.CodingProblem{
		ID:                 "cp-" + uuid.NewString(),
		Title:              title,
		Description:        description,
		DisplayedTestCases: []model.TestCase{},
		HiddenTestCases:    []model.TestCase{},
	}

	s.mu.Lock()
	s.problems = append(s.problems, problem)
	s.mu.Unlock()

	log.Info().Str("problemID", problem.ID).Msg("Coding problem added")
	return problem
}

func (s *contentService) GetMCQ(id string) (model.MCQ, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mcq, ok := s.mcqByID[id]
	return mcq, ok
}

func (s *contentService) ListMCQs() []model.MCQ {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.MCQ, len(s.mcqs))
	copy(out, s.mcqs)
	return out
}

func (s *contentService) ListCodingProblems() []model.CodingProblem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CodingProblem, len(s.problems))
	copy(out, s.problems)
	return out
}
