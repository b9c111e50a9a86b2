package service

import (
	"sync"

	"github.com/SohanMitra1729/CodeFest/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TeamService is the identity boundary: results views ask it to resolve team
// names, falling back to the raw id when a team is unknown.
type TeamService interface {
	RegisterTeam(name string) model.Team
	GetTeamName(teamID string) string
	ListTeams() []model.Team
}

type teamService struct {
	mu    sync.RWMutex
	teams map[string]model.Team
	order []string
}

func NewTeamService() TeamService {
	return &teamService{teams: make(map[string]model.Team)}
}

func (s *teamService) RegisterTeam(name string) model.Team {
	team := model.Team{
		ID:   "team-" + uuid.NewString(),
		Name: name,
	}

	s.mu.Lock()
	s.teams[team.ID] = team
	s.order = append(s.order, team.ID)
	s.mu.Unlock()

	log.Info().Str("teamID", team.ID).Str("name", name).Msg("Team registered")
	return team
}

func (s *teamService) GetTeamName(teamID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if team, ok := s.teams[teamID]; ok {
		return team.Name
	}
	return teamID
}

func (s *teamService) ListTeams() []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Team, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.teams[id])
	}
	return out
}
