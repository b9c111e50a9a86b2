package contest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SohanMitra1729/CodeFest/internal/dto"
	"github.com/SohanMitra1729/CodeFest/internal/model"
	"github.com/SohanMitra1729/CodeFest/internal/outbox"
	"github.com/SohanMitra1729/CodeFest/internal/service"
	"github.com/SohanMitra1729/CodeFest/internal/storage"
)

type noopRoundStore struct{}

func (noopRoundStore) ListRounds(ctx context.Context) ([]model.Round, error) { return nil, nil }
func (noopRoundStore) UpdateRound(ctx context.Context, id int, fields storage.RoundFields) error {
	return nil
}

type noopSubmissionStore struct{}

func (noopSubmissionStore) SaveSubmission(ctx context.Context, sub model.Round1Submission) error {
	return nil
}

func setupContestRouter(t *testing.T) (*gin.Engine, service.TeamService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	box := outbox.New(64)
	rounds := service.NewRoundService(noopRoundStore{}, box)
	submissions := service.NewSubmissionService(noopSubmissionStore{}, box)
	teams := service.NewTeamService()

	ctrl := NewContestController(rounds, submissions, teams)

	r := gin.New()
	r.GET("/api/v1/rounds", ctrl.ListRounds)
	r.GET("/api/v1/rounds/:round_id", ctrl.GetRound)
	r.POST("/api/v1/teams", ctrl.RegisterTeam)
	r.POST("/api/v1/round1/submissions", ctrl.SubmitRound1)
	r.GET("/api/v1/round1/submissions/:team_id", ctrl.GetTeamSubmission)
	return r, teams
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			panic("failed to marshal request body: " + err.Error())
		}
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestListRoundsReturnsSeedRounds(t *testing.T) {
	router, _ := setupContestRouter(t)

	res := performRequest(router, http.MethodGet, "/api/v1/rounds", nil)

	require.Equal(t, http.StatusOK, res.Code)
	var rounds []dto.RoundResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &rounds))
	require.Len(t, rounds, 2)
	assert.Equal(t, string(model.RoundNotStarted), rounds[0].Status)
}

func TestGetRoundNotFound(t *testing.T) {
	router, _ := setupContestRouter(t)

	res := performRequest(router, http.MethodGet, "/api/v1/rounds/99", nil)

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestSubmitRound1AndFetchItBack(t *testing.T) {
	router, teams := setupContestRouter(t)
	team := teams.RegisterTeam("Gophers")

	payload := dto.SubmitRound1DTO{
		TeamID: team.ID,
		MCQAnswers: []dto.MCQAnswerDTO{
			{MCQID: "mcq-1", OptionID: "a"},
		},
		CodingAnswers: []dto.CodingAnswerDTO{
			{ProblemID: "cp-1", Result: &dto.GradeResultDTO{Passed: 3, Total: 5}},
		},
	}
	res := performRequest(router, http.MethodPost, "/api/v1/round1/submissions", payload)
	require.Equal(t, http.StatusCreated, res.Code)

	res = performRequest(router, http.MethodGet, "/api/v1/round1/submissions/"+team.ID, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var sub dto.SubmissionResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &sub))
	assert.Equal(t, team.ID, sub.TeamID)
	assert.Equal(t, "Gophers", sub.TeamName)
	assert.Nil(t, sub.Score)
	require.Len(t, sub.CodingAnswers, 1)
	require.NotNil(t, sub.CodingAnswers[0].Result)
	assert.Equal(t, 3, sub.CodingAnswers[0].Result.Passed)
}

func TestSubmitRound1RequiresTeamID(t *testing.T) {
	router, _ := setupContestRouter(t)

	res := performRequest(router, http.MethodPost, "/api/v1/round1/submissions", dto.SubmitRound1DTO{})

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestGetSubmissionForUnknownTeam(t *testing.T) {
	router, _ := setupContestRouter(t)

	res := performRequest(router, http.MethodGet, "/api/v1/round1/submissions/ghost", nil)

	assert.Equal(t, http.StatusNotFound, res.Code)
}
