package admin

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

type noopCertificateStore struct{}

func (noopCertificateStore) SaveCertificate(ctx context.Context, cert model.Certificate) error {
	return nil
}

type adminFixture struct {
	router      *gin.Engine
	content     service.ContentService
	submissions service.SubmissionService
	teams       service.TeamService
}

func setupAdminRouter(t *testing.T) *adminFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	box := outbox.New(64)
	rounds := service.NewRoundService(noopRoundStore{}, box)
	content := service.NewContentService()
	submissions := service.NewSubmissionService(noopSubmissionStore{}, box)
	scoring := service.NewScoringService(submissions, content, rounds)
	certificates := service.NewCertificateService(noopCertificateStore{}, box)
	teams := service.NewTeamService()

	ctrl := NewContestAdminController(rounds, content, submissions, scoring, certificates, teams)

	r := gin.New()
	r.POST("/api/v1/admin/rounds/:round_id/start", ctrl.StartRound)
	r.POST("/api/v1/admin/rounds/:round_id/end", ctrl.EndRound)
	r.PUT("/api/v1/admin/rounds/:round_id/duration", ctrl.SetRoundDuration)
	r.POST("/api/v1/admin/mcqs", ctrl.CreateMCQ)
	r.GET("/api/v1/admin/mcqs", ctrl.ListMCQs)
	r.POST("/api/v1/admin/coding-problems", ctrl.CreateCodingProblem)
	r.GET("/api/v1/admin/submissions", ctrl.ListSubmissions)
	r.POST("/api/v1/admin/submissions/:team_id/score", ctrl.CalculateScore)
	r.POST("/api/v1/admin/certificates", ctrl.AwardCertificate)

	return &adminFixture{router: r, content: content, submissions: submissions, teams: teams}
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

func TestStartRoundReturnsActiveRound(t *testing.T) {
	f := setupAdminRouter(t)

	res := performRequest(f.router, http.MethodPost, "/api/v1/admin/rounds/1/start", nil)

	require.Equal(t, http.StatusOK, res.Code)
	var round dto.RoundResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &round))
	assert.Equal(t, string(model.RoundActive), round.Status)
	assert.NotNil(t, round.StartedAt)
}

func TestSetRoundDurationValidatesBody(t *testing.T) {
	f := setupAdminRouter(t)

	res := performRequest(f.router, http.MethodPut, "/api/v1/admin/rounds/1/duration",
		dto.SetRoundDurationDTO{DurationInMinutes: 0})

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestCreateMCQRejectsBadAnswerKey(t *testing.T) {
	f := setupAdminRouter(t)

	payload := dto.CreateMCQDTO{
		Question: "Which keyword starts a goroutine?",
		Options: []dto.MCQOptionDTO{
			{ID: "a", Text: "go"},
			{ID: "b", Text: "async"},
		},
		CorrectAnswerID: "c",
	}
	res := performRequest(f.router, http.MethodPost, "/api/v1/admin/mcqs", payload)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestCreateAndListMCQs(t *testing.T) {
	f := setupAdminRouter(t)

	payload := dto.CreateMCQDTO{
		Question: "Which keyword starts a goroutine?",
		Options: []dto.MCQOptionDTO{
			{ID: "a", Text: "go"},
			{ID: "b", Text: "async"},
		},
		CorrectAnswerID: "a",
	}
	res := performRequest(f.router, http.MethodPost, "/api/v1/admin/mcqs", payload)
	require.Equal(t, http.StatusCreated, res.Code)

	res = performRequest(f.router, http.MethodGet, "/api/v1/admin/mcqs", nil)
	require.Equal(t, http.StatusOK, res.Code)
	var mcqs []dto.MCQResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &mcqs))
	require.Len(t, mcqs, 1)
	assert.Equal(t, "a", mcqs[0].CorrectAnswerID)
}

func TestCalculateScoreEndpointScoresSubmission(t *testing.T) {
	f := setupAdminRouter(t)
	team := f.teams.RegisterTeam("Gophers")

	options := []model.MCQOption{{ID: "a", Text: "right"}, {ID: "b", Text: "wrong"}}
	mcq, err := f.content.AddMCQ("q", options, "a")
	require.NoError(t, err)

	f.submissions.SubmitRound1(team.ID, []model.MCQAnswer{{MCQID: mcq.ID, OptionID: "a"}}, nil)

	res := performRequest(f.router, http.MethodPost, "/api/v1/admin/submissions/"+team.ID+"/score", nil)

	require.Equal(t, http.StatusOK, res.Code)
	var sub dto.SubmissionResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &sub))
	require.NotNil(t, sub.Score)
	// One correct MCQ, round never started: no time adjustment.
	assert.Equal(t, 4, *sub.Score)
	assert.Equal(t, "Gophers", sub.TeamName)
}

func TestCalculateScoreForUnknownTeamReturnsNoContent(t *testing.T) {
	f := setupAdminRouter(t)

	res := performRequest(f.router, http.MethodPost, "/api/v1/admin/submissions/ghost/score", nil)

	assert.Equal(t, http.StatusNoContent, res.Code)
}

func TestAwardCertificateValidatesType(t *testing.T) {
	f := setupAdminRouter(t)

	res := performRequest(f.router, http.MethodPost, "/api/v1/admin/certificates", dto.AwardCertificateDTO{
		TeamID:   "team-1",
		TeamName: "Gophers",
		Type:     "mvp",
	})

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestAwardCertificateCreatesRecord(t *testing.T) {
	f := setupAdminRouter(t)

	res := performRequest(f.router, http.MethodPost, "/api/v1/admin/certificates", dto.AwardCertificateDTO{
		TeamID:   "team-1",
		TeamName: "Gophers",
		Type:     "winner",
	})

	require.Equal(t, http.StatusCreated, res.Code)
	var cert dto.CertificateResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &cert))
	assert.Equal(t, "winner", cert.Type)
	assert.False(t, cert.AwardedAt.IsZero())
}
