package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/SohanMitra1729/CodeFest/internal/dto"
	"github.com/SohanMitra1729/CodeFest/internal/mapping"
	"github.com/SohanMitra1729/CodeFest/internal/model"
	"github.com/SohanMitra1729/CodeFest/internal/service"
)

type ContestAdminController struct {
	roundService       service.RoundService
	contentService     service.ContentService
	submissionService  service.SubmissionService
	scoringService     service.ScoringService
	certificateService service.CertificateService
	teamService        service.TeamService
}

func NewContestAdminController(
	roundService service.RoundService,
	contentService service.ContentService,
	submissionService service.SubmissionService,
	scoringService service.ScoringService,
	certificateService service.CertificateService,
	teamService service.TeamService,
) *ContestAdminController {
	return &ContestAdminController{
		roundService:       roundService,
		contentService:     contentService,
		submissionService:  submissionService,
		scoringService:     scoringService,
		certificateService: certificateService,
		teamService:        teamService,
	}
}

// StartRound godoc
// @Summary (Admin) Start a round
// @Description Marks the round Active and records the start time. Persistence is best-effort; the operation succeeds regardless.
// @Tags Admin - Rounds
// @Produce json
// @Param round_id path int true "Round ID"
// @Success 200 {object} dto.RoundResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid round ID format"
// @Router /admin/rounds/{round_id}/start [post]
func (c *ContestAdminController) StartRound(ctx *gin.Context) {
	roundID, ok := parseRoundID(ctx)
	if !ok {
		return
	}
	c.roundService.StartRound(roundID)
	c.respondWithRound(ctx, roundID)
}

// EndRound godoc
// @Summary (Admin) End a round
// @Description Marks the round Finished. Ending round 1 also unlocks round 2 (resets it to Not Started).
// @Tags Admin - Rounds
// @Produce json
// @Param round_id path int true "Round ID"
// @Success 200 {object} dto.RoundResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid round ID format"
// @Router /admin/rounds/{round_id}/end [post]
func (c *ContestAdminController) EndRound(ctx *gin.Context) {
	roundID, ok := parseRoundID(ctx)
	if !ok {
		return
	}
	c.roundService.EndRound(roundID)
	c.respondWithRound(ctx, roundID)
}

// SetRoundDuration godoc
// @Summary (Admin) Set a round's duration
// @Tags Admin - Rounds
// @Accept json
// @Produce json
// @Param round_id path int true "Round ID"
// @Param duration body dto.SetRoundDurationDTO true "Duration in minutes"
// @Success 200 {object} dto.RoundResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/rounds/{round_id}/duration [put]
func (c *ContestAdminController) SetRoundDuration(ctx *gin.Context) {
	roundID, ok := parseRoundID(ctx)
	if !ok {
		return
	}
	var req dto.SetRoundDurationDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin SetRoundDuration: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	c.roundService.SetRoundDuration(roundID, req.DurationInMinutes)
	c.respondWithRound(ctx, roundID)
}

// CreateMCQ godoc
// @Summary (Admin) Author a new MCQ
// @Description Adds a multiple-choice question to the Round 1 answer key. Content is immutable once created.
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param mcq body dto.CreateMCQDTO true "MCQ data"
// @Success 201 {object} dto.MCQResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input (e.g. correct answer not among options)"
// @Router /admin/mcqs [post]
func (c *ContestAdminController) CreateMCQ(ctx *gin.Context) {
	var req dto.CreateMCQDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateMCQ: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	options := make([]model.MCQOption, 0, len(req.Options))
	for _, opt := range req.Options {
		options = append(options, model.MCQOption{ID: opt.ID, Text: opt.Text})
	}

	mcq, err := c.contentService.AddMCQ(req.Question, options, req.CorrectAnswerID)
	if err != nil {
		log.Warn().Err(err).Msg("Admin CreateMCQ: Service rejected MCQ")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create MCQ", Details: []string{err.Error()}})
		return
	}

	var resp dto.MCQResponse
	if err := copier.Copy(&resp, &mcq); err != nil {
		log.Error().Err(err).Msg("Admin CreateMCQ: Failed to copy MCQ to response")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to prepare response"})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListMCQs godoc
// @Summary (Admin) List authored MCQs
// @Tags Admin - Content
// @Produce json
// @Success 200 {array} dto.MCQResponse
// @Router /admin/mcqs [get]
func (c *ContestAdminController) ListMCQs(ctx *gin.Context) {
	mcqs := c.contentService.ListMCQs()
	resp := make([]dto.MCQResponse, 0, len(mcqs))
	if err := copier.Copy(&resp, &mcqs); err != nil {
		log.Error().Err(err).Msg("Admin ListMCQs: Failed to copy MCQs to response")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to prepare response"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateCodingProblem godoc
// @Summary (Admin) Author a new coding problem
// @Description Creates the problem with empty test-case collections; cases are populated outside this API.
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Param problem body dto.CreateCodingProblemDTO true "Problem data"
// @Success 201 {object} dto.CodingProblemResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/coding-problems [post]
func (c *ContestAdminController) CreateCodingProblem(ctx *gin.Context) {
	var req dto.CreateCodingProblemDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateCodingProblem: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	problem := c.contentService.AddCodingProblem(req.Title, req.Description)
	ctx.JSON(http.StatusCreated, mapping.CodingProblemToResponse(problem))
}

// ListCodingProblems godoc
// @Summary (Admin) List authored coding problems
// @Tags Admin - Content
// @Produce json
// @Success 200 {array} dto.CodingProblemResponse
// @Router /admin/coding-problems [get]
func (c *ContestAdminController) ListCodingProblems(ctx *gin.Context) {
	problems := c.contentService.ListCodingProblems()
	resp := make([]dto.CodingProblemResponse, 0, len(problems))
	for _, p := range problems {
		resp = append(resp, mapping.CodingProblemToResponse(p))
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListSubmissions godoc
// @Summary (Admin) List Round 1 submissions with team names and scores
// @Tags Admin - Results
// @Produce json
// @Success 200 {array} dto.SubmissionResponse
// @Router /admin/submissions [get]
func (c *ContestAdminController) ListSubmissions(ctx *gin.Context) {
	subs := c.submissionService.ListSubmissions()
	resp := make([]dto.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		resp = append(resp, mapping.SubmissionToResponse(sub, c.teamService.GetTeamName(sub.TeamID)))
	}
	ctx.JSON(http.StatusOK, resp)
}

// CalculateScore godoc
// @Summary (Admin) Calculate a team's Round 1 score
// @Description Runs the scoring engine for one team and writes the score into the ledger. A team without a submission is a no-op.
// @Tags Admin - Results
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} dto.SubmissionResponse "Scored submission"
// @Success 204 "No submission for this team"
// @Router /admin/submissions/{team_id}/score [post]
func (c *ContestAdminController) CalculateScore(ctx *gin.Context) {
	teamID := ctx.Param("team_id")
	c.scoringService.CalculateRound1Score(teamID)

	sub, ok := c.submissionService.GetTeamSubmission(teamID)
	if !ok {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, mapping.SubmissionToResponse(sub, c.teamService.GetTeamName(teamID)))
}

// AwardCertificate godoc
// @Summary (Admin) Award a certificate
// @Description Appends an award record. No idempotency: awarding twice produces two certificates.
// @Tags Admin - Results
// @Accept json
// @Produce json
// @Param certificate body dto.AwardCertificateDTO true "Certificate data"
// @Success 201 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/certificates [post]
func (c *ContestAdminController) AwardCertificate(ctx *gin.Context) {
	var req dto.AwardCertificateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin AwardCertificate: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	cert := c.certificateService.AwardCertificate(req.TeamID, req.TeamName, model.CertificateType(req.Type))
	ctx.JSON(http.StatusCreated, mapping.CertificateToResponse(cert))
}

// ListCertificates godoc
// @Summary (Admin) List awarded certificates
// @Tags Admin - Results
// @Produce json
// @Success 200 {array} dto.CertificateResponse
// @Router /admin/certificates [get]
func (c *ContestAdminController) ListCertificates(ctx *gin.Context) {
	certs := c.certificateService.ListCertificates()
	resp := make([]dto.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		resp = append(resp, mapping.CertificateToResponse(cert))
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *ContestAdminController) respondWithRound(ctx *gin.Context, roundID int) {
	round, ok := c.roundService.GetRoundByID(roundID)
	if !ok {
		// Unknown rounds are a no-op in the registry; report the miss without
		// surfacing an error state.
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, mapping.RoundToResponse(round))
}

func parseRoundID(ctx *gin.Context) (int, bool) {
	roundID, err := strconv.Atoi(ctx.Param("round_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid round ID format"})
		return 0, false
	}
	return roundID, true
}
