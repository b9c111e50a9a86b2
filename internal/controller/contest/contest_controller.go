package contest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SohanMitra1729/CodeFest/internal/dto"
	"github.com/SohanMitra1729/CodeFest/internal/mapping"
	"github.com/SohanMitra1729/CodeFest/internal/model"
	"github.com/SohanMitra1729/CodeFest/internal/service"
)

// ContestController serves the contestant-facing surface: round visibility,
// team registration and Round 1 submissions.
type ContestController struct {
	roundService      service.RoundService
	submissionService service.SubmissionService
	teamService       service.TeamService
}

func NewContestController(
	roundService service.RoundService,
	submissionService service.SubmissionService,
	teamService service.TeamService,
) *ContestController {
	return &ContestController{
		roundService:      roundService,
		submissionService: submissionService,
		teamService:       teamService,
	}
}

// ListRounds godoc
// @Summary List contest rounds
// @Tags Contest
// @Produce json
// @Success 200 {array} dto.RoundResponse
// @Router /rounds [get]
func (c *ContestController) ListRounds(ctx *gin.Context) {
	rounds := c.roundService.ListRounds()
	resp := make([]dto.RoundResponse, 0, len(rounds))
	for _, r := range rounds {
		resp = append(resp, mapping.RoundToResponse(r))
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetRound godoc
// @Summary Get one round
// @Tags Contest
// @Produce json
// @Param round_id path int true "Round ID"
// @Success 200 {object} dto.RoundResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid round ID format"
// @Failure 404 {object} dto.ErrorResponse "Round not found"
// @Router /rounds/{round_id} [get]
func (c *ContestController) GetRound(ctx *gin.Context) {
	roundID, err := strconv.Atoi(ctx.Param("round_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid round ID format"})
		return
	}
	round, ok := c.roundService.GetRoundByID(roundID)
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Round not found"})
		return
	}
	ctx.JSON(http.StatusOK, mapping.RoundToResponse(round))
}

// RegisterTeam godoc
// @Summary Register a team
// @Tags Contest
// @Accept json
// @Produce json
// @Param team body dto.RegisterTeamDTO true "Team name"
// @Success 201 {object} dto.TeamResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /teams [post]
func (c *ContestController) RegisterTeam(ctx *gin.Context) {
	var req dto.RegisterTeamDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RegisterTeam: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	team := c.teamService.RegisterTeam(req.Name)
	ctx.JSON(http.StatusCreated, dto.TeamResponse{ID: team.ID, Name: team.Name})
}

// SubmitRound1 godoc
// @Summary Submit Round 1 answers
// @Description Records a team's Round 1 submission. Resubmitting replaces the prior submission entirely and clears any calculated score.
// @Tags Contest
// @Accept json
// @Produce json
// @Param submission body dto.SubmitRound1DTO true "Submission data"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /round1/submissions [post]
func (c *ContestController) SubmitRound1(ctx *gin.Context) {
	var req dto.SubmitRound1DTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitRound1: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	mcqAnswers := make([]model.MCQAnswer, 0, len(req.MCQAnswers))
	for _, a := range req.MCQAnswers {
		mcqAnswers = append(mcqAnswers, model.MCQAnswer{MCQID: a.MCQID, OptionID: a.OptionID})
	}
	codingAnswers := make([]model.CodingAnswer, 0, len(req.CodingAnswers))
	for _, a := range req.CodingAnswers {
		ca := model.CodingAnswer{ProblemID: a.ProblemID}
		if a.Result != nil {
			ca.Result = &model.GradeResult{Passed: a.Result.Passed, Total: a.Result.Total}
		}
		codingAnswers = append(codingAnswers, ca)
	}

	sub := c.submissionService.SubmitRound1(req.TeamID, mcqAnswers, codingAnswers)
	ctx.JSON(http.StatusCreated, mapping.SubmissionToResponse(sub, c.teamService.GetTeamName(sub.TeamID)))
}

// GetTeamSubmission godoc
// @Summary Get a team's Round 1 submission
// @Tags Contest
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse "No submission for this team"
// @Router /round1/submissions/{team_id} [get]
func (c *ContestController) GetTeamSubmission(ctx *gin.Context) {
	teamID := ctx.Param("team_id")
	sub, ok := c.submissionService.GetTeamSubmission(teamID)
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No submission found for this team"})
		return
	}
	ctx.JSON(http.StatusOK, mapping.SubmissionToResponse(sub, c.teamService.GetTeamName(teamID)))
}
