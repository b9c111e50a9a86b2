package dto

// MCQAnswerDTO is one chosen option in a Round 1 submission. Order matters:
// answers are graded in the order they appear in the request.
type MCQAnswerDTO struct {
	MCQID    string `json:"mcq_id" binding:"required"`
	OptionID string `json:"option_id" binding:"required"`
}

// GradeResultDTO carries the pass/total ratio produced by the grading boundary.
type GradeResultDTO struct {
	Passed int `json:"passed" binding:"min=0"`
	Total  int `json:"total" binding:"min=0"`
}

type CodingAnswerDTO struct {
	ProblemID string          `json:"problem_id" binding:"required"`
	Result    *GradeResultDTO `json:"submission_result,omitempty"`
}

// SubmitRound1DTO is a team's full Round 1 submission. Resubmitting replaces
// the previous submission entirely.
type SubmitRound1DTO struct {
	TeamID        string            `json:"team_id" binding:"required"`
	MCQAnswers    []MCQAnswerDTO    `json:"mcq_answers" binding:"dive"`
	CodingAnswers []CodingAnswerDTO `json:"coding_answers" binding:"dive"`
}

type RegisterTeamDTO struct {
	Name string `json:"name" binding:"required"`
}
