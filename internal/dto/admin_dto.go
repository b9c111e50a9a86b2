package dto

// MCQOptionDTO is one answer choice when authoring an MCQ.
type MCQOptionDTO struct {
	ID   string `json:"id" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// CreateMCQDTO is for admins to author a new multiple-choice question.
type CreateMCQDTO struct {
	Question        string         `json:"question" binding:"required"`
	Options         []MCQOptionDTO `json:"options" binding:"required,min=2,max=4,dive"`
	CorrectAnswerID string         `json:"correct_answer_id" binding:"required"`
}

// CreateCodingProblemDTO authors a coding problem; test cases are managed
// outside this API and start empty.
type CreateCodingProblemDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type SetRoundDurationDTO struct {
	DurationInMinutes int `json:"duration_in_minutes" binding:"required,gt=0"`
}

type AwardCertificateDTO struct {
	TeamID   string `json:"team_id" binding:"required"`
	TeamName string `json:"team_name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=winner runner_up participation"`
}
