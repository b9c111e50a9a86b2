package dto

import "time"

type RoundResponse struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Status            string     `json:"status"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	DurationInMinutes *int       `json:"duration_in_minutes,omitempty"`
}

type MCQResponse struct {
	ID              string         `json:"id"`
	Question        string         `json:"question"`
	Options         []MCQOptionDTO `json:"options"`
	CorrectAnswerID string         `json:"correct_answer_id"`
}

type CodingProblemResponse struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	DisplayedTestCases []TestCaseResponse `json:"displayed_test_cases"`
}

type TestCaseResponse struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// SubmissionResponse is a ledger record decorated with the resolved team name.
// Score is absent until the scoring engine has run for the team.
type SubmissionResponse struct {
	TeamID        string            `json:"team_id"`
	TeamName      string            `json:"team_name"`
	MCQAnswers    []MCQAnswerDTO    `json:"mcq_answers"`
	CodingAnswers []CodingAnswerDTO `json:"coding_answers"`
	SubmittedAt   time.Time         `json:"submitted_at"`
	Score         *int              `json:"score,omitempty"`
}

type CertificateResponse struct {
	TeamID    string    `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Type      string    `json:"type"`
	AwardedAt time.Time `json:"awarded_at"`
}

type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
