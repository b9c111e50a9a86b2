package model

import "time"

// MCQAnswer pairs an MCQ with the option a team chose. Answers keep their
// submission order: scoring grades the first five entries in this order.
type MCQAnswer struct {
	MCQID    string `json:"mcq_id"`
	OptionID string `json:"option_id"`
}

// GradeResult is the pass/total ratio produced by the grading boundary for one
// coding problem. The core does not validate Passed <= Total.
type GradeResult struct {
	Passed int `json:"passed"`
	Total  int `json:"total"`
}

type CodingAnswer struct {
	ProblemID string       `json:"problem_id"`
	Result    *GradeResult `json:"submission_result,omitempty"`
}

// Round1Submission is a team's recorded answers for Round 1, one per team.
// Resubmission replaces the whole record; Score is derived by the scoring
// engine and never authored directly.
type Round1Submission struct {
	TeamID        string         `json:"team_id"`
	MCQAnswers    []MCQAnswer    `json:"mcq_answers"`
	CodingAnswers []CodingAnswer `json:"coding_answers"`
	SubmittedAt   time.Time      `json:"submitted_at"`
	Score         *int           `json:"score,omitempty"`
}
