package model

type MCQOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MCQ is a multiple-choice question with a fixed answer key. Immutable once
// authored; CorrectAnswerID always references one of Options.
type MCQ struct {
	ID              string      `json:"id"`
	Question        string      `json:"question"`
	Options         []MCQOption `json:"options"`
	CorrectAnswerID string      `json:"correct_answer_id"`
}
