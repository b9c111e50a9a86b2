// Package mapping converts domain models into API response DTOs. Conversions
// that copier cannot do structurally (typed string enums, name decoration,
// hiding hidden test cases) live here.
package mapping

import (
	"github.com/SohanMitra1729/CodeFest/internal/dto"
	"github.com/SohanMitra1729/CodeFest/internal/model"
)

func RoundToResponse(r model.Round) dto.RoundResponse {
	return dto.RoundResponse{
		ID:                r.ID,
		Name:              r.Name,
		Status:            string(r.Status),
		StartedAt:         r.StartedAt,
		DurationInMinutes: r.DurationInMinutes,
	}
}

// CodingProblemToResponse deliberately exposes only the displayed test cases.
func CodingProblemToResponse(p model.CodingProblem) dto.CodingProblemResponse {
	cases := make([]dto.TestCaseResponse, 0, len(p.DisplayedTestCases))
	for _, tc := range p.DisplayedTestCases {
		cases = append(cases, dto.TestCaseResponse{Input: tc.Input, ExpectedOutput: tc.ExpectedOutput})
	}
	return dto.CodingProblemResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		DisplayedTestCases: cases,
	}
}

func SubmissionToResponse(sub model.Round1Submission, teamName string) dto.SubmissionResponse {
	mcqAnswers := make([]dto.MCQAnswerDTO, 0, len(sub.MCQAnswers))
	for _, a := range sub.MCQAnswers {
		mcqAnswers = append(mcqAnswers, dto.MCQAnswerDTO{MCQID: a.MCQID, OptionID: a.OptionID})
	}
	codingAnswers := make([]dto.CodingAnswerDTO, 0, len(sub.CodingAnswers))
	for _, a := range sub.CodingAnswers {
		ca := dto.CodingAnswerDTO{ProblemID: a.ProblemID}
		if a.Result != nil {
			ca.Result = &dto.GradeResultDTO{Passed: a.Result.Passed, Total: a.Result.Total}
		}
		codingAnswers = append(codingAnswers, ca)
	}
	return dto.SubmissionResponse{
		TeamID:        sub.TeamID,
		TeamName:      teamName,
		MCQAnswers:    mcqAnswers,
		CodingAnswers: codingAnswers,
		SubmittedAt:   sub.SubmittedAt,
		Score:         sub.Score,
	}
}

func CertificateToResponse(cert model.Certificate) dto.CertificateResponse {
	return dto.CertificateResponse{
		TeamID:    cert.TeamID,
		TeamName:  cert.TeamName,
		Type:      string(cert.Type),
		AwardedAt: cert.AwardedAt,
	}
}
