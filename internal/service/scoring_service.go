package service

import (
	"math"

	"github.com/rs/zerolog/log"
)

// Scoring weights for Round 1.
// Five MCQs at 4 points each, coding auto-graded out of 30, a flat 5-point
// bonus for finishing inside the first 10 minutes, and a graduated 0.1
// point-per-minute penalty past the configured duration. Each wrong MCQ answer
// inflates the elapsed time by 5 minutes before the bonus and penalty checks.
const (
	mcqsGradedPerSubmission  = 5
	pointsPerCorrectMCQ      = 4.0
	codingMaxPoints          = 30.0
	speedBonusPoints         = 5.0
	speedBonusWindowMinutes  = 10.0
	wrongAnswerMinutesEach   = 5.0
	latePenaltyPerLateMinute = 0.1
)

// ScoringService computes Round 1 scores. It reads the ledger, the answer key
// and round timing, and writes the result back through the ledger; it keeps no
// state of its own.
type ScoringService interface {
	CalculateRound1Score(teamID string)
}

type scoringService struct {
	submissions SubmissionService
	content     ContentService
	rounds      RoundService
}

func NewScoringService(submissions SubmissionService, content ContentService, rounds RoundService) ScoringService {
	return &scoringService{
		submissions: submissions,
		content:     content,
		rounds:      rounds,
	}
}

// CalculateRound1Score recomputes and stores the score for one team. A missing
// submission is a no-op. Recalculation from the same snapshot yields the same
// result; resubmission changes the snapshot and therefore the outcome.
func (s *scoringService) CalculateRound1Score(teamID string) {
	sub, ok := s.submissions.GetTeamSubmission(teamID)
	if !ok {
		log.Info().Str("teamID", teamID).Msg("No submission to score")
		return
	}

	score := 0.0
	wrongAnswers := 0

	// MCQ scoring: exactly the first five answers count, in submission order.
	// Unknown MCQ ids are skipped with neither credit nor penalty.
	mcqAnswers := sub.MCQAnswers
	if len(mcqAnswers) > mcqsGradedPerSubmission {
		mcqAnswers = mcqAnswers[:mcqsGradedPerSubmission]
	}
	for _, ans := range mcqAnswers {
		mcq, found := s.content.GetMCQ(ans.MCQID)
		if !found {
			continue
		}
		if mcq.CorrectAnswerID == ans.OptionID {
			score += pointsPerCorrectMCQ
		} else {
			wrongAnswers++
		}
	}

	// Coding scoring: each graded problem overwrites the coding contribution,
	// so only the last entry with a valid result counts. Kept as-is; changing
	// it would change contest outcomes.
	codingScore := 0.0
	for _, ans := range sub.CodingAnswers {
		if ans.Result == nil {
			continue
		}
		if ans.Result.Total > 0 {
			codingScore = float64(ans.Result.Passed) / float64(ans.Result.Total) * codingMaxPoints
		}
	}
	score += codingScore

	// Time adjustment: skipped entirely unless round 1 has a start time.
	if round1, found := s.rounds.GetRoundByID(firstRoundID); found && round1.StartedAt != nil {
		minutesTaken := sub.SubmittedAt.Sub(*round1.StartedAt).Minutes()
		minutesTaken += float64(wrongAnswers) * wrongAnswerMinutesEach

		if minutesTaken <= speedBonusWindowMinutes {
			score += speedBonusPoints
		}
		if round1.DurationInMinutes != nil && minutesTaken > float64(*round1.DurationInMinutes) {
			late := minutesTaken - float64(*round1.DurationInMinutes)
			score -= late * latePenaltyPerLateMinute
		}
	}

	if score < 0 {
		score = 0
	}

	final := int(math.Round(score))
	log.Info().
		Str("teamID", teamID).
		Int("wrongAnswers", wrongAnswers).
		Float64("codingScore", codingScore).
		Int("finalScore", final).
		Msg("Round 1 score calculated")
	s.submissions.SetScore(teamID, final)
}
