package model

import "time"

type RoundStatus string

const (
	RoundNotStarted RoundStatus = "Not Started"
	RoundActive     RoundStatus = "Active"
	RoundFinished   RoundStatus = "Finished"
)

// Round is a phase of the contest with its own lifecycle and optional timer.
// Rounds live in memory as the authoritative copy; persistence is write-through
// and best-effort only.
type Round struct {
	ID                int         `json:"id"`
	Name              string      `json:"name"`
	Status            RoundStatus `json:"status"`
	StartedAt         *time.Time  `json:"started_at,omitempty"`
	DurationInMinutes *int        `json:"duration_in_minutes,omitempty"`
}
