package model

import "time"

type CertificateType string

const (
	CertificateWinner        CertificateType = "winner"
	CertificateRunnerUp      CertificateType = "runner_up"
	CertificateParticipation CertificateType = "participation"
)

// Certificate is an append-only award record. Duplicates are allowed; awarding
// twice with the same arguments produces two records.
type Certificate struct {
	TeamID    string          `json:"team_id"`
	TeamName  string          `json:"team_name"`
	Type      CertificateType `json:"type"`
	AwardedAt time.Time       `json:"awarded_at"`
}
