// Package models defines the core data structures exchanged with the detection engine
// and the renderer. It includes the ring payload, the graph model and the pattern table.
package models

// Payload is the analysis result produced by the fraud-detection engine.
// A nil slice means the key was absent from the decoded document.
type Payload struct {
	FraudRings         []FraudRing    `json:"fraud_rings"`
	SuspiciousAccounts []AccountScore `json:"suspicious_accounts"`
	Summary            *Summary       `json:"summary,omitempty"`
}

type FraudRing struct {
	RingID         string      `json:"ring_id"`
	PatternType    PatternType `json:"pattern_type"`
	RiskScore      float64     `json:"risk_score"`
	MemberAccounts []string    `json:"member_accounts"`
}

type AccountScore struct {
	AccountID        string   `json:"account_id"`
	SuspicionScore   float64  `json:"suspicion_score"`
	RingID           *string  `json:"ring_id"`
	DetectedPatterns []string `json:"detected_patterns"`
}

type Summary struct {
	TotalAccountsAnalyzed     int     `json:"total_accounts_analyzed"`
	SuspiciousAccountsFlagged int     `json:"suspicious_accounts_flagged"`
	FraudRingsDetected        int     `json:"fraud_rings_detected"`
	ProcessingTimeSeconds     float64 `json:"processing_time_seconds"`
}

// Risk levels shown next to a ring's risk score.
const (
	RiskCritical = "CRITICAL"
	RiskHigh     = "HIGH"
	RiskModerate = "MODERATE"
	RiskLow      = "LOW"
)

func RiskLevel(score float64) string {
	switch {
	case score >= 90:
		return RiskCritical
	case score >= 80:
		return RiskHigh
	case score >= 70:
		return RiskModerate
	default:
		return RiskLow
	}
}
