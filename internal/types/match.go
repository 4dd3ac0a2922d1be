package types

// Confidence is a coarse reliability bucket derived from a similarity
// score, used to communicate match quality to a human reviewer.
type Confidence string

// Confidence tiers.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MatchCandidate pairs a directory record with the similarity evidence
// that produced it. Candidates are only created for scores at or above
// the caller's minimum threshold.
type MatchCandidate struct {
	Facility   FacilityRecord `json:"facility"`
	Score      float64        `json:"score"`
	Confidence Confidence     `json:"confidence"`
}

// ConfidenceForScore buckets a similarity score using the supplied tier
// floors. Scores below mediumMin are low; anything that produced a
// candidate already cleared the caller's minimum threshold.
func ConfidenceForScore(score, highMin, mediumMin float64) Confidence {
	switch {
	case score >= highMin:
		return ConfidenceHigh
	case score >= mediumMin:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
