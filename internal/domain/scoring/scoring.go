package scoring

import (
	"time"

	"patronpoint/internal/domain/entity"
)

// Score scale. Every customer starts at the baseline; positive reports raise
// the score and negative reports lower it, clamped to [MinScore, MaxScore].
const (
	MinScore      = 0
	MaxScore      = 1000
	BaselineScore = 700
)

// Display bands for the aggregated score.
const (
	BandHighRisk     = "high_risk"     // 0-399
	BandModerateRisk = "moderate_risk" // 400-650
	BandGood         = "good"          // 651-799
	BandExcellent    = "excellent"     // 800-1000
)

// Summary is the derived reputation of one customer, computed fresh from the
// full report set on every lookup. No aggregate is ever persisted.
type Summary struct {
	Score         int            `json:"score"`
	Band          string         `json:"band"`
	Breakdown     map[string]int `json:"breakdown"`
	PositiveCount int            `json:"positive_count"`
	NegativeCount int            `json:"negative_count"`
	TotalReports  int            `json:"total_reports"`
	MostRecent    *time.Time     `json:"most_recent,omitempty"`
	NoHistory     bool           `json:"no_history"`
}

// Aggregate folds a customer's reports into a single summary. The fold is
// order-independent: points are summed and only the maximum timestamp is
// kept. Positive/negative counts split on the sign of the snapshotted
// points, not on the reportType label.
func Aggregate(reports []*entity.Report) Summary {
	summary := Summary{
		Score:     BaselineScore,
		Breakdown: map[string]int{},
		NoHistory: len(reports) == 0,
	}

	score := BaselineScore
	for _, report := range reports {
		score += report.Points
		summary.Breakdown[report.Reason]++

		if report.Points > 0 {
			summary.PositiveCount++
		} else if report.Points < 0 {
			summary.NegativeCount++
		}

		if summary.MostRecent == nil || report.Timestamp.After(*summary.MostRecent) {
			ts := report.Timestamp
			summary.MostRecent = &ts
		}
	}

	summary.Score = clamp(score)
	summary.Band = BandFor(summary.Score)
	summary.TotalReports = len(reports)

	return summary
}

// BandFor maps a clamped score to its display band.
func BandFor(score int) string {
	switch {
	case score < 400:
		return BandHighRisk
	case score <= 650:
		return BandModerateRisk
	case score <= 799:
		return BandGood
	default:
		return BandExcellent
	}
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
