package scoring

import (
	"time"

	"patronpoint/internal/domain/entity"
)

// CooldownWindow is the period during which one business may not file a
// second report about the same customer. Fixed policy constant.
const CooldownWindow = 30 * 24 * time.Hour

// CooldownStatus is the outcome of a cooldown evaluation. A violation is a
// normal result branch, not an error: NextAvailableAt tells the business
// when it may file again.
type CooldownStatus struct {
	Allowed         bool       `json:"allowed"`
	NextAvailableAt *time.Time `json:"next_available_at,omitempty"`
}

// EvaluateCooldown decides whether a new report is allowed given the set of
// prior reports by the same business about the same customer key (exact
// match, fetched by the caller). A report timestamped strictly inside the
// window blocks; one aged exactly CooldownWindow no longer does. The
// earliest blocking timestamp determines NextAvailableAt.
func EvaluateCooldown(priorReports []*entity.Report, now time.Time) CooldownStatus {
	cutoff := now.Add(-CooldownWindow)

	var next *time.Time
	for _, report := range priorReports {
		if !report.Timestamp.After(cutoff) {
			continue
		}
		available := report.Timestamp.Add(CooldownWindow)
		if next == nil || available.Before(*next) {
			t := available
			next = &t
		}
	}

	if next != nil {
		return CooldownStatus{Allowed: false, NextAvailableAt: next}
	}
	return CooldownStatus{Allowed: true}
}
