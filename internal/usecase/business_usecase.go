package usecase

import (
	"context"
	"time"

	"patronpoint/internal/domain/entity"
	"patronpoint/internal/domain/repository"
	"patronpoint/pkg/errors"
	"patronpoint/pkg/phone"
)

// Submission rewards policy: one credit per report, a free month every
// hundred reports.
const (
	CreditsPerReport   = 1
	FreeMonthThreshold = 100
)

type BusinessUseCase struct {
	businessRepo repository.BusinessRepository
	reportRepo   repository.ReportRepository
}

func NewBusinessUseCase(businessRepo repository.BusinessRepository, reportRepo repository.ReportRepository) *BusinessUseCase {
	return &BusinessUseCase{
		businessRepo: businessRepo,
		reportRepo:   reportRepo,
	}
}

type SaveProfileInput struct {
	BusinessName    string
	BusinessWebsite string
	BusinessPhone   string
}

func (uc *BusinessUseCase) GetProfile(ctx context.Context, businessID string) (*entity.Business, error) {
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, errors.NotFound("Business", err)
	}
	return business, nil
}

// SaveProfile overwrites the contact fields wholesale, last-write-wins.
func (uc *BusinessUseCase) SaveProfile(ctx context.Context, businessID string, input SaveProfileInput) (*entity.Business, error) {
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, errors.NotFound("Business", err)
	}

	contactPhone, err := phone.FormatBusinessContact(input.BusinessPhone, "US")
	if err != nil {
		return nil, errors.BadRequest("Invalid business phone number", err)
	}

	business.BusinessName = input.BusinessName
	business.BusinessWebsite = input.BusinessWebsite
	business.BusinessPhone = contactPhone
	business.UpdatedAt = time.Now()

	if err := uc.businessRepo.Save(ctx, business); err != nil {
		return nil, err
	}

	return business, nil
}

type LeaderboardEntry struct {
	Rank             int    `json:"rank"`
	BusinessID       string `json:"business_id"`
	BusinessName     string `json:"business_name"`
	BusinessWebsite  string `json:"business_website,omitempty"`
	BusinessPhone    string `json:"business_phone,omitempty"`
	ReportsSubmitted int64  `json:"reports_submitted"`
}

type Leaderboard struct {
	Top         []LeaderboardEntry `json:"top"`
	CallerRank  int                `json:"caller_rank,omitempty"`
	CallerCount int64              `json:"caller_reports,omitempty"`
}

// GetLeaderboard returns the top reporters plus the caller's own rank. The
// full ordering is fetched because the rank of an unplaced caller cannot be
// derived from the top slice alone.
func (uc *BusinessUseCase) GetLeaderboard(ctx context.Context, callerID string, topSize int) (*Leaderboard, error) {
	all, err := uc.businessRepo.TopByReports(ctx, 0)
	if err != nil {
		return nil, err
	}

	board := &Leaderboard{}
	for i, business := range all {
		if i < topSize {
			board.Top = append(board.Top, LeaderboardEntry{
				Rank:             i + 1,
				BusinessID:       business.ID,
				BusinessName:     business.BusinessName,
				BusinessWebsite:  business.BusinessWebsite,
				BusinessPhone:    business.BusinessPhone,
				ReportsSubmitted: business.ReportsSubmitted,
			})
		}
		if business.ID == callerID {
			board.CallerRank = i + 1
			board.CallerCount = business.ReportsSubmitted
		}
	}

	return board, nil
}

// StreamLeaderboard delivers the re-ranked top list on every store change
// until ctx is cancelled.
func (uc *BusinessUseCase) StreamLeaderboard(ctx context.Context, topSize int) (<-chan []LeaderboardEntry, error) {
	updates, err := uc.businessRepo.ListenTopByReports(ctx, topSize)
	if err != nil {
		return nil, err
	}

	out := make(chan []LeaderboardEntry)
	go func() {
		defer close(out)
		for businesses := range updates {
			entries := make([]LeaderboardEntry, 0, len(businesses))
			for i, business := range businesses {
				entries = append(entries, LeaderboardEntry{
					Rank:             i + 1,
					BusinessID:       business.ID,
					BusinessName:     business.BusinessName,
					BusinessWebsite:  business.BusinessWebsite,
					BusinessPhone:    business.BusinessPhone,
					ReportsSubmitted: business.ReportsSubmitted,
				})
			}
			select {
			case out <- entries:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

type PerformanceSummary struct {
	TotalReports          int64 `json:"total_reports"`
	ReportsThisMonth      int   `json:"reports_this_month"`
	CreditsEarned         int64 `json:"credits_earned"`
	ReportsUntilFreeMonth int   `json:"reports_until_free_month"`
}

// GetPerformance derives the monthly performance summary on demand; nothing
// is precomputed or persisted beyond the raw reports.
func (uc *BusinessUseCase) GetPerformance(ctx context.Context, businessID string) (*PerformanceSummary, error) {
	reports, total, err := uc.reportRepo.FindByBusiness(ctx, businessID, 0, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	thisMonth := 0
	for _, report := range reports {
		if !report.Timestamp.Before(monthStart) {
			thisMonth++
		}
	}

	return &PerformanceSummary{
		TotalReports:          total,
		ReportsThisMonth:      thisMonth,
		CreditsEarned:         total * CreditsPerReport,
		ReportsUntilFreeMonth: FreeMonthThreshold - int(total%FreeMonthThreshold),
	}, nil
}
