package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"patronpoint/internal/domain/entity"
)

func seedBusinesses(repo *fakeBusinessRepo) {
	repo.Create(context.Background(), &entity.Business{ID: "biz-1", BusinessName: "Alpha Plumbing", ReportsSubmitted: 40})
	repo.Create(context.Background(), &entity.Business{ID: "biz-2", BusinessName: "Beta Salon", ReportsSubmitted: 25})
	repo.Create(context.Background(), &entity.Business{ID: "biz-3", BusinessName: "Gamma Movers", ReportsSubmitted: 60})
	repo.Create(context.Background(), &entity.Business{ID: "biz-4", BusinessName: "Delta Cafe", ReportsSubmitted: 5})
}

func TestGetLeaderboardRanksAndCaller(t *testing.T) {
	businessRepo := newFakeBusinessRepo()
	seedBusinesses(businessRepo)

	uc := NewBusinessUseCase(businessRepo, &fakeReportRepo{})

	board, err := uc.GetLeaderboard(context.Background(), "biz-4", 3)

	assert.NoError(t, err)
	if assert.Len(t, board.Top, 3) {
		assert.Equal(t, "Gamma Movers", board.Top[0].BusinessName)
		assert.Equal(t, 1, board.Top[0].Rank)
		assert.Equal(t, "Alpha Plumbing", board.Top[1].BusinessName)
		assert.Equal(t, "Beta Salon", board.Top[2].BusinessName)
	}

	// Caller is outside the top slice but still gets a rank
	assert.Equal(t, 4, board.CallerRank)
	assert.Equal(t, int64(5), board.CallerCount)
}

func TestSaveProfileValidatesContactPhone(t *testing.T) {
	businessRepo := newFakeBusinessRepo()
	businessRepo.Create(context.Background(), &entity.Business{ID: "biz-1", Email: "owner@alpha.example"})

	uc := NewBusinessUseCase(businessRepo, &fakeReportRepo{})

	business, err := uc.SaveProfile(context.Background(), "biz-1", SaveProfileInput{
		BusinessName:    "Alpha Plumbing",
		BusinessWebsite: "https://alpha.example",
		BusinessPhone:   "202-555-0175",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alpha Plumbing", business.BusinessName)
	assert.Contains(t, business.BusinessPhone, "202")

	_, err = uc.SaveProfile(context.Background(), "biz-1", SaveProfileInput{
		BusinessName:  "Alpha Plumbing",
		BusinessPhone: "not a phone",
	})
	assert.Error(t, err)
}

func TestGetPerformanceSummary(t *testing.T) {
	businessRepo := newFakeBusinessRepo()
	businessRepo.Create(context.Background(), &entity.Business{ID: "biz-1"})

	reportRepo := &fakeReportRepo{}
	now := time.Now()
	for i := 0; i < 3; i++ {
		reportRepo.reports = append(reportRepo.reports, &entity.Report{
			BusinessID:    "biz-1",
			CustomerPhone: "5551234567",
			Reason:        "tipsWell",
			Points:        12,
			Timestamp:     now.Add(-time.Duration(i) * time.Hour),
		})
	}
	// One from a previous month
	reportRepo.reports = append(reportRepo.reports, &entity.Report{
		BusinessID:    "biz-1",
		CustomerPhone: "5559876543",
		Reason:        "noShow",
		Points:        -18,
		Timestamp:     now.AddDate(0, -2, 0),
	})

	uc := NewBusinessUseCase(businessRepo, reportRepo)

	summary, err := uc.GetPerformance(context.Background(), "biz-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(4), summary.TotalReports)
	assert.Equal(t, 3, summary.ReportsThisMonth)
	assert.Equal(t, int64(4), summary.CreditsEarned)
	assert.Equal(t, 96, summary.ReportsUntilFreeMonth)
}
