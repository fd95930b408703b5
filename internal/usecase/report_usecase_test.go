package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"patronpoint/internal/domain/entity"
	"patronpoint/internal/domain/scoring"
	"patronpoint/pkg/errors"
)

func TestSubmitReportHappyPath(t *testing.T) {
	reportRepo := &fakeReportRepo{}
	businessRepo := newFakeBusinessRepo()
	businessRepo.Create(context.Background(), &entity.Business{ID: "biz-1"})

	uc := NewReportUseCase(reportRepo, businessRepo)

	report, err := uc.Submit(context.Background(), "biz-1", SubmitReportInput{
		CustomerPhone: "(555) 123-4567",
		ReportType:    entity.ReportTypeNegative,
		Reason:        "noShow",
	})

	assert.NoError(t, err)
	assert.Equal(t, "5551234567", report.CustomerPhone)
	assert.Equal(t, -18, report.Points)
	assert.Equal(t, "noShow", report.Reason)
	assert.False(t, report.Timestamp.IsZero())
	assert.Equal(t, 1, reportRepo.createLog)
	assert.Equal(t, 1, businessRepo.increments["biz-1"])
}

func TestSubmitReportRejectsBadPhone(t *testing.T) {
	reportRepo := &fakeReportRepo{}
	uc := NewReportUseCase(reportRepo, newFakeBusinessRepo())

	_, err := uc.Submit(context.Background(), "biz-1", SubmitReportInput{
		CustomerPhone: "555-1234", // 7 digits
		ReportType:    entity.ReportTypeNegative,
		Reason:        "noShow",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Zero(t, reportRepo.createLog, "validation must run before any store write")
}

func TestSubmitReportRejectsUnknownReason(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, newFakeBusinessRepo())

	_, err := uc.Submit(context.Background(), "biz-1", SubmitReportInput{
		CustomerPhone: "5551234567",
		ReportType:    entity.ReportTypeNegative,
		Reason:        "ghostedMe",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitReportRejectsTypeReasonMismatch(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, newFakeBusinessRepo())

	// "tipsWell" is a positive reason filed under a negative type
	_, err := uc.Submit(context.Background(), "biz-1", SubmitReportInput{
		CustomerPhone: "5551234567",
		ReportType:    entity.ReportTypeNegative,
		Reason:        "tipsWell",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitReportCooldownRejection(t *testing.T) {
	reportRepo := &fakeReportRepo{}
	businessRepo := newFakeBusinessRepo()
	uc := NewReportUseCase(reportRepo, businessRepo)

	first := &entity.Report{
		BusinessID:    "biz-1",
		CustomerPhone: "5551234567",
		ReportType:    entity.ReportTypeNegative,
		Reason:        "noShow",
		Points:        -18,
		Timestamp:     time.Now().Add(-10 * 24 * time.Hour),
	}
	reportRepo.reports = append(reportRepo.reports, first)

	_, err := uc.Submit(context.Background(), "biz-1", SubmitReportInput{
		CustomerPhone: "5551234567",
		ReportType:    entity.ReportTypePositive,
		Reason:        "tipsWell",
	})

	assert.True(t, errors.Is(err, "COOLDOWN_ACTIVE"))
	assert.Zero(t, reportRepo.createLog)

	// A different business is not blocked for the same customer
	_, err = uc.Submit(context.Background(), "biz-2", SubmitReportInput{
		CustomerPhone: "5551234567",
		ReportType:    entity.ReportTypePositive,
		Reason:        "tipsWell",
	})
	assert.NoError(t, err)

	// And the same business is not blocked for a different customer
	_, err = uc.Submit(context.Background(), "biz-1", SubmitReportInput{
		CustomerPhone: "5559876543",
		ReportType:    entity.ReportTypePositive,
		Reason:        "tipsWell",
	})
	assert.NoError(t, err)
}

func TestSubmitReportAllowedAfterWindow(t *testing.T) {
	reportRepo := &fakeReportRepo{}
	uc := NewReportUseCase(reportRepo, newFakeBusinessRepo())

	reportRepo.reports = append(reportRepo.reports, &entity.Report{
		BusinessID:    "biz-1",
		CustomerPhone: "5551234567",
		Reason:        "noShow",
		Points:        -18,
		Timestamp:     time.Now().Add(-scoring.CooldownWindow - time.Hour),
	})

	_, err := uc.Submit(context.Background(), "biz-1", SubmitReportInput{
		CustomerPhone: "5551234567",
		ReportType:    entity.ReportTypeNegative,
		Reason:        "didNotPay",
	})

	assert.NoError(t, err)
}

func TestCheckCooldownReportsNextAvailable(t *testing.T) {
	reportRepo := &fakeReportRepo{}
	uc := NewReportUseCase(reportRepo, newFakeBusinessRepo())

	ts := time.Now().Add(-24 * time.Hour)
	reportRepo.reports = append(reportRepo.reports, &entity.Report{
		BusinessID:    "biz-1",
		CustomerPhone: "5551234567",
		Reason:        "noShow",
		Points:        -18,
		Timestamp:     ts,
	})

	status, err := uc.CheckCooldown(context.Background(), "biz-1", "(555) 123-4567")

	assert.NoError(t, err)
	assert.False(t, status.Allowed)
	if assert.NotNil(t, status.NextAvailableAt) {
		assert.True(t, status.NextAvailableAt.Equal(ts.Add(scoring.CooldownWindow)))
	}
}

func TestCatalogMatchesCanonicalPoints(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, newFakeBusinessRepo())

	points := map[string]int{}
	for _, reason := range uc.Catalog() {
		points[reason.Code] = reason.Points
	}

	assert.Equal(t, map[string]int{
		"tipsWell":           12,
		"veryResponsive":     3,
		"goodConversation":   5,
		"leftPositiveReview": 15,
		"gaveReferral":       21,
		"didNotPay":          -21,
		"poorCommunication":  -3,
		"showedUpLate":       -12,
		"unfriendlyRude":     -10,
		"noShow":             -18,
	}, points)
}
