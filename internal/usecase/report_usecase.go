package usecase

import (
	"context"
	"time"

	"patronpoint/internal/domain/entity"
	"patronpoint/internal/domain/repository"
	"patronpoint/internal/domain/scoring"
	"patronpoint/pkg/errors"
	"patronpoint/pkg/logger"
	"patronpoint/pkg/phone"
)

type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	businessRepo repository.BusinessRepository
}

func NewReportUseCase(reportRepo repository.ReportRepository, businessRepo repository.BusinessRepository) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:   reportRepo,
		businessRepo: businessRepo,
	}
}

type SubmitReportInput struct {
	CustomerPhone string
	ReportType    string
	Reason        string
}

// Submit validates and persists a new report for the calling business.
// Validation runs fully before any store access; the cooldown check runs
// fully before the write. There is no transaction around check-then-write,
// so concurrent submissions can still slip through the window.
func (uc *ReportUseCase) Submit(ctx context.Context, businessID string, input SubmitReportInput) (*entity.Report, error) {
	if !phone.ValidSubmission(input.CustomerPhone) {
		return nil, errors.BadRequest("Customer phone must contain exactly 10 digits", nil)
	}

	reason, ok := entity.LookupReason(input.Reason)
	if !ok {
		return nil, errors.BadRequest("Unknown report reason", nil)
	}
	if reason.Type != input.ReportType {
		return nil, errors.BadRequest("Report type does not match the selected reason", nil)
	}

	normalized := phone.Normalize(input.CustomerPhone)
	now := time.Now()

	prior, err := uc.reportRepo.FindByBusinessAndPhone(ctx, businessID, normalized)
	if err != nil {
		return nil, err
	}

	status := scoring.EvaluateCooldown(prior, now)
	if !status.Allowed {
		return nil, errors.CooldownActive(
			"You already reported this customer within the last 30 days",
			map[string]interface{}{"next_available_at": status.NextAvailableAt},
		)
	}

	report := &entity.Report{
		BusinessID:    businessID,
		CustomerPhone: normalized,
		ReportType:    input.ReportType,
		Reason:        reason.Code,
		Points:        reason.Points,
		Timestamp:     now,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	// The submission counter feeds the leaderboard only; a failed increment
	// must not fail a persisted report.
	if err := uc.businessRepo.IncrementReportCount(ctx, businessID); err != nil {
		logger.LogStoreError("incrementReportCount", businessID, err)
	}

	return report, nil
}

// CheckCooldown lets the dashboard pre-check eligibility before showing the
// submission form. Same exact-match record set as Submit uses.
func (uc *ReportUseCase) CheckCooldown(ctx context.Context, businessID, customerPhone string) (scoring.CooldownStatus, error) {
	if !phone.ValidSubmission(customerPhone) {
		return scoring.CooldownStatus{}, errors.BadRequest("Customer phone must contain exactly 10 digits", nil)
	}

	normalized := phone.Normalize(customerPhone)

	prior, err := uc.reportRepo.FindByBusinessAndPhone(ctx, businessID, normalized)
	if err != nil {
		return scoring.CooldownStatus{}, err
	}

	return scoring.EvaluateCooldown(prior, time.Now()), nil
}

func (uc *ReportUseCase) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Report, int64, error) {
	return uc.reportRepo.FindByBusiness(ctx, businessID, limit, offset)
}

// Catalog exposes the reason catalog to the submission form.
func (uc *ReportUseCase) Catalog() []entity.Reason {
	return entity.ReasonCatalog()
}

// StreamByBusiness delivers the business's full report list on every store
// change. The subscription lives until ctx is cancelled; consumers replace
// their displayed list wholesale on each update.
func (uc *ReportUseCase) StreamByBusiness(ctx context.Context, businessID string) (<-chan []*entity.Report, error) {
	return uc.reportRepo.ListenByBusiness(ctx, businessID)
}
