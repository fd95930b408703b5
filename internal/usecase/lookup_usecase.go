package usecase

import (
	"context"

	"patronpoint/internal/domain/entity"
	"patronpoint/internal/domain/repository"
	"patronpoint/internal/domain/scoring"
	"patronpoint/pkg/errors"
	"patronpoint/pkg/phone"
)

type LookupUseCase struct {
	reportRepo repository.ReportRepository
}

func NewLookupUseCase(reportRepo repository.ReportRepository) *LookupUseCase {
	return &LookupUseCase{
		reportRepo: reportRepo,
	}
}

// CustomerLookup is the aggregate view for one searched phone key. The
// customer has no stored record of its own; everything here is derived from
// the matching reports at query time.
type CustomerLookup struct {
	Phone   string           `json:"phone"`
	Summary scoring.Summary  `json:"summary"`
	Reports []*entity.Report `json:"reports"`
}

// SearchCustomer matches reports whose normalized phone contains the
// normalized query (any length, unlike the strict submission rule) and
// aggregates them into a fresh score.
func (uc *LookupUseCase) SearchCustomer(ctx context.Context, rawPhone string) (*CustomerLookup, error) {
	normalized := phone.Normalize(rawPhone)
	if normalized == "" {
		return nil, errors.BadRequest("Search input must contain at least one digit", nil)
	}

	reports, err := uc.reportRepo.FindByPhoneSubstring(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return &CustomerLookup{
		Phone:   normalized,
		Summary: scoring.Aggregate(reports),
		Reports: reports,
	}, nil
}
