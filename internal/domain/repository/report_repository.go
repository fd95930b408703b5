package repository

import (
	"context"

	"patronpoint/internal/domain/entity"
)

// ReportRepository is the lookup query surface over the "reports"
// collection. Reports are append-only; there is no update or delete.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	// FindByBusiness returns a business's own submission history.
	FindByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Report, int64, error)
	// FindByPhoneSubstring matches stored customer phones whose normalized
	// form contains the given digits. Used by customer lookup.
	FindByPhoneSubstring(ctx context.Context, normalizedPhone string) ([]*entity.Report, error)
	// FindByBusinessAndPhone is an exact match on both fields, used only by
	// the cooldown check. Deliberately stricter than the search path.
	FindByBusinessAndPhone(ctx context.Context, businessID, normalizedPhone string) ([]*entity.Report, error)
	// ListenByBusiness pushes the full report list on every store change
	// until ctx is cancelled. Consumers replace their view wholesale.
	ListenByBusiness(ctx context.Context, businessID string) (<-chan []*entity.Report, error)
}
