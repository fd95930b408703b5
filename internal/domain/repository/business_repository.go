package repository

import (
	"context"

	"patronpoint/internal/domain/entity"
)

type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	GetByEmail(ctx context.Context, email string) (*entity.Business, error)
	// Save upserts the mutable contact fields, last-write-wins.
	Save(ctx context.Context, business *entity.Business) error
	IncrementReportCount(ctx context.Context, id string) error
	// TopByReports returns businesses ordered by reportsSubmitted descending.
	TopByReports(ctx context.Context, limit int) ([]*entity.Business, error)
	// ListenTopByReports pushes the reordered list on every store change
	// until ctx is cancelled.
	ListenTopByReports(ctx context.Context, limit int) (<-chan []*entity.Business, error)
}
