package repository

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"patronpoint/internal/domain/entity"
	"patronpoint/internal/domain/repository"
	"patronpoint/pkg/errors"
	"patronpoint/pkg/logger"
	"patronpoint/pkg/phone"

	"github.com/google/uuid"
)

type firestoreReportRepository struct {
	client *firestore.Client
}

func NewFirestoreReportRepository(client *firestore.Client) repository.ReportRepository {
	return &firestoreReportRepository{
		client: client,
	}
}

func (r *firestoreReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	_, err := r.client.Collection("reports").Doc(report.ID).Set(ctx, report)
	if err != nil {
		return errors.Internal("Failed to create report", err)
	}

	return nil
}

func (r *firestoreReportRepository) FindByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Report, int64, error) {
	query := r.client.Collection("reports").Where("businessId", "==", businessID)

	// Get total count
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to query reports", err)
	}
	total := int64(len(countDocs))

	// Apply pagination
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	reports, err := collectReports(query.Documents(ctx))
	if err != nil {
		return nil, 0, errors.Internal("Failed to parse reports", err)
	}

	return reports, total, nil
}

// Bounds for the candidate fetch in FindByPhoneSubstring. Stored keys are
// compared lexicographically as UTF-8 strings; "\uf8ff" sorts above every
// digit key, so the range admits all stored phone numbers.
const (
	phoneKeyRangeStart = ""
	phoneKeyRangeEnd   = "\uf8ff"
)

// FindByPhoneSubstring fetches a broad candidate range and applies the
// substring containment filter client-side; the store only supports
// prefix/range filtering natively. Acceptable while report volume stays
// small.
func (r *firestoreReportRepository) FindByPhoneSubstring(ctx context.Context, normalizedPhone string) ([]*entity.Report, error) {
	query := r.client.Collection("reports").
		Where("customerPhone", ">=", phoneKeyRangeStart).
		Where("customerPhone", "<=", phoneKeyRangeEnd)

	candidates, err := collectReports(query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to query reports", err)
	}

	return matchPhoneSubstring(candidates, normalizedPhone), nil
}

func matchPhoneSubstring(candidates []*entity.Report, normalizedPhone string) []*entity.Report {
	var matched []*entity.Report
	for _, report := range candidates {
		if strings.Contains(phone.Normalize(report.CustomerPhone), normalizedPhone) {
			matched = append(matched, report)
		}
	}
	return matched
}

func (r *firestoreReportRepository) FindByBusinessAndPhone(ctx context.Context, businessID, normalizedPhone string) ([]*entity.Report, error) {
	query := r.client.Collection("reports").
		Where("businessId", "==", businessID).
		Where("customerPhone", "==", normalizedPhone)

	reports, err := collectReports(query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to query reports", err)
	}

	return reports, nil
}

func (r *firestoreReportRepository) ListenByBusiness(ctx context.Context, businessID string) (<-chan []*entity.Report, error) {
	query := r.client.Collection("reports").Where("businessId", "==", businessID)

	updates := make(chan []*entity.Report)

	go func() {
		defer close(updates)

		snapIter := query.Snapshots(ctx)
		defer snapIter.Stop()

		for {
			snap, err := snapIter.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("Report listener stopped for business %s: %v", businessID, err)
				}
				return
			}

			reports, err := collectReports(snap.Documents)
			if err != nil {
				logger.Error("Failed to read report snapshot: %v", err)
				continue
			}

			select {
			case updates <- reports:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

func collectReports(iter *firestore.DocumentIterator) ([]*entity.Report, error) {
	var reports []*entity.Report
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, err
		}
		reports = append(reports, &report)
	}
	return reports, nil
}
