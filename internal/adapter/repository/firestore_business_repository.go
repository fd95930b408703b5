package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"patronpoint/internal/domain/entity"
	"patronpoint/internal/domain/repository"
	"patronpoint/pkg/errors"
	"patronpoint/pkg/logger"
)

type firestoreBusinessRepository struct {
	client *firestore.Client
}

func NewFirestoreBusinessRepository(client *firestore.Client) repository.BusinessRepository {
	return &firestoreBusinessRepository{
		client: client,
	}
}

func (r *firestoreBusinessRepository) Create(ctx context.Context, business *entity.Business) error {
	_, err := r.client.Collection("users").Doc(business.ID).Set(ctx, business)
	if err != nil {
		return errors.Internal("Failed to create business profile", err)
	}
	return nil
}

func (r *firestoreBusinessRepository) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Business", err)
		}
		return nil, errors.Internal("Failed to get business profile", err)
	}

	var business entity.Business
	if err := doc.DataTo(&business); err != nil {
		return nil, errors.Internal("Failed to parse business data", err)
	}

	return &business, nil
}

func (r *firestoreBusinessRepository) GetByEmail(ctx context.Context, email string) (*entity.Business, error) {
	query := r.client.Collection("users").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Business", nil)
		}
		return nil, errors.Internal("Failed to query business by email", err)
	}

	var business entity.Business
	if err := doc.DataTo(&business); err != nil {
		return nil, errors.Internal("Failed to parse business data", err)
	}

	return &business, nil
}

func (r *firestoreBusinessRepository) Save(ctx context.Context, business *entity.Business) error {
	// Only the contact fields are mutable; the profile is overwritten
	// last-write-wins with no versioning.
	updateData := map[string]interface{}{
		"businessName":    business.BusinessName,
		"businessWebsite": business.BusinessWebsite,
		"businessPhone":   business.BusinessPhone,
		"updatedAt":       time.Now(),
	}

	_, err := r.client.Collection("users").Doc(business.ID).Set(ctx, updateData, firestore.MergeAll)
	if err != nil {
		logger.LogStoreError("saveProfile", business.ID, err)
		return errors.Internal("Failed to save business profile", err)
	}
	return nil
}

func (r *firestoreBusinessRepository) IncrementReportCount(ctx context.Context, id string) error {
	_, err := r.client.Collection("users").Doc(id).Update(ctx, []firestore.Update{
		{Path: "reportsSubmitted", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to update submission counter", err)
	}
	return nil
}

func (r *firestoreBusinessRepository) TopByReports(ctx context.Context, limit int) ([]*entity.Business, error) {
	query := r.client.Collection("users").OrderBy("reportsSubmitted", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	businesses, err := collectBusinesses(iter)
	if err != nil {
		return nil, errors.Internal("Failed to query leaderboard", err)
	}
	return businesses, nil
}

func (r *firestoreBusinessRepository) ListenTopByReports(ctx context.Context, limit int) (<-chan []*entity.Business, error) {
	query := r.client.Collection("users").OrderBy("reportsSubmitted", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	updates := make(chan []*entity.Business)

	go func() {
		defer close(updates)

		snapIter := query.Snapshots(ctx)
		defer snapIter.Stop()

		for {
			snap, err := snapIter.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("Leaderboard listener stopped: %v", err)
				}
				return
			}

			businesses, err := collectBusinesses(snap.Documents)
			if err != nil {
				logger.Error("Failed to read leaderboard snapshot: %v", err)
				continue
			}

			select {
			case updates <- businesses:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

func collectBusinesses(iter *firestore.DocumentIterator) ([]*entity.Business, error) {
	var businesses []*entity.Business
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var business entity.Business
		if err := doc.DataTo(&business); err != nil {
			return nil, err
		}
		businesses = append(businesses, &business)
	}
	return businesses, nil
}
