package usecase

import (
	"context"
	"sort"
	"strings"

	"patronpoint/internal/domain/entity"
	"patronpoint/pkg/errors"
	"patronpoint/pkg/phone"
)

// In-memory stand-ins for the Firestore repositories, honoring the same
// matching contracts (substring for search, exact for cooldown).

type fakeReportRepo struct {
	reports   []*entity.Report
	createErr error
	createLog int
}

func (f *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createLog++
	if report.ID == "" {
		report.ID = "report-fake"
	}
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeReportRepo) FindByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Report, int64, error) {
	var matched []*entity.Report
	for _, r := range f.reports {
		if r.BusinessID == businessID {
			matched = append(matched, r)
		}
	}
	total := int64(len(matched))
	if offset > 0 && offset < len(matched) {
		matched = matched[offset:]
	} else if offset >= len(matched) {
		matched = nil
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (f *fakeReportRepo) FindByPhoneSubstring(ctx context.Context, normalizedPhone string) ([]*entity.Report, error) {
	var matched []*entity.Report
	for _, r := range f.reports {
		if strings.Contains(phone.Normalize(r.CustomerPhone), normalizedPhone) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeReportRepo) FindByBusinessAndPhone(ctx context.Context, businessID, normalizedPhone string) ([]*entity.Report, error) {
	var matched []*entity.Report
	for _, r := range f.reports {
		if r.BusinessID == businessID && r.CustomerPhone == normalizedPhone {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeReportRepo) ListenByBusiness(ctx context.Context, businessID string) (<-chan []*entity.Report, error) {
	updates := make(chan []*entity.Report)
	close(updates)
	return updates, nil
}

type fakeBusinessRepo struct {
	businesses    map[string]*entity.Business
	increments    map[string]int
	getByEmailErr error
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{
		businesses: map[string]*entity.Business{},
		increments: map[string]int{},
	}
}

func (f *fakeBusinessRepo) Create(ctx context.Context, business *entity.Business) error {
	f.businesses[business.ID] = business
	return nil
}

func (f *fakeBusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	business, ok := f.businesses[id]
	if !ok {
		return nil, errors.NotFound("Business", nil)
	}
	return business, nil
}

func (f *fakeBusinessRepo) GetByEmail(ctx context.Context, email string) (*entity.Business, error) {
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	for _, business := range f.businesses {
		if business.Email == email {
			return business, nil
		}
	}
	return nil, errors.NotFound("Business", nil)
}

func (f *fakeBusinessRepo) Save(ctx context.Context, business *entity.Business) error {
	f.businesses[business.ID] = business
	return nil
}

func (f *fakeBusinessRepo) IncrementReportCount(ctx context.Context, id string) error {
	f.increments[id]++
	if business, ok := f.businesses[id]; ok {
		business.ReportsSubmitted++
	}
	return nil
}

func (f *fakeBusinessRepo) TopByReports(ctx context.Context, limit int) ([]*entity.Business, error) {
	var all []*entity.Business
	for _, business := range f.businesses {
		all = append(all, business)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].ReportsSubmitted != all[j].ReportsSubmitted {
			return all[i].ReportsSubmitted > all[j].ReportsSubmitted
		}
		return all[i].ID < all[j].ID
	})
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeBusinessRepo) ListenTopByReports(ctx context.Context, limit int) (<-chan []*entity.Business, error) {
	updates := make(chan []*entity.Business)
	close(updates)
	return updates, nil
}

type fakeAuthClient struct {
	nextUID   string
	created   map[string]string // uid -> email
	deleted   []string
	signInErr error
	createErr error
}

func newFakeAuthClient(uid string) *fakeAuthClient {
	return &fakeAuthClient{
		nextUID: uid,
		created: map[string]string{},
	}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created[f.nextUID] = email
	return f.nextUID, nil
}

func (f *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	return nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return f.nextUID, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return "id-token", nil
}
