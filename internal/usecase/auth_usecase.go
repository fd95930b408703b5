package usecase

import (
	"context"
	"time"

	"patronpoint/internal/domain/entity"
	"patronpoint/internal/domain/repository"
	"patronpoint/pkg/errors"
	"patronpoint/pkg/logger"
	"patronpoint/pkg/phone"
)

type AuthUseCase struct {
	businessRepo repository.BusinessRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(businessRepo repository.BusinessRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		businessRepo: businessRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email           string
	Password        string
	BusinessName    string
	BusinessWebsite string
	BusinessPhone   string
}

type AuthResult struct {
	Business *entity.Business
	Token    string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Check if email already exists; only a confirmed absence may proceed
	existing, err := uc.businessRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, errors.Internal("Failed to check email availability", err)
	}
	if existing != nil {
		return nil, errors.Conflict("Email already in use")
	}

	contactPhone, err := phone.FormatBusinessContact(input.BusinessPhone, "US")
	if err != nil {
		return nil, errors.BadRequest("Invalid business phone number", err)
	}

	// Create user in Firebase Auth
	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.BusinessName)
	if err != nil {
		return nil, errors.Internal("Failed to create account with authentication provider", err)
	}

	now := time.Now()
	business := &entity.Business{
		ID:              uid,
		Email:           input.Email,
		BusinessName:    input.BusinessName,
		BusinessWebsite: input.BusinessWebsite,
		BusinessPhone:   contactPhone,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.businessRepo.Create(ctx, business); err != nil {
		// Roll back the auth account so the email is not orphaned
		if delErr := uc.firebaseAuth.DeleteUser(ctx, uid); delErr != nil {
			logger.Error("Failed to clean up auth account %s: %v", uid, delErr)
		}
		return nil, errors.Internal("Failed to create business profile", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		Business: business,
		Token:    token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	business, err := uc.businessRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("Business", err)
	}

	return &AuthResult{
		Business: business,
		Token:    token,
	}, nil
}

func (uc *AuthUseCase) GetBusinessByID(ctx context.Context, id string) (*entity.Business, error) {
	business, err := uc.businessRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Business", err)
	}
	return business, nil
}
