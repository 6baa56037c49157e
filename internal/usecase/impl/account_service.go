// Package impl contains the concrete usecase services. Identity uniqueness,
// order/payment atomicity and the one-way status machines are enforced here
// and in the entities, never in the delivery layer.
package impl

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
)

type accountService struct {
	userRepo repository.UserRepository
	tokenSvc service.TokenService
}

// NewAccountService creates a new account service instance.
func NewAccountService(userRepo repository.UserRepository, tokenSvc service.TokenService) usecase.AccountUsecase {
	return &accountService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

// Register creates a new account. The repository enforces the email/phone
// uniqueness invariant and reports a collision as DuplicateIdentity.
func (s *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role.String())
	}

	user := &entity.User{
		ID:        uuid.New(),
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  input.Password,
		Role:      input.Role,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return &usecase.RegisterOutput{User: user}, nil
}

// Login matches an account whose email or phone equals the identifier and
// whose password equals the supplied password exactly. Comparison is
// verbatim; the marketplace stores passwords as given.
func (s *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := s.userRepo.FindByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by identifier")
	}

	if user.Password != input.Password {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenSvc.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Profile retrieves an account by ID.
func (s *accountService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
