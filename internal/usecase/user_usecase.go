package usecase

import (
	"context"

	"github.com/google/uuid"

	"collabwish/internal/domain/entity"
	"collabwish/internal/domain/repository"
	"collabwish/pkg/errors"
	"collabwish/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type RegisterUserInput struct {
	Name     string
	Email    string
	ImageURL string
}

// RegisterUser lazily upserts the backend record on first contact from
// the front end. The identity provider owns sign-in; all we keep is a
// document keyed by email. Returns created=false with the existing
// record when the email is already registered.
func (uc *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, bool, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errors.CodeNotFound) {
		return nil, false, err
	}

	user := &entity.User{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		ImageURL:    input.ImageURL,
		Wishlist:    []entity.Wishlist{},
		HasAccessTo: []entity.AccessGrant{},
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, false, err
	}

	logger.Info("Registered user %s (%s)", user.ID, user.Email)
	return user, true, nil
}

func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}
