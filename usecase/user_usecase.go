package usecase

import (
	"context"
	"time"

	"github.com/echosphere/echosphere-backend/domain"
)

type userUsecase struct {
	userRepo domain.UserRepository
	timeout  time.Duration
}

func NewUserUsecase(userRepo domain.UserRepository, timeout time.Duration) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		timeout:  timeout,
	}
}

// SyncFromProvider persists the caller's provider profile after a
// successful sign-in. Idempotent: replays update the same document.
func (uc *userUsecase) SyncFromProvider(ctx context.Context, externalID, fullName, imageURL string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user := &domain.User{
		ExternalID: externalID,
		FullName:   fullName,
		ImageURL:   imageURL,
	}
	if err := user.Validate(); err != nil {
		return err
	}
	return uc.userRepo.Upsert(ctx, user)
}

func (uc *userUsecase) ListOthers(ctx context.Context, callerExternalID string) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.userRepo.GetAllExcept(ctx, callerExternalID)
}
