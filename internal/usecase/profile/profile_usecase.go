package profile

import (
	"context"

	"github.com/KaiMitchell/ssbackendreg/internal/repository"
)

type UseCase struct {
	userRepo repository.UserRepository
}

func NewUseCase(userRepo repository.UserRepository) *UseCase {
	return &UseCase{userRepo: userRepo}
}

// UpdateDescriptionRequest updates a user's profile description.
type UpdateDescriptionRequest struct {
	Description string `json:"description" binding:"required,max=1000"`
}

func (uc *UseCase) UpdateDescription(ctx context.Context, username, description string) error {
	return uc.userRepo.UpdateDescription(ctx, username, description)
}
