package repository

import (
	"context"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateDescription(ctx context.Context, username, description string) error
}
