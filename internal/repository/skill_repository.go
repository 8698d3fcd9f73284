package repository

import (
	"context"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
)

type SkillRepository interface {
	// ListCatalog returns every skill grouped by category, categories and
	// skills both sorted alphabetically.
	ListCatalog(ctx context.Context) ([]domain.CategorySkills, error)
	GetByName(ctx context.Context, name string) (*domain.Skill, error)
	// ListUserSkillsByCategory returns the user's declared skills for one
	// facet, grouped by category.
	ListUserSkillsByCategory(ctx context.Context, userID int, facet domain.Facet) ([]domain.CategorySkills, error)
	// ListUserSkillNames returns the flat, sorted skill names the user
	// declared under one facet.
	ListUserSkillNames(ctx context.Context, userID int, facet domain.Facet) ([]string, error)
	// GetPrioritySkill returns the user's priority skill name for a facet,
	// or nil when none is set.
	GetPrioritySkill(ctx context.Context, userID int, facet domain.Facet) (*string, error)
	// DeclareSkills inserts declaration rows for one facet and, when
	// priorityID is non-nil, moves the facet's priority flag to that skill.
	// Re-declaring an existing skill is a no-op. The whole call is one
	// transaction.
	DeclareSkills(ctx context.Context, userID int, facet domain.Facet, skillIDs []int, priorityID *int) error
}
