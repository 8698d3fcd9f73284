package repository

import (
	"context"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
)

// CandidateFilters narrows a candidate listing. Zero values mean "no filter";
// all set filters are AND-combined exact matches.
type CandidateFilters struct {
	Skill    string
	Category string
	Gender   string
}

type CandidateRepository interface {
	// ListCandidates returns every user with at least one declaration under
	// the facet, each with the deduplicated skill names they declared,
	// ordered by username. No eligibility filtering happens here.
	ListCandidates(ctx context.Context, facet domain.Facet, filters CandidateFilters) ([]domain.Candidate, error)
	// ListPrioritySkills returns username -> priority skill name for every
	// user that has a priority set for the facet.
	ListPrioritySkills(ctx context.Context, facet domain.Facet) (map[string]string, error)
	// QuickFilter returns (username, skill) rows for one facet matched by
	// exact skill name or category name.
	QuickFilter(ctx context.Context, facet domain.Facet, skill, category string) ([]domain.QuickProfile, error)
}
