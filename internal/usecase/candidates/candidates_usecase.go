package candidates

import (
	"context"
	"fmt"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
	"github.com/KaiMitchell/ssbackendreg/internal/repository"
)

// UseCase produces the candidate views for a viewer: who they could learn
// from and who they could teach. Eligibility filtering and priority-skill
// enrichment happen here, on top of plain repository reads.
type UseCase struct {
	userRepo      repository.UserRepository
	candidateRepo repository.CandidateRepository
	relRepo       repository.RelationshipRepository
}

func NewUseCase(
	userRepo repository.UserRepository,
	candidateRepo repository.CandidateRepository,
	relRepo repository.RelationshipRepository,
) *UseCase {
	return &UseCase{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		relRepo:       relRepo,
	}
}

// BrowseResponse carries both candidate views. TeachProfiles are users
// teaching something (the viewer could learn from them), LearnProfiles are
// users wanting to learn something (the viewer could teach them).
type BrowseResponse struct {
	TeachProfiles []domain.Candidate `json:"teachProfiles"`
	LearnProfiles []domain.Candidate `json:"learnProfiles"`
}

// Filters narrows a filtered candidate view. Skill, Category and
// PreferredGender are exact-match predicates; ViewerGender and MeetUp are
// opaque pass-throughs that only influence response wording, never the query.
type Filters struct {
	Skill           string
	Category        string
	PreferredGender string
	ViewerGender    string
	MeetUp          bool
}

// FilteredResponse is one eligibility-aware candidate view. Reason is set
// only when Profiles is empty and distinguishes "nothing matched this
// skill/category" from "no candidates at all".
type FilteredResponse struct {
	Profiles []domain.Candidate `json:"profiles"`
	Reason   string             `json:"reason,omitempty"`
}

// QuickFilterResponse carries both directions of the unfiltered
// catalog-browsing view.
type QuickFilterResponse struct {
	TeachProfiles []domain.QuickProfile `json:"teachProfiles"`
	LearnProfiles []domain.QuickProfile `json:"learnProfiles"`
	Message       string                `json:"message,omitempty"`
}

// Browse returns both candidate views for the viewer, eligibility filtered
// and priority enriched, each ordered by username.
func (uc *UseCase) Browse(ctx context.Context, viewer string) (*BrowseResponse, error) {
	viewerUser, err := uc.userRepo.GetByUsername(ctx, viewer)
	if err != nil {
		return nil, err
	}
	related, err := uc.relRepo.RelatedUserIDs(ctx, viewerUser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load related users: %w", err)
	}

	teach, err := uc.facetView(ctx, viewerUser.ID, related, domain.FacetTeach, repository.CandidateFilters{})
	if err != nil {
		return nil, err
	}
	learn, err := uc.facetView(ctx, viewerUser.ID, related, domain.FacetLearn, repository.CandidateFilters{})
	if err != nil {
		return nil, err
	}

	return &BrowseResponse{TeachProfiles: teach, LearnProfiles: learn}, nil
}

// Filtered returns one eligibility-aware view narrowed by the given filters.
// An empty result is not an error; the reason string tells the caller which
// kind of empty it was.
func (uc *UseCase) Filtered(ctx context.Context, viewer string, facet domain.Facet, filters Filters) (*FilteredResponse, error) {
	if !facet.Valid() {
		return nil, domain.NewValidationError("unknown facet %q", facet)
	}
	viewerUser, err := uc.userRepo.GetByUsername(ctx, viewer)
	if err != nil {
		return nil, err
	}
	related, err := uc.relRepo.RelatedUserIDs(ctx, viewerUser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load related users: %w", err)
	}

	repoFilters := repository.CandidateFilters{
		Skill:    filters.Skill,
		Category: filters.Category,
		Gender:   filters.PreferredGender,
	}
	profiles, err := uc.facetView(ctx, viewerUser.ID, related, facet, repoFilters)
	if err != nil {
		return nil, err
	}

	resp := &FilteredResponse{Profiles: profiles}
	if len(profiles) == 0 {
		resp.Reason = emptyReason(facet, filters)
	}
	return resp, nil
}

// QuickFilter is the catalog-browsing path: both directions for one skill or
// category, with no eligibility filtering. At least one of skill or category
// is required; skill wins when both are given.
func (uc *UseCase) QuickFilter(ctx context.Context, skill, category string) (*QuickFilterResponse, error) {
	if skill == "" && category == "" {
		return nil, domain.NewValidationError("a skill or category is required")
	}

	teach, err := uc.candidateRepo.QuickFilter(ctx, domain.FacetTeach, skill, category)
	if err != nil {
		return nil, fmt.Errorf("failed to quick-filter teaching profiles: %w", err)
	}
	learn, err := uc.candidateRepo.QuickFilter(ctx, domain.FacetLearn, skill, category)
	if err != nil {
		return nil, fmt.Errorf("failed to quick-filter learning profiles: %w", err)
	}

	resp := &QuickFilterResponse{
		TeachProfiles: teach,
		LearnProfiles: learn,
	}
	if len(teach) == 0 && len(learn) == 0 {
		resp.Message = "no matches found"
	}
	return resp, nil
}

// facetView is the shared query pipeline: list candidates for a facet, drop
// ineligible ones, then attach priority skills in a second pass.
func (uc *UseCase) facetView(ctx context.Context, viewerID int, related map[int]struct{}, facet domain.Facet, filters repository.CandidateFilters) ([]domain.Candidate, error) {
	rows, err := uc.candidateRepo.ListCandidates(ctx, facet, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s candidates: %w", facet, err)
	}
	eligible := filterEligible(viewerID, related, rows)
	if len(eligible) == 0 {
		return eligible, nil
	}

	priorities, err := uc.candidateRepo.ListPrioritySkills(ctx, facet)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s priority skills: %w", facet, err)
	}
	attachPriorities(eligible, priorities)
	return eligible, nil
}

// emptyReason distinguishes the two empty-result cases: a skill or category
// filter that matched nobody names the filter; otherwise there were simply no
// candidates.
func emptyReason(facet domain.Facet, filters Filters) string {
	subject := filters.Skill
	if subject == "" {
		subject = filters.Category
	}
	if subject == "" {
		return "no results"
	}
	if facet == domain.FacetLearn {
		return fmt.Sprintf("no profiles want to learn %s", subject)
	}
	return fmt.Sprintf("no profiles teaching %s", subject)
}
