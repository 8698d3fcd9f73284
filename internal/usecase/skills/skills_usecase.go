package skills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
	"github.com/KaiMitchell/ssbackendreg/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	catalogCacheKey = "skills:catalog"
	catalogCacheTTL = 10 * time.Minute
)

// UseCase covers the skill catalog and per-user skill declarations. The
// catalog is read-only from this service's perspective, so reads go through a
// redis cache that degrades to plain database reads on any cache failure.
type UseCase struct {
	skillRepo repository.SkillRepository
	userRepo  repository.UserRepository
	cache     *redis.Client
	log       *logrus.Logger
}

func NewUseCase(
	skillRepo repository.SkillRepository,
	userRepo repository.UserRepository,
	cache *redis.Client,
	log *logrus.Logger,
) *UseCase {
	return &UseCase{
		skillRepo: skillRepo,
		userRepo:  userRepo,
		cache:     cache,
		log:       log,
	}
}

// Catalog returns every skill grouped by category.
func (uc *UseCase) Catalog(ctx context.Context) ([]domain.CategorySkills, error) {
	if uc.cache != nil {
		data, err := uc.cache.Get(ctx, catalogCacheKey).Bytes()
		if err == nil {
			var catalog []domain.CategorySkills
			if err := json.Unmarshal(data, &catalog); err == nil {
				return catalog, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			uc.log.WithError(err).Warn("skill catalog cache read failed")
		}
	}

	catalog, err := uc.skillRepo.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill catalog: %w", err)
	}

	if uc.cache != nil && len(catalog) > 0 {
		if data, err := json.Marshal(catalog); err == nil {
			if err := uc.cache.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				uc.log.WithError(err).Warn("skill catalog cache write failed")
			}
		}
	}
	return catalog, nil
}

// UserSkillsResponse is a user's declared skills grouped by category for both
// facets, with the per-facet priority skill when one is set.
type UserSkillsResponse struct {
	ToTeach         []domain.CategorySkills `json:"toTeach"`
	ToLearn         []domain.CategorySkills `json:"toLearn"`
	ToTeachPriority *string                 `json:"toTeachPriority"`
	ToLearnPriority *string                 `json:"toLearnPriority"`
}

func (uc *UseCase) UserSkills(ctx context.Context, username string) (*UserSkillsResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	resp := &UserSkillsResponse{}
	if resp.ToTeach, err = uc.skillRepo.ListUserSkillsByCategory(ctx, user.ID, domain.FacetTeach); err != nil {
		return nil, fmt.Errorf("failed to list teaching skills: %w", err)
	}
	if resp.ToLearn, err = uc.skillRepo.ListUserSkillsByCategory(ctx, user.ID, domain.FacetLearn); err != nil {
		return nil, fmt.Errorf("failed to list learning skills: %w", err)
	}
	if resp.ToTeachPriority, err = uc.skillRepo.GetPrioritySkill(ctx, user.ID, domain.FacetTeach); err != nil {
		return nil, fmt.Errorf("failed to get teaching priority: %w", err)
	}
	if resp.ToLearnPriority, err = uc.skillRepo.GetPrioritySkill(ctx, user.ID, domain.FacetLearn); err != nil {
		return nil, fmt.Errorf("failed to get learning priority: %w", err)
	}
	return resp, nil
}

// FacetSkills is a flat skill list with an explicit has-skills flag so
// callers can render "no skills yet" without sentinel values.
type FacetSkills struct {
	Skills    []string `json:"skills"`
	HasSkills bool     `json:"isSkills"`
}

type ProfileSkillsResponse struct {
	ToTeach FacetSkills `json:"toTeach"`
	ToLearn FacetSkills `json:"toLearn"`
}

func (uc *UseCase) ProfileSkills(ctx context.Context, username string) (*ProfileSkillsResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	teach, err := uc.skillRepo.ListUserSkillNames(ctx, user.ID, domain.FacetTeach)
	if err != nil {
		return nil, fmt.Errorf("failed to list teaching skills: %w", err)
	}
	learn, err := uc.skillRepo.ListUserSkillNames(ctx, user.ID, domain.FacetLearn)
	if err != nil {
		return nil, fmt.Errorf("failed to list learning skills: %w", err)
	}

	return &ProfileSkillsResponse{
		ToTeach: FacetSkills{Skills: teach, HasSkills: len(teach) > 0},
		ToLearn: FacetSkills{Skills: learn, HasSkills: len(learn) > 0},
	}, nil
}

// DeclareRequest submits skill declarations for one or both facets, each with
// an optional priority skill for that facet.
type DeclareRequest struct {
	ToTeach         []string `json:"toTeach"`
	ToLearn         []string `json:"toLearn"`
	ToTeachPriority *string  `json:"toTeachPriority"`
	ToLearnPriority *string  `json:"toLearnPriority"`
}

type DeclareResponse struct {
	Message string   `json:"message"`
	ToTeach []string `json:"toTeach"`
	ToLearn []string `json:"toLearn"`
}

// Declare records the submitted declarations. Unknown skill names abort with
// a not-found error before any write; a priority skill that is neither in the
// submission nor already declared for its facet is rejected.
func (uc *UseCase) Declare(ctx context.Context, username string, req *DeclareRequest) (*DeclareResponse, error) {
	if len(req.ToTeach) == 0 && len(req.ToLearn) == 0 {
		return nil, domain.NewValidationError("no skills selected")
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := uc.declareFacet(ctx, user.ID, domain.FacetTeach, req.ToTeach, req.ToTeachPriority); err != nil {
		return nil, err
	}
	if err := uc.declareFacet(ctx, user.ID, domain.FacetLearn, req.ToLearn, req.ToLearnPriority); err != nil {
		return nil, err
	}

	return &DeclareResponse{
		Message: "skills updated",
		ToTeach: req.ToTeach,
		ToLearn: req.ToLearn,
	}, nil
}

func (uc *UseCase) declareFacet(ctx context.Context, userID int, facet domain.Facet, names []string, priority *string) error {
	if len(names) == 0 && priority == nil {
		return nil
	}

	if priority != nil {
		ok, err := uc.priorityDeclared(ctx, userID, facet, names, *priority)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError("priority skill %q is not among the declared %s skills", *priority, facet)
		}
	}

	skillIDs := make([]int, 0, len(names))
	var priorityID *int
	for _, name := range names {
		skill, err := uc.skillRepo.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrSkillNotFound) {
				return fmt.Errorf("%q: %w", name, domain.ErrSkillNotFound)
			}
			return fmt.Errorf("failed to resolve skill %q: %w", name, err)
		}
		skillIDs = append(skillIDs, skill.ID)
		if priority != nil && name == *priority {
			id := skill.ID
			priorityID = &id
		}
	}
	if priority != nil && priorityID == nil {
		// Priority references a previously declared skill, not part of this
		// submission.
		skill, err := uc.skillRepo.GetByName(ctx, *priority)
		if err != nil {
			return fmt.Errorf("%q: %w", *priority, domain.ErrSkillNotFound)
		}
		priorityID = &skill.ID
	}

	if err := uc.skillRepo.DeclareSkills(ctx, userID, facet, skillIDs, priorityID); err != nil {
		return fmt.Errorf("failed to declare %s skills: %w", facet, err)
	}
	return nil
}

// priorityDeclared checks the priority invariant: the skill must be part of
// this submission or already declared by the user under the facet.
func (uc *UseCase) priorityDeclared(ctx context.Context, userID int, facet domain.Facet, submitted []string, priority string) (bool, error) {
	for _, name := range submitted {
		if name == priority {
			return true, nil
		}
	}
	declared, err := uc.skillRepo.ListUserSkillNames(ctx, userID, facet)
	if err != nil {
		return false, fmt.Errorf("failed to list declared skills: %w", err)
	}
	for _, name := range declared {
		if name == priority {
			return true, nil
		}
	}
	return false, nil
}
