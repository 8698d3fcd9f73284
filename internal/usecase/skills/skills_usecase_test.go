package skills

import (
	"context"
	"io"
	"testing"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := s.users[username]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) UpdateDescription(_ context.Context, _, _ string) error {
	return nil
}

type declaredCall struct {
	userID     int
	facet      domain.Facet
	skillIDs   []int
	priorityID *int
}

type stubSkillRepo struct {
	catalog    []domain.CategorySkills
	skills     map[string]*domain.Skill
	declared   map[domain.Facet][]string
	priorities map[domain.Facet]*string

	declareCalls []declaredCall
}

func (s *stubSkillRepo) ListCatalog(_ context.Context) ([]domain.CategorySkills, error) {
	return s.catalog, nil
}

func (s *stubSkillRepo) GetByName(_ context.Context, name string) (*domain.Skill, error) {
	if skill, ok := s.skills[name]; ok {
		return skill, nil
	}
	return nil, domain.ErrSkillNotFound
}

func (s *stubSkillRepo) ListUserSkillsByCategory(_ context.Context, _ int, _ domain.Facet) ([]domain.CategorySkills, error) {
	return nil, nil
}

func (s *stubSkillRepo) ListUserSkillNames(_ context.Context, _ int, facet domain.Facet) ([]string, error) {
	return s.declared[facet], nil
}

func (s *stubSkillRepo) GetPrioritySkill(_ context.Context, _ int, facet domain.Facet) (*string, error) {
	return s.priorities[facet], nil
}

func (s *stubSkillRepo) DeclareSkills(_ context.Context, userID int, facet domain.Facet, skillIDs []int, priorityID *int) error {
	s.declareCalls = append(s.declareCalls, declaredCall{
		userID:     userID,
		facet:      facet,
		skillIDs:   skillIDs,
		priorityID: priorityID,
	})
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newFixture() (*stubSkillRepo, *stubUserRepo) {
	skillRepo := &stubSkillRepo{
		skills: map[string]*domain.Skill{
			"Guitar":  {ID: 10, Name: "Guitar"},
			"Piano":   {ID: 11, Name: "Piano"},
			"Spanish": {ID: 20, Name: "Spanish"},
		},
		declared: map[domain.Facet][]string{},
	}
	userRepo := &stubUserRepo{users: map[string]*domain.User{
		"alice": {ID: 1, Username: "alice"},
	}}
	return skillRepo, userRepo
}

func TestCatalog_WithoutCache(t *testing.T) {
	skillRepo, userRepo := newFixture()
	skillRepo.catalog = []domain.CategorySkills{
		{Category: "Music", Skills: []string{"Guitar", "Piano"}},
	}
	uc := NewUseCase(skillRepo, userRepo, nil, quietLogger())

	catalog, err := uc.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Music", catalog[0].Category)
}

func TestDeclare_RequiresAtLeastOneSkill(t *testing.T) {
	skillRepo, userRepo := newFixture()
	uc := NewUseCase(skillRepo, userRepo, nil, quietLogger())

	_, err := uc.Declare(context.Background(), "alice", &DeclareRequest{})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, skillRepo.declareCalls)
}

func TestDeclare_UnknownUser(t *testing.T) {
	skillRepo, userRepo := newFixture()
	uc := NewUseCase(skillRepo, userRepo, nil, quietLogger())

	_, err := uc.Declare(context.Background(), "ghost", &DeclareRequest{ToTeach: []string{"Guitar"}})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeclare_UnknownSkillAbortsBeforeWrite(t *testing.T) {
	skillRepo, userRepo := newFixture()
	uc := NewUseCase(skillRepo, userRepo, nil, quietLogger())

	_, err := uc.Declare(context.Background(), "alice", &DeclareRequest{
		ToTeach: []string{"Guitar", "Underwater Basket Weaving"},
	})

	require.ErrorIs(t, err, domain.ErrSkillNotFound)
	assert.Empty(t, skillRepo.declareCalls)
}

func TestDeclare_BothFacets(t *testing.T) {
	skillRepo, userRepo := newFixture()
	uc := NewUseCase(skillRepo, userRepo, nil, quietLogger())

	resp, err := uc.Declare(context.Background(), "alice", &DeclareRequest{
		ToTeach: []string{"Guitar"},
		ToLearn: []string{"Spanish"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Guitar"}, resp.ToTeach)
	assert.Equal(t, []string{"Spanish"}, resp.ToLearn)

	require.Len(t, skillRepo.declareCalls, 2)
	assert.Equal(t, domain.FacetTeach, skillRepo.declareCalls[0].facet)
	assert.Equal(t, []int{10}, skillRepo.declareCalls[0].skillIDs)
	assert.Equal(t, domain.FacetLearn, skillRepo.declareCalls[1].facet)
	assert.Equal(t, []int{20}, skillRepo.declareCalls[1].skillIDs)
}

func TestDeclare_PriorityFromSubmission(t *testing.T) {
	skillRepo, userRepo := newFixture()
	uc := NewUseCase(skillRepo, userRepo, nil, quietLogger())

	priority := "Piano"
	_, err := uc.Declare(context.Background(), "alice", &DeclareRequest{
		ToTeach:         []string{"Guitar", "Piano"},
		ToTeachPriority: &priority,
	})
	require.NoError(t, err)

	require.Len(t, skillRepo.declareCalls, 1)
	require.NotNil(t, skillRepo.declareCalls[0].priorityID)
	assert.Equal(t, 11, *skillRepo.declareCalls[0].priorityID)
}

func TestDeclare_PriorityFromEarlierDeclaration(t *testing.T) {
	skillRepo, userRepo := newFixture()
	skillRepo.declared[domain.FacetLearn] = []string{"Spanish"}
	uc := NewUseCase(skillRepo, userRepo, nil, quietLogger())

	priority := "Spanish"
	_, err := uc.Declare(context.Background(), "alice", &DeclareRequest{
		ToTeach:         []string{"Guitar"},
		ToLearn:         []string{"Piano"},
		ToLearnPriority: &priority,
	})
	require.NoError(t, err)

	require.Len(t, skillRepo.declareCalls, 2)
	learnCall := skillRepo.declareCalls[1]
	require.NotNil(t, learnCall.priorityID)
	assert.Equal(t, 20, *learnCall.priorityID)
}

func TestDeclare_PriorityNotDeclaredIsRejected(t *testing.T) {
	skillRepo, userRepo := newFixture()
	uc := NewUseCase(skillRepo, userRepo, nil, quietLogger())

	priority := "Spanish"
	_, err := uc.Declare(context.Background(), "alice", &DeclareRequest{
		ToTeach:         []string{"Guitar"},
		ToTeachPriority: &priority,
	})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, skillRepo.declareCalls)
}

func TestUserSkills(t *testing.T) {
	skillRepo, userRepo := newFixture()
	teachPriority := "Guitar"
	skillRepo.priorities = map[domain.Facet]*string{
		domain.FacetTeach: &teachPriority,
	}
	uc := NewUseCase(skillRepo, userRepo, nil, quietLogger())

	resp, err := uc.UserSkills(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, resp.ToTeachPriority)
	assert.Equal(t, "Guitar", *resp.ToTeachPriority)
	assert.Nil(t, resp.ToLearnPriority)
}

func TestProfileSkills_HasSkillsFlag(t *testing.T) {
	skillRepo, userRepo := newFixture()
	skillRepo.declared[domain.FacetTeach] = []string{"Guitar"}
	uc := NewUseCase(skillRepo, userRepo, nil, quietLogger())

	resp, err := uc.ProfileSkills(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, resp.ToTeach.HasSkills)
	assert.Equal(t, []string{"Guitar"}, resp.ToTeach.Skills)
	assert.False(t, resp.ToLearn.HasSkills)
	assert.Empty(t, resp.ToLearn.Skills)
}
