package domain

// Facet distinguishes the two directions a skill can be declared under.
type Facet string

const (
	FacetTeach Facet = "teach"
	FacetLearn Facet = "learn"
)

func (f Facet) Valid() bool {
	return f == FacetTeach || f == FacetLearn
}

type Skill struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CategorySkills groups skill names under one category.
type CategorySkills struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Candidate is one row of a candidate view: a user annotated with every
// skill they declared under the queried facet and, when set, the single
// priority skill for that facet.
type Candidate struct {
	UserID         int      `json:"-"`
	Username       string   `json:"username"`
	Description    string   `json:"description"`
	ProfilePicture *string  `json:"profile_picture"`
	Gender         *string  `json:"gender"`
	Skills         []string `json:"skills"`
	PrioritySkill  *string  `json:"priority_skill,omitempty"`
}

// QuickProfile is one row of the unfiltered quick-filter view.
type QuickProfile struct {
	Username string `json:"username" db:"username"`
	Skill    string `json:"skill" db:"skill"`
}
