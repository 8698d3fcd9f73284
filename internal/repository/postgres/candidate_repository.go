package postgres

import (
	"context"
	"fmt"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
	"github.com/KaiMitchell/ssbackendreg/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *sqlx.DB
}

func NewCandidateRepository(db *sqlx.DB) repository.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) ListCandidates(ctx context.Context, facet domain.Facet, filters repository.CandidateFilters) ([]domain.Candidate, error) {
	declCol, _ := facetColumns(facet)

	joins := ""
	where := fmt.Sprintf("WHERE us.%s", declCol)
	args := []interface{}{}
	argCount := 1

	if filters.Category != "" {
		joins = `
		JOIN categories_skills cs ON cs.skill_id = s.id
		JOIN categories c ON c.id = cs.category_id`
		where += fmt.Sprintf(" AND c.category = $%d", argCount)
		args = append(args, filters.Category)
		argCount++
	}
	if filters.Skill != "" {
		where += fmt.Sprintf(" AND s.name = $%d", argCount)
		args = append(args, filters.Skill)
		argCount++
	}
	if filters.Gender != "" {
		where += fmt.Sprintf(" AND u.gender = $%d", argCount)
		args = append(args, filters.Gender)
		argCount++
	}

	query := fmt.Sprintf(`
		SELECT u.id, u.username, u.description, u.profile_picture, u.gender,
		       ARRAY_AGG(DISTINCT s.name) AS skills
		FROM users u
		JOIN users_skills us ON us.user_id = u.id
		JOIN skills s ON s.id = us.skill_id%s
		%s
		GROUP BY u.id
		ORDER BY u.username
	`, joins, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.UserID, &c.Username, &c.Description, &c.ProfilePicture, &c.Gender, pq.Array(&c.Skills)); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) ListPrioritySkills(ctx context.Context, facet domain.Facet) (map[string]string, error) {
	_, prioCol := facetColumns(facet)
	query := fmt.Sprintf(`
		SELECT u.username, s.name
		FROM users_skills us
		JOIN users u ON u.id = us.user_id
		JOIN skills s ON s.id = us.skill_id
		WHERE us.%s
	`, prioCol)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	priorities := make(map[string]string)
	for rows.Next() {
		var username, skill string
		if err := rows.Scan(&username, &skill); err != nil {
			return nil, err
		}
		priorities[username] = skill
	}
	return priorities, rows.Err()
}

func (r *candidateRepository) QuickFilter(ctx context.Context, facet domain.Facet, skill, category string) ([]domain.QuickProfile, error) {
	declCol, _ := facetColumns(facet)

	joins := ""
	predicate := "s.name = $1"
	arg := skill
	if skill == "" {
		joins = `
		JOIN categories_skills cs ON cs.skill_id = s.id
		JOIN categories c ON c.id = cs.category_id`
		predicate = "c.category = $1"
		arg = category
	}

	query := fmt.Sprintf(`
		SELECT u.username, s.name AS skill
		FROM users u
		JOIN users_skills us ON us.user_id = u.id
		JOIN skills s ON s.id = us.skill_id%s
		WHERE us.%s AND %s
		ORDER BY u.username, s.name
	`, joins, declCol, predicate)

	var profiles []domain.QuickProfile
	if err := r.db.SelectContext(ctx, &profiles, query, arg); err != nil {
		return nil, err
	}
	return profiles, nil
}
