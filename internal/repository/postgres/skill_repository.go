package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
	"github.com/KaiMitchell/ssbackendreg/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type skillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) repository.SkillRepository {
	return &skillRepository{db: db}
}

// facetColumns maps a facet to its declaration and priority columns. The
// names come from this fixed table, never from caller input, so they are safe
// to splice into query text.
func facetColumns(facet domain.Facet) (declCol, prioCol string) {
	if facet == domain.FacetTeach {
		return "is_teaching", "is_teach_priority"
	}
	return "is_learning", "is_learn_priority"
}

func (r *skillRepository) ListCatalog(ctx context.Context) ([]domain.CategorySkills, error) {
	query := `
		SELECT c.category, ARRAY_AGG(s.name ORDER BY s.name) AS skills
		FROM categories c
		JOIN categories_skills cs ON cs.category_id = c.id
		JOIN skills s ON s.id = cs.skill_id
		GROUP BY c.category
		ORDER BY c.category
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalog []domain.CategorySkills
	for rows.Next() {
		var entry domain.CategorySkills
		if err := rows.Scan(&entry.Category, pq.Array(&entry.Skills)); err != nil {
			return nil, err
		}
		catalog = append(catalog, entry)
	}
	return catalog, rows.Err()
}

func (r *skillRepository) GetByName(ctx context.Context, name string) (*domain.Skill, error) {
	var skill domain.Skill
	err := r.db.GetContext(ctx, &skill, `SELECT id, name FROM skills WHERE name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) ListUserSkillsByCategory(ctx context.Context, userID int, facet domain.Facet) ([]domain.CategorySkills, error) {
	declCol, _ := facetColumns(facet)
	query := fmt.Sprintf(`
		SELECT c.category, ARRAY_AGG(s.name ORDER BY s.name) AS skills
		FROM users_skills us
		JOIN skills s ON s.id = us.skill_id
		JOIN categories_skills cs ON cs.skill_id = s.id
		JOIN categories c ON c.id = cs.category_id
		WHERE us.user_id = $1 AND us.%s
		GROUP BY c.category
		ORDER BY c.category
	`, declCol)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.CategorySkills
	for rows.Next() {
		var entry domain.CategorySkills
		if err := rows.Scan(&entry.Category, pq.Array(&entry.Skills)); err != nil {
			return nil, err
		}
		categories = append(categories, entry)
	}
	return categories, rows.Err()
}

func (r *skillRepository) ListUserSkillNames(ctx context.Context, userID int, facet domain.Facet) ([]string, error) {
	declCol, _ := facetColumns(facet)
	query := fmt.Sprintf(`
		SELECT s.name
		FROM users_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = $1 AND us.%s
		ORDER BY s.name
	`, declCol)

	var names []string
	if err := r.db.SelectContext(ctx, &names, query, userID); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *skillRepository) GetPrioritySkill(ctx context.Context, userID int, facet domain.Facet) (*string, error) {
	_, prioCol := facetColumns(facet)
	query := fmt.Sprintf(`
		SELECT s.name
		FROM users_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = $1 AND us.%s
	`, prioCol)

	var name string
	err := r.db.GetContext(ctx, &name, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &name, nil
}

func (r *skillRepository) DeclareSkills(ctx context.Context, userID int, facet domain.Facet, skillIDs []int, priorityID *int) error {
	declCol, prioCol := facetColumns(facet)
	isTeaching := facet == domain.FacetTeach

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO users_skills (user_id, skill_id, is_teaching, is_learning)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, skill_id, is_teaching, is_learning) DO NOTHING
	`
	for _, skillID := range skillIDs {
		if _, err := tx.ExecContext(ctx, insert, userID, skillID, isTeaching, !isTeaching); err != nil {
			return err
		}
	}

	if priorityID != nil {
		clearPrio := fmt.Sprintf(`UPDATE users_skills SET %s = FALSE WHERE user_id = $1 AND %s`, prioCol, prioCol)
		if _, err := tx.ExecContext(ctx, clearPrio, userID); err != nil {
			return err
		}
		set := fmt.Sprintf(`UPDATE users_skills SET %s = TRUE WHERE user_id = $1 AND skill_id = $2 AND %s`, prioCol, declCol)
		result, err := tx.ExecContext(ctx, set, userID, *priorityID)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("priority skill %d is not declared for facet %s", *priorityID, facet)
		}
	}

	return tx.Commit()
}
