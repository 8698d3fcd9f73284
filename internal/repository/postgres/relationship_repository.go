package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
	"github.com/KaiMitchell/ssbackendreg/internal/repository"
	"github.com/jmoiron/sqlx"
)

type relationshipRepository struct {
	db *sqlx.DB
}

func NewRelationshipRepository(db *sqlx.DB) repository.RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (r *relationshipRepository) PairState(ctx context.Context, userID1, userID2 int) (domain.PairState, *domain.MatchRequest, error) {
	// Matches are stored as two rows, so one direction is enough.
	var matched bool
	err := r.db.GetContext(ctx, &matched,
		`SELECT EXISTS (SELECT 1 FROM matches WHERE user_id = $1 AND match_id = $2)`,
		userID1, userID2)
	if err != nil {
		return "", nil, err
	}
	if matched {
		return domain.PairStateMatched, nil, nil
	}

	lo, hi := domain.CanonicalPair(userID1, userID2)
	var req domain.MatchRequest
	err = r.db.GetContext(ctx, &req,
		`SELECT id, u_id1, u_id2, requester_id, created_at
		 FROM match_requests WHERE u_id1 = $1 AND u_id2 = $2`,
		lo, hi)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PairStateNone, nil, nil
		}
		return "", nil, err
	}
	return domain.PairStatePending, &req, nil
}

func (r *relationshipRepository) RelatedUserIDs(ctx context.Context, userID int) (map[int]struct{}, error) {
	query := `
		SELECT u_id2 FROM match_requests WHERE u_id1 = $1
		UNION
		SELECT u_id1 FROM match_requests WHERE u_id2 = $1
		UNION
		SELECT match_id FROM matches WHERE user_id = $1
	`
	var ids []int
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, err
	}
	related := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		related[id] = struct{}{}
	}
	return related, nil
}

func (r *relationshipRepository) CreateRequest(ctx context.Context, requesterID, recipientID int) error {
	lo, hi := domain.CanonicalPair(requesterID, recipientID)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Clear any stale row first so the one-request-per-pair invariant holds
	// even if an earlier delete was lost.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM match_requests WHERE u_id1 = $1 AND u_id2 = $2`, lo, hi); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO match_requests (u_id1, u_id2, requester_id) VALUES ($1, $2, $3)`,
		lo, hi, requesterID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *relationshipRepository) DeleteRequest(ctx context.Context, userID1, userID2 int) error {
	lo, hi := domain.CanonicalPair(userID1, userID2)
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM match_requests WHERE u_id1 = $1 AND u_id2 = $2`, lo, hi)
	return err
}

func (r *relationshipRepository) AcceptRequest(ctx context.Context, userID1, userID2 int) error {
	lo, hi := domain.CanonicalPair(userID1, userID2)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO matches (user_id, match_id) VALUES ($1, $2)`, userID1, userID2); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO matches (user_id, match_id) VALUES ($1, $2)`, userID2, userID1); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM match_requests WHERE u_id1 = $1 AND u_id2 = $2`, lo, hi)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	// The request vanished between the state check and the delete (lost a
	// race against a concurrent cancel or accept): roll everything back.
	if rows == 0 {
		return domain.ErrMatchRequestNotFound
	}
	return tx.Commit()
}

func (r *relationshipRepository) ListMatchedUsernames(ctx context.Context, userID int) ([]string, error) {
	query := `
		SELECT u.username
		FROM matches m
		JOIN users u ON u.id = m.match_id
		WHERE m.user_id = $1
		ORDER BY u.username
	`
	var usernames []string
	if err := r.db.SelectContext(ctx, &usernames, query, userID); err != nil {
		return nil, err
	}
	return usernames, nil
}
