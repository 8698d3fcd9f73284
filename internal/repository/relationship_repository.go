package repository

import (
	"context"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
)

// RelationshipRepository owns the only shared mutable state in the system:
// pending match requests and matches. Multi-step writes run inside a single
// transaction with rollback on any failure.
type RelationshipRepository interface {
	// PairState reports the relationship state of an unordered pair. The
	// returned request is non-nil only in the pending state.
	PairState(ctx context.Context, userID1, userID2 int) (domain.PairState, *domain.MatchRequest, error)
	// RelatedUserIDs returns the ids of every user the given user has a
	// pending request (either direction) or match with.
	RelatedUserIDs(ctx context.Context, userID int) (map[int]struct{}, error)
	// CreateRequest deletes any stale request row for the pair and inserts
	// a fresh one recording the requester, in one transaction.
	CreateRequest(ctx context.Context, requesterID, recipientID int) error
	// DeleteRequest removes the request row for the pair regardless of
	// which side is stored first. Deleting a missing row is not an error.
	DeleteRequest(ctx context.Context, userID1, userID2 int) error
	// AcceptRequest inserts both match rows and deletes the request row in
	// one transaction. It fails with ErrMatchRequestNotFound, leaving no
	// partial state, if the request vanished before the delete.
	AcceptRequest(ctx context.Context, userID1, userID2 int) error
	ListMatchedUsernames(ctx context.Context, userID int) ([]string, error)
}
