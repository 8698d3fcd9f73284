package match

import (
	"context"
	"fmt"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
	"github.com/KaiMitchell/ssbackendreg/internal/repository"
)

// UseCase drives the match request state machine. Per unordered user pair the
// states are NONE, PENDING and MATCHED; every mutation validates the current
// state first and applies its writes through a single transactional
// repository operation.
type UseCase struct {
	userRepo repository.UserRepository
	relRepo  repository.RelationshipRepository
}

func NewUseCase(userRepo repository.UserRepository, relRepo repository.RelationshipRepository) *UseCase {
	return &UseCase{
		userRepo: userRepo,
		relRepo:  relRepo,
	}
}

// RequestPayload names the two sides of a request operation.
type RequestPayload struct {
	CurrentUser  string `json:"current_user" binding:"required"`
	SelectedUser string `json:"selected_user" binding:"required"`
}

// Propose moves a pair from NONE to PENDING with the current user recorded as
// requester. Proposing an already pending or matched pair is an invalid
// transition.
func (uc *UseCase) Propose(ctx context.Context, requester, recipient string) error {
	if requester == recipient {
		return domain.NewValidationError("cannot send a match request to yourself")
	}

	requesterUser, recipientUser, err := uc.resolvePair(ctx, requester, recipient)
	if err != nil {
		return err
	}

	state, _, err := uc.relRepo.PairState(ctx, requesterUser.ID, recipientUser.ID)
	if err != nil {
		return fmt.Errorf("failed to read pair state: %w", err)
	}
	if state != domain.PairStateNone {
		return &domain.InvalidTransitionError{Op: "propose", State: state}
	}

	if err := uc.relRepo.CreateRequest(ctx, requesterUser.ID, recipientUser.ID); err != nil {
		return fmt.Errorf("failed to create match request: %w", err)
	}
	return nil
}

// Cancel moves a pending pair back to NONE. Cancelling a pair that is already
// NONE is a no-op; cancelling a matched pair is an invalid transition.
func (uc *UseCase) Cancel(ctx context.Context, userA, userB string) error {
	a, b, err := uc.resolvePair(ctx, userA, userB)
	if err != nil {
		return err
	}

	state, _, err := uc.relRepo.PairState(ctx, a.ID, b.ID)
	if err != nil {
		return fmt.Errorf("failed to read pair state: %w", err)
	}
	switch state {
	case domain.PairStateMatched:
		return &domain.InvalidTransitionError{Op: "cancel", State: state}
	case domain.PairStateNone:
		return nil
	}

	if err := uc.relRepo.DeleteRequest(ctx, a.ID, b.ID); err != nil {
		return fmt.Errorf("failed to delete match request: %w", err)
	}
	return nil
}

// Accept moves a pending pair to MATCHED: both match rows are inserted and
// the request row removed as one atomic unit. Accepting a pair that is not
// pending is an invalid transition.
func (uc *UseCase) Accept(ctx context.Context, currentUser, selectedUser string) error {
	current, selected, err := uc.resolvePair(ctx, currentUser, selectedUser)
	if err != nil {
		return err
	}

	state, _, err := uc.relRepo.PairState(ctx, current.ID, selected.ID)
	if err != nil {
		return fmt.Errorf("failed to read pair state: %w", err)
	}
	if state != domain.PairStatePending {
		return &domain.InvalidTransitionError{Op: "accept", State: state}
	}

	if err := uc.relRepo.AcceptRequest(ctx, current.ID, selected.ID); err != nil {
		return fmt.Errorf("failed to accept match request: %w", err)
	}
	return nil
}

// Matches returns the usernames the given user is matched with, ordered by
// username.
func (uc *UseCase) Matches(ctx context.Context, username string) ([]string, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	usernames, err := uc.relRepo.ListMatchedUsernames(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return usernames, nil
}

// resolvePair looks both usernames up, aborting before any write when either
// is unknown.
func (uc *UseCase) resolvePair(ctx context.Context, nameA, nameB string) (*domain.User, *domain.User, error) {
	a, err := uc.userRepo.GetByUsername(ctx, nameA)
	if err != nil {
		return nil, nil, err
	}
	b, err := uc.userRepo.GetByUsername(ctx, nameB)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
