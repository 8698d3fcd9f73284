package domain

import "time"

// PairState is the relationship state of an unordered user pair. The three
// states are mutually exclusive: a pending request and a match never coexist
// for the same pair.
type PairState string

const (
	PairStateNone    PairState = "none"
	PairStatePending PairState = "pending"
	PairStateMatched PairState = "matched"
)

// MatchRequest is a directed pending proposal between two users. The pair is
// stored canonically (UserID1 < UserID2); RequesterID records which side
// initiated, independent of storage order.
type MatchRequest struct {
	ID          int       `json:"id" db:"id"`
	UserID1     int       `json:"u_id1" db:"u_id1"`
	UserID2     int       `json:"u_id2" db:"u_id2"`
	RequesterID int       `json:"requester_id" db:"requester_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (r *MatchRequest) HasUser(userID int) bool {
	return r.UserID1 == userID || r.UserID2 == userID
}

// CanonicalPair orders two user ids so the smaller one comes first.
func CanonicalPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
