package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		wantLo int
		wantHi int
	}{
		{name: "already ordered", a: 1, b: 2, wantLo: 1, wantHi: 2},
		{name: "reversed", a: 9, b: 3, wantLo: 3, wantHi: 9},
		{name: "equal", a: 5, b: 5, wantLo: 5, wantHi: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := CanonicalPair(tt.a, tt.b)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}

func TestCanonicalPair_OrderIndependent(t *testing.T) {
	lo1, hi1 := CanonicalPair(7, 12)
	lo2, hi2 := CanonicalPair(12, 7)
	assert.Equal(t, lo1, lo2)
	assert.Equal(t, hi1, hi2)
}

func TestMatchRequestHasUser(t *testing.T) {
	req := &MatchRequest{UserID1: 3, UserID2: 9, RequesterID: 9}

	assert.True(t, req.HasUser(3))
	assert.True(t, req.HasUser(9))
	assert.False(t, req.HasUser(4))
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{Op: "accept", State: PairStateNone}
	assert.Equal(t, `cannot accept a pair in state "none"`, err.Error())
}
