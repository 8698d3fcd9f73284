package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
	"github.com/KaiMitchell/ssbackendreg/internal/usecase/match"
	"github.com/gin-gonic/gin"
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

func (s *stubUserRepo) UpdateDescription(_ context.Context, username, _ string) error {
	if _, ok := s.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

type stubRelationshipRepo struct {
	state   domain.PairState
	matched []string
}

func (s *stubRelationshipRepo) PairState(_ context.Context, _, _ int) (domain.PairState, *domain.MatchRequest, error) {
	if s.state == domain.PairStatePending {
		return s.state, &domain.MatchRequest{}, nil
	}
	return s.state, nil, nil
}

func (s *stubRelationshipRepo) RelatedUserIDs(_ context.Context, _ int) (map[int]struct{}, error) {
	return map[int]struct{}{}, nil
}

func (s *stubRelationshipRepo) CreateRequest(_ context.Context, _, _ int) error { return nil }
func (s *stubRelationshipRepo) DeleteRequest(_ context.Context, _, _ int) error { return nil }
func (s *stubRelationshipRepo) AcceptRequest(_ context.Context, _, _ int) error { return nil }

func (s *stubRelationshipRepo) ListMatchedUsernames(_ context.Context, _ int) ([]string, error) {
	return s.matched, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newMatchRouter(relRepo *stubRelationshipRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userRepo := &stubUserRepo{users: map[string]*domain.User{
		"alice": {ID: 1, Username: "alice"},
		"bob":   {ID: 2, Username: "bob"},
	}}
	h := NewMatchHandler(match.NewUseCase(userRepo, relRepo), quietLogger())

	router := gin.New()
	router.POST("/match-requests", h.Propose)
	router.DELETE("/match-requests", h.Cancel)
	router.POST("/match-requests/accept", h.Accept)
	router.GET("/users/:username/matches", h.Matches)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProposeHandler(t *testing.T) {
	tests := []struct {
		name       string
		state      domain.PairState
		body       string
		wantStatus int
	}{
		{
			name:       "new pair",
			state:      domain.PairStateNone,
			body:       `{"current_user":"alice","selected_user":"bob"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "already pending",
			state:      domain.PairStatePending,
			body:       `{"current_user":"alice","selected_user":"bob"}`,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "already matched",
			state:      domain.PairStateMatched,
			body:       `{"current_user":"alice","selected_user":"bob"}`,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "self request",
			state:      domain.PairStateNone,
			body:       `{"current_user":"alice","selected_user":"alice"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown user",
			state:      domain.PairStateNone,
			body:       `{"current_user":"alice","selected_user":"ghost"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing field",
			state:      domain.PairStateNone,
			body:       `{"current_user":"alice"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMatchRouter(&stubRelationshipRepo{state: tt.state})
			w := doJSON(t, router, http.MethodPost, "/match-requests", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCancelHandler(t *testing.T) {
	tests := []struct {
		name       string
		state      domain.PairState
		wantStatus int
	}{
		{name: "pending", state: domain.PairStatePending, wantStatus: http.StatusOK},
		{name: "already clear", state: domain.PairStateNone, wantStatus: http.StatusOK},
		{name: "matched", state: domain.PairStateMatched, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMatchRouter(&stubRelationshipRepo{state: tt.state})
			w := doJSON(t, router, http.MethodDelete, "/match-requests",
				`{"current_user":"alice","selected_user":"bob"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAcceptHandler(t *testing.T) {
	tests := []struct {
		name       string
		state      domain.PairState
		wantStatus int
	}{
		{name: "pending", state: domain.PairStatePending, wantStatus: http.StatusOK},
		{name: "no request", state: domain.PairStateNone, wantStatus: http.StatusConflict},
		{name: "already matched", state: domain.PairStateMatched, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMatchRouter(&stubRelationshipRepo{state: tt.state})
			w := doJSON(t, router, http.MethodPost, "/match-requests/accept",
				`{"current_user":"bob","selected_user":"alice"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestMatchesHandler(t *testing.T) {
	router := newMatchRouter(&stubRelationshipRepo{matched: []string{"bob"}})
	w := doJSON(t, router, http.MethodGet, "/users/alice/matches", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Matches []string `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"bob"}, body.Matches)
}

func TestMatchesHandler_NoMatchesIsEmptyList(t *testing.T) {
	router := newMatchRouter(&stubRelationshipRepo{})
	w := doJSON(t, router, http.MethodGet, "/users/alice/matches", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"matches":[]}`, w.Body.String())
}

func TestMatchesHandler_UnknownUser(t *testing.T) {
	router := newMatchRouter(&stubRelationshipRepo{})
	w := doJSON(t, router, http.MethodGet, "/users/ghost/matches", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
