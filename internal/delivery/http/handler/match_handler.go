package handler

import (
	"net/http"

	"github.com/KaiMitchell/ssbackendreg/internal/usecase/match"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MatchHandler struct {
	matchUseCase *match.UseCase
	log          *logrus.Logger
}

func NewMatchHandler(matchUseCase *match.UseCase, log *logrus.Logger) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
		log:          log,
	}
}

// Propose handles POST /match-requests.
func (h *MatchHandler) Propose(c *gin.Context) {
	var req match.RequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.matchUseCase.Propose(c.Request.Context(), req.CurrentUser, req.SelectedUser); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "request sent"})
}

// Cancel handles DELETE /match-requests. Cancelling an already clear pair
// succeeds.
func (h *MatchHandler) Cancel(c *gin.Context) {
	var req match.RequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.matchUseCase.Cancel(c.Request.Context(), req.CurrentUser, req.SelectedUser); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "request cancelled"})
}

// Accept handles POST /match-requests/accept.
func (h *MatchHandler) Accept(c *gin.Context) {
	var req match.RequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.matchUseCase.Accept(c.Request.Context(), req.CurrentUser, req.SelectedUser); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "match successful"})
}

// Matches handles GET /users/:username/matches.
func (h *MatchHandler) Matches(c *gin.Context) {
	username := c.Param("username")

	matches, err := h.matchUseCase.Matches(c.Request.Context(), username)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if matches == nil {
		matches = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
