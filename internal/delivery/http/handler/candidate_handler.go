package handler

import (
	"net/http"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
	"github.com/KaiMitchell/ssbackendreg/internal/usecase/candidates"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CandidateHandler struct {
	candidatesUseCase *candidates.UseCase
	log               *logrus.Logger
}

func NewCandidateHandler(candidatesUseCase *candidates.UseCase, log *logrus.Logger) *CandidateHandler {
	return &CandidateHandler{
		candidatesUseCase: candidatesUseCase,
		log:               log,
	}
}

type browseQuery struct {
	Username string `form:"username" binding:"required"`
}

// Browse handles GET /candidates: both eligibility-filtered views for the
// viewer in one response.
func (h *CandidateHandler) Browse(c *gin.Context) {
	var q browseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	resp, err := h.candidatesUseCase.Browse(c.Request.Context(), q.Username)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type filterQuery struct {
	Username        string `form:"username" binding:"required"`
	Skill           string `form:"skill"`
	Category        string `form:"category"`
	PreferredGender string `form:"preferred_gender"`
	YourGender      string `form:"your_gender"`
	MeetUp          bool   `form:"meet_up"`
}

// FilteredTeaching handles GET /candidates/teaching: eligible users teaching
// something, narrowed by the optional filters.
func (h *CandidateHandler) FilteredTeaching(c *gin.Context) {
	h.filtered(c, domain.FacetTeach)
}

// FilteredLearning handles GET /candidates/learning: eligible users wanting
// to learn something, narrowed by the optional filters.
func (h *CandidateHandler) FilteredLearning(c *gin.Context) {
	h.filtered(c, domain.FacetLearn)
}

func (h *CandidateHandler) filtered(c *gin.Context, facet domain.Facet) {
	var q filterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	resp, err := h.candidatesUseCase.Filtered(c.Request.Context(), q.Username, facet, candidates.Filters{
		Skill:           q.Skill,
		Category:        q.Category,
		PreferredGender: q.PreferredGender,
		ViewerGender:    q.YourGender,
		MeetUp:          q.MeetUp,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type quickFilterRequest struct {
	Skill        string `json:"skill"`
	Category     string `json:"category"`
	HeaderFilter bool   `json:"headerFilter"`
}

// QuickFilter handles POST /candidates/quick-filter: the unfiltered
// catalog-browsing view, both directions in one call.
func (h *CandidateHandler) QuickFilter(c *gin.Context) {
	var req quickFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	resp, err := h.candidatesUseCase.QuickFilter(c.Request.Context(), req.Skill, req.Category)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	filterType := "main"
	if req.HeaderFilter {
		filterType = "header"
	}
	c.JSON(http.StatusOK, gin.H{
		"teachProfiles": resp.TeachProfiles,
		"learnProfiles": resp.LearnProfiles,
		"message":       resp.Message,
		"filterType":    filterType,
	})
}
