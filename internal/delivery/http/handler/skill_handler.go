package handler

import (
	"net/http"

	"github.com/KaiMitchell/ssbackendreg/internal/usecase/skills"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SkillHandler struct {
	skillsUseCase *skills.UseCase
	log           *logrus.Logger
}

func NewSkillHandler(skillsUseCase *skills.UseCase, log *logrus.Logger) *SkillHandler {
	return &SkillHandler{
		skillsUseCase: skillsUseCase,
		log:           log,
	}
}

// Catalog handles GET /skills: every skill grouped by category.
func (h *SkillHandler) Catalog(c *gin.Context) {
	catalog, err := h.skillsUseCase.Catalog(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if len(catalog) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no skills available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": catalog})
}

// UserSkills handles GET /users/:username/skills: declared skills grouped by
// category for both facets, plus per-facet priorities.
func (h *SkillHandler) UserSkills(c *gin.Context) {
	username := c.Param("username")

	resp, err := h.skillsUseCase.UserSkills(c.Request.Context(), username)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProfileSkills handles GET /users/:username/profile-skills: flat skill name
// lists for both facets.
func (h *SkillHandler) ProfileSkills(c *gin.Context) {
	username := c.Param("username")

	resp, err := h.skillsUseCase.ProfileSkills(c.Request.Context(), username)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Declare handles POST /users/:username/skills.
func (h *SkillHandler) Declare(c *gin.Context) {
	username := c.Param("username")

	var req skills.DeclareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	resp, err := h.skillsUseCase.Declare(c.Request.Context(), username, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
