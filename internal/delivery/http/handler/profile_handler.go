package handler

import (
	"net/http"

	"github.com/KaiMitchell/ssbackendreg/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	profileUseCase *profile.UseCase
	log            *logrus.Logger
}

func NewProfileHandler(profileUseCase *profile.UseCase, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		log:            log,
	}
}

// UpdateDescription handles PUT /users/:username/description.
func (h *ProfileHandler) UpdateDescription(c *gin.Context) {
	username := c.Param("username")

	var req profile.UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.profileUseCase.UpdateDescription(c.Request.Context(), username, req.Description); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "description updated"})
}
