package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/KaiMitchell/ssbackendreg/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps domain errors to HTTP statuses. Unexpected errors are
// logged with detail but surface only as a generic 500.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	var validationErr *domain.ValidationError
	var transitionErr *domain.InvalidTransitionError

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSkillNotFound),
		errors.Is(err, domain.ErrMatchRequestNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Msg})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, ErrorResponse{Error: transitionErr.Error()})
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// bindErrorMessage turns a binding failure into a client-facing message,
// naming the offending fields when the validator provides them.
func bindErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return "invalid request: " + strings.Join(fields, ", ")
	}
	return "invalid request body"
}
