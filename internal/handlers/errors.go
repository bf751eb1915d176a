package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Alex-Dias4/psicologia-tatiane/internal/scheduling"
	"github.com/Alex-Dias4/psicologia-tatiane/internal/utils"
)

// domainError turns a scheduling failure into the user-facing notice the
// front end renders. Every domain error is a 4xx; anything else is a real
// server fault.
func domainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrInvalidStatus):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrTerminalState),
		errors.Is(err, scheduling.ErrAttendanceNotAllowed),
		errors.Is(err, scheduling.ErrDiagnosisNotAllowed),
		errors.Is(err, scheduling.ErrRescheduleNotAllowed):
		utils.Forbidden(c, err.Error())
	default:
		utils.InternalServerError(c, err.Error())
	}
}
