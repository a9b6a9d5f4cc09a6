package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bindJSON binds the request body into req and writes a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	return handleBindError(c, c.ShouldBindJSON(req))
}

// bind picks the binding from the content type (JSON, form or multipart).
func bind(c *gin.Context, req any) bool {
	return handleBindError(c, c.ShouldBind(req))
}

func handleBindError(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Request binding failed", slog.String("error", err.Error()))
	if fields, ok := bindingErrors(err); ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Errors: fields})
		return false
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Error: err.Error()})
	return false
}

// currentActor returns the authenticated caller, writing a 401 when absent.
func currentActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.Response{Message: message, Data: data})
}

// respondError maps a service error to its HTTP status. resource names the
// entity in the generic messages ("Expense not found").
func respondError(c *gin.Context, err error, resource string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	var fieldErrs apperrors.FieldErrors
	switch {
	case errors.As(err, &appErr):
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Request rejected", slog.String("error", err.Error()))
		}
		c.JSON(appErr.Code, dto.ErrorResponse{Message: appErr.Message})
	case errors.As(err, &fieldErrs):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Errors: fieldErrs})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + resource + " data", Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: titleCase(resource) + " already exists"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: titleCase(resource) + " not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You do not have access to this " + resource})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
	case errors.Is(err, apperrors.ErrUpstream):
		logger.Error("Upstream failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Upstream service error", Error: err.Error()})
	default:
		logger.Error("Unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Error: err.Error()})
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
