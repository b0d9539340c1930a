package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError translates a service error into a status code and body.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var list apperrors.ErrorList
	switch {
	case errors.As(err, &list):
		status := http.StatusBadRequest
		for _, e := range list {
			if e.Code() == apperrors.CodeConcurrentEdit {
				status = http.StatusConflict
				break
			}
		}
		logger.Warn("Rejected "+action, slog.String("error", list.Error()))
		c.JSON(status, toErrorListResponse(list))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found during "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict during "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error during "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

func toErrorListResponse(list apperrors.ErrorList) dto.ErrorListResponse {
	resp := dto.ErrorListResponse{Errors: make([]dto.ErrorItem, 0, len(list))}
	for _, e := range list {
		resp.Errors = append(resp.Errors, dto.ErrorItem{Code: string(e.Code()), Field: e.Field(), Message: e.Error()})
	}
	return resp
}
