package traffic

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	httperr "github.com/aevon-lab/traffic-dashboard/internal/core/errors"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage"
	coretraffic "github.com/aevon-lab/traffic-dashboard/internal/core/traffic"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgBodyTooLarge   = "Request body exceeds maximum allowed size"
	msgResetDisabled  = "Data reset is disabled"
	msgResetFailed    = "Failed to reset data"

	msgCreated   = "Traffic entry created successfully"
	msgUpdated   = "Traffic entry updated successfully"
	msgDeleted   = "Traffic entry deleted successfully"
	msgResetDone = "Data reset completed successfully"
)

// apiError carries the structured HTTP error shape from a helper back to the handler.
type apiError struct {
	statusCode int
	code       string
	message    string
	details    []v1.FieldError
}

func (e *apiError) Error() string {
	return e.message
}

// ListHandler handles GET /traffic.
func (s *Service) ListHandler(c *gin.Context) {
	records, err := s.List(c.Request.Context())
	if err != nil {
		writeError(c, toAPIError(err))
		return
	}

	c.JSON(http.StatusOK, v1.ListTrafficResponse{
		Success: true,
		Data:    records,
		Message: fmt.Sprintf("Retrieved %d traffic entries", len(records)),
	})
}

// CreateHandler handles POST /traffic.
func (s *Service) CreateHandler(c *gin.Context) {
	in, apiErr := s.parseInput(c)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}

	rec, err := s.Create(c.Request.Context(), *in)
	if err != nil {
		writeError(c, toAPIError(err))
		return
	}

	c.JSON(http.StatusCreated, v1.TrafficResponse{Success: true, Data: *rec, Message: msgCreated})
}

// UpdateHandler handles PUT /traffic?id= and PUT /traffic/:id.
func (s *Service) UpdateHandler(c *gin.Context) {
	id := recordID(c)
	if id == "" {
		writeError(c, toAPIError(ErrIDRequired))
		return
	}

	in, apiErr := s.parseInput(c)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}

	rec, err := s.Update(c.Request.Context(), id, *in)
	if err != nil {
		writeError(c, toAPIError(err))
		return
	}

	c.JSON(http.StatusOK, v1.TrafficResponse{Success: true, Data: *rec, Message: msgUpdated})
}

// DeleteHandler handles DELETE /traffic?id= and DELETE /traffic/:id.
func (s *Service) DeleteHandler(c *gin.Context) {
	if err := s.Delete(c.Request.Context(), recordID(c)); err != nil {
		writeError(c, toAPIError(err))
		return
	}

	c.JSON(http.StatusOK, v1.DeleteTrafficResponse{Success: true, Message: msgDeleted})
}

// ResetHandler handles POST /traffic/reset.
func (s *Service) ResetHandler(c *gin.Context) {
	summary, err := s.Reset(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrResetDisabled) {
			writeError(c, &apiError{
				statusCode: http.StatusForbidden,
				code:       httperr.CodeForbidden,
				message:    msgResetDisabled,
			})
			return
		}
		slog.Error("[Traffic] Data reset failed", "error", err)
		writeError(c, &apiError{
			statusCode: http.StatusInternalServerError,
			code:       httperr.CodeInternal,
			message:    msgResetFailed,
		})
		return
	}

	c.JSON(http.StatusOK, v1.ResetResponse{Success: true, Data: *summary, Message: msgResetDone})
}

// recordID prefers the path segment and falls back to ?id=.
func recordID(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	return c.Query("id")
}

// parseInput reads the request body within the size limit and decodes it.
// Field-level checks are left to the service so every failure is reported together.
func (s *Service) parseInput(c *gin.Context) (*v1.TrafficInput, *apiError) {
	limited := io.LimitReader(c.Request.Body, s.maxBodySizeBytes+1) // +1 to detect oversized requests

	body, err := io.ReadAll(limited)
	if err != nil {
		slog.Error("[Traffic] Failed to read request body", "error", err)
		return nil, &apiError{
			statusCode: http.StatusInternalServerError,
			code:       httperr.CodeInternal,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(body)) > s.maxBodySizeBytes {
		slog.Warn("[Traffic] Request body exceeds maximum size", "size", len(body), "max", s.maxBodySizeBytes)
		return nil, &apiError{
			statusCode: http.StatusRequestEntityTooLarge,
			code:       httperr.CodeValidation,
			message:    msgBodyTooLarge,
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var in v1.TrafficInput
	if err := c.ShouldBindJSON(&in); err != nil {
		slog.Warn("[Traffic] Invalid JSON body received", "error", err, "payload_size", len(body))
		return nil, &apiError{
			statusCode: http.StatusBadRequest,
			code:       httperr.CodeValidation,
			message:    msgInvalidJSON,
		}
	}
	return &in, nil
}

// toAPIError maps service errors onto HTTP statuses.
func toAPIError(err error) *apiError {
	var verr *coretraffic.ValidationError
	switch {
	case errors.As(err, &verr):
		return &apiError{
			statusCode: http.StatusBadRequest,
			code:       httperr.CodeValidation,
			message:    verr.Error(),
			details:    verr.Fields,
		}
	case errors.Is(err, ErrIDRequired):
		return &apiError{
			statusCode: http.StatusBadRequest,
			code:       httperr.CodeValidation,
			message:    httperr.MsgIDRequired,
		}
	case errors.Is(err, storage.ErrDuplicate):
		return &apiError{
			statusCode: http.StatusConflict,
			code:       httperr.CodeConflict,
			message:    httperr.MsgConflict,
		}
	case errors.Is(err, storage.ErrNotFound):
		return &apiError{
			statusCode: http.StatusNotFound,
			code:       httperr.CodeNotFound,
			message:    httperr.MsgNotFound,
		}
	default:
		slog.Error("[Traffic] Store operation failed", "error", err)
		return &apiError{
			statusCode: http.StatusInternalServerError,
			code:       httperr.CodeInternal,
			message:    httperr.MsgInternal,
		}
	}
}

// writeError serializes an apiError as the JSON HTTP response.
func writeError(c *gin.Context, err *apiError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		Success: false,
		Error:   err.message,
		Code:    err.code,
		Details: err.details,
	})
}
