package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinova/clinova/internal/domain/appointment"
	"github.com/clinova/clinova/internal/domain/doctor"
	"github.com/clinova/clinova/internal/domain/history"
	"github.com/clinova/clinova/internal/domain/patient"
	"github.com/clinova/clinova/internal/domain/schedule"
	"github.com/clinova/clinova/internal/domain/specialty"
	"github.com/clinova/clinova/internal/service"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

func respondServiceError(c *gin.Context, err error) {
	var validErr *service.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, specialty.ErrSpecialtyNotFound),
		errors.Is(err, doctor.ErrDoctorNotFound),
		errors.Is(err, history.ErrHistoryNotFound),
		errors.Is(err, appointment.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, patient.ErrNoFieldsToUpdate),
		errors.Is(err, specialty.ErrNoFieldsToUpdate),
		errors.Is(err, doctor.ErrNoFieldsToUpdate),
		errors.Is(err, history.ErrNoFieldsToUpdate),
		errors.Is(err, appointment.ErrNoFieldsToUpdate),
		errors.Is(err, schedule.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case isConstraintViolation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "the store rejected the write: " + err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// isConstraintViolation matches Postgres integrity errors (class 23:
// unique, foreign key, not null) surfaced through gorm.
func isConstraintViolation(err error) bool {
	return strings.Contains(err.Error(), "SQLSTATE 23")
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

const dateLayout = "2006-01-02"

func parseDate(c *gin.Context, field, raw string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + field + ": expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}

var dateTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02 15:04"}

func parseDateTime(c *gin.Context, field, raw string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + field + ": expected an RFC 3339 or YYYY-MM-DD HH:MM timestamp"})
	return time.Time{}, false
}

func parseQueryID(c *gin.Context, key string) (*uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + key + ": must be a positive integer"})
		return nil, false
	}
	v := uint(id)
	return &v, true
}
