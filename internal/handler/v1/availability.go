package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinova/clinova/internal/domain/schedule"
	"github.com/clinova/clinova/internal/service"
)

type AvailabilityHandler struct {
	svc *service.AvailabilityService
}

func NewAvailabilityHandler(svc *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// DaySchedule handles GET /availability?date=&doctor_id=&specialty_id=.
func (h *AvailabilityHandler) DaySchedule(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date is required"})
		return
	}
	day, ok := parseDate(c, "date", raw)
	if !ok {
		return
	}
	doctorID, ok := parseQueryID(c, "doctor_id")
	if !ok {
		return
	}
	specialtyID, ok := parseQueryID(c, "specialty_id")
	if !ok {
		return
	}

	result, err := h.svc.DaySchedule(c.Request.Context(), day, doctorID, specialtyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, result)
}

// CheckSlot handles GET /availability/check?date=&doctor_id=&time=.
func (h *AvailabilityHandler) CheckSlot(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date is required"})
		return
	}
	day, ok := parseDate(c, "date", raw)
	if !ok {
		return
	}

	doctorID, ok := parseQueryID(c, "doctor_id")
	if !ok {
		return
	}
	if doctorID == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "doctor_id is required"})
		return
	}

	slot, err := schedule.ParseSlot(c.Query("time"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	free, err := h.svc.IsSlotFree(c.Request.Context(), day, *doctorID, slot)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{
		"date":      day.Format(dateLayout),
		"doctor_id": *doctorID,
		"time":      slot,
		"available": free,
	})
}
