package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/clinova/clinova/internal/domain/appointment"
	"github.com/clinova/clinova/internal/service"
)

type AppointmentHandler struct {
	svc *service.AppointmentService
}

func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

type createAppointmentRequest struct {
	ScheduledAt string  `json:"scheduled_at" binding:"required"`
	Reason      *string `json:"reason"`
	PatientID   uint    `json:"patient_id" binding:"required"`
	DoctorID    uint    `json:"doctor_id" binding:"required"`
}

type updateAppointmentRequest struct {
	ScheduledAt *string `json:"scheduled_at"`
	Reason      *string `json:"reason"`
	DoctorID    *uint   `json:"doctor_id"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	scheduledAt, ok := parseDateTime(c, "scheduled_at", req.ScheduledAt)
	if !ok {
		return
	}

	a, err := h.svc.Book(c.Request.Context(), &appointment.CreateAppointmentCommand{
		ScheduledAt: scheduledAt,
		Reason:      req.Reason,
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, a)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, appts)
}

func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	appts, err := h.svc.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, appts)
}

func (h *AppointmentHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := parseID(c, "id")
	if !ok {
		return
	}
	appts, err := h.svc.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, appts)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	cmd := &appointment.UpdateAppointmentCommand{
		Reason:   req.Reason,
		DoctorID: req.DoctorID,
	}
	if req.ScheduledAt != nil {
		scheduledAt, ok := parseDateTime(c, "scheduled_at", *req.ScheduledAt)
		if !ok {
			return
		}
		cmd.ScheduledAt = &scheduledAt
	}

	if _, err := h.svc.Get(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, cmd); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.svc.Get(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}
