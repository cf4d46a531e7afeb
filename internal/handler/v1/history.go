package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/clinova/clinova/internal/domain/history"
	"github.com/clinova/clinova/internal/service"
)

type HistoryHandler struct {
	svc *service.HistoryService
}

func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

type createHistoryRequest struct {
	VisitDate string  `json:"visit_date" binding:"required"`
	Diagnosis *string `json:"diagnosis"`
	Treatment *string `json:"treatment"`
	Notes     *string `json:"notes"`
	PatientID uint    `json:"patient_id" binding:"required"`
	DoctorID  uint    `json:"doctor_id" binding:"required"`
}

type updateHistoryRequest struct {
	VisitDate *string `json:"visit_date"`
	Diagnosis *string `json:"diagnosis"`
	Treatment *string `json:"treatment"`
	Notes     *string `json:"notes"`
	DoctorID  *uint   `json:"doctor_id"`
}

func (h *HistoryHandler) Create(c *gin.Context) {
	var req createHistoryRequest
	if !bindJSON(c, &req) {
		return
	}
	visitDate, ok := parseDate(c, "visit_date", req.VisitDate)
	if !ok {
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), &history.CreateHistoryCommand{
		VisitDate: visitDate,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, rec)
}

func (h *HistoryHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, records)
}

func (h *HistoryHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}
	records, err := h.svc.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, records)
}

func (h *HistoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateHistoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cmd := &history.UpdateHistoryCommand{
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
		DoctorID:  req.DoctorID,
	}
	if req.VisitDate != nil {
		visitDate, ok := parseDate(c, "visit_date", *req.VisitDate)
		if !ok {
			return
		}
		cmd.VisitDate = &visitDate
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

func (h *HistoryHandler) Delete(c *gin.Context) {
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
