package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/clinova/clinova/internal/domain/specialty"
	"github.com/clinova/clinova/internal/service"
)

type SpecialtyHandler struct {
	svc *service.SpecialtyService
}

func NewSpecialtyHandler(svc *service.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{svc: svc}
}

type createSpecialtyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type updateSpecialtyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req createSpecialtyRequest
	if !bindJSON(c, &req) {
		return
	}

	sp, err := h.svc.Create(c.Request.Context(), &specialty.CreateSpecialtyCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, sp)
}

func (h *SpecialtyHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	sp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, sp)
}

func (h *SpecialtyHandler) List(c *gin.Context) {
	specialties, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, specialties)
}

func (h *SpecialtyHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateSpecialtyRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.svc.Get(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	err := h.svc.Update(c.Request.Context(), id, &specialty.UpdateSpecialtyCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id})
}

func (h *SpecialtyHandler) Delete(c *gin.Context) {
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
