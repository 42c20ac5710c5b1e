package handlers

import (
	"net/http"

	"lawlink_backend/internal/models"
	"lawlink_backend/internal/services"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	*BaseHandler
	consultations services.ConsultationService
}

func NewConsultationHandler(base *BaseHandler, consultations services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{
		BaseHandler:   base,
		consultations: consultations,
	}
}

// Create books a consultation request with a lawyer.
// POST /api/consultations
func (h *ConsultationHandler) Create(c *gin.Context) {
	var req dto.CreateConsultationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.consultations.Create(h.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get returns one consultation, visible to its parties and approved
// secretaries.
// GET /api/consultations/:id
func (h *ConsultationHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.consultations.Get(id, h.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List returns the caller's consultations, client or lawyer side depending
// on their role.
// GET /api/consultations
func (h *ConsultationHandler) List(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)
	userID := h.GetUserID(c)

	var (
		resp *dto.ConsultationListResponse
		err  error
	)
	if h.GetRole(c) == models.UserRoleLawyer {
		resp, err = h.consultations.ListForLawyer(userID, page, pageSize)
	} else {
		resp, err = h.consultations.ListForClient(userID, page, pageSize)
	}
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Transition applies one lifecycle edge: approve, reject, complete, or
// complete-and-paid.
// PATCH /api/consultations/:id/status
func (h *ConsultationHandler) Transition(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.consultations.TransitionStatus(id, h.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Reschedule moves the consultation onto a new slot inside the lawyer's
// office hours.
// PATCH /api/consultations/:id/schedule
func (h *ConsultationHandler) Reschedule(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RescheduleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.consultations.Reschedule(id, h.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetNote returns the lawyer's note and recommendation for a consultation.
// GET /api/consultations/:id/note
func (h *ConsultationHandler) GetNote(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.consultations.GetNote(id, h.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
