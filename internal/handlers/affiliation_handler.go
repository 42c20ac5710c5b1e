package handlers

import (
	"net/http"

	"lawlink_backend/internal/services"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AffiliationHandler struct {
	*BaseHandler
	affiliations services.AffiliationService
}

func NewAffiliationHandler(base *BaseHandler, affiliations services.AffiliationService) *AffiliationHandler {
	return &AffiliationHandler{
		BaseHandler:  base,
		affiliations: affiliations,
	}
}

// Request files the calling secretary's application to work for a lawyer.
// POST /api/affiliations
func (h *AffiliationHandler) Request(c *gin.Context) {
	var req dto.RequestAffiliationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.affiliations.Request(h.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Decide approves or rejects a pending application addressed to the
// calling lawyer.
// PATCH /api/affiliations/:id
func (h *AffiliationHandler) Decide(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.DecideAffiliationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.affiliations.Decide(h.GetUserID(c), id, req.Approve); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application decided"})
}

// List returns the applications addressed to the calling lawyer.
// GET /api/affiliations
func (h *AffiliationHandler) List(c *gin.Context) {
	resp, err := h.affiliations.ListForLawyer(h.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
