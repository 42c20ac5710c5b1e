package handlers

import (
	"net/http"

	"lawlink_backend/internal/services"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	*BaseHandler
	availability services.AvailabilityService
}

func NewAvailabilityHandler(base *BaseHandler, availability services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		BaseHandler:  base,
		availability: availability,
	}
}

// Get returns a lawyer's office hours and bookable slots.
// GET /api/lawyers/:id/availability
func (h *AvailabilityHandler) Get(c *gin.Context) {
	lawyerID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.availability.Get(lawyerID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Upsert sets the calling lawyer's office hours.
// PUT /api/availability
func (h *AvailabilityHandler) Upsert(c *gin.Context) {
	var req dto.UpsertAvailabilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.availability.Upsert(h.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
