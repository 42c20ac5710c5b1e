package handlers

import (
	"io"
	"net/http"

	"lawlink_backend/internal/imageprocessor"
	"lawlink_backend/internal/services"
	"lawlink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// proof uploads are phone camera shots of GCash receipts
const maxProofSize = 10 << 20 // 10 MB

var allowedProofTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type PaymentHandler struct {
	*BaseHandler
	payments services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, payments services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler: base,
		payments:    payments,
	}
}

// SubmitProof uploads a payment proof image for an Unpaid consultation.
// Multipart field name: "proof".
// POST /api/consultations/:id/payment/proof
func (h *PaymentHandler) SubmitProof(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("proof")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing proof file"))
		return
	}
	if fileHeader.Size > maxProofSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Proof image exceeds the 10MB limit"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedProofTypes[contentType] {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Proof must be a JPEG, PNG or WebP image"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	// Downscale camera shots before they hit storage.
	normalized, storedType, err := imageprocessor.Normalize(file, contentType)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Proof file is not a valid image"))
		return
	}

	resp, err := h.payments.SubmitProof(c.Request.Context(), id, h.GetUserID(c), normalized, storedType)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Confirm books the consultation after the lawyer verified the payment.
// POST /api/consultations/:id/payment/confirm
func (h *PaymentHandler) Confirm(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.payments.ConfirmPayment(c.Request.Context(), id, h.GetUserID(c)); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed"})
}

// Deny discards the submitted proof so the client can try again.
// POST /api/consultations/:id/payment/deny
func (h *PaymentHandler) Deny(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.payments.DenyPayment(c.Request.Context(), id, h.GetUserID(c)); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment proof denied"})
}

// GetReceipt returns the receipt metadata for a consultation.
// GET /api/consultations/:id/payment/receipt
func (h *PaymentHandler) GetReceipt(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.payments.GetReceipt(c.Request.Context(), id, h.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ProofImage streams the stored proof image to the caller.
// GET /api/consultations/:id/payment/proof
func (h *PaymentHandler) ProofImage(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	reader, err := h.payments.OpenProofImage(c.Request.Context(), id, h.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	defer reader.Close()

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; nothing left to do but note it.
		c.Error(err) //nolint:errcheck
	}
}
