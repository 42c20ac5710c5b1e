package routes

import (
	"net/http"

	"lawlink_backend/internal/auth"
	"lawlink_backend/internal/handlers"
	"lawlink_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint. Each protected route is gated by the
// authorization policy for the operation it performs.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.AuthHandler.Register)
		authGroup.POST("/login", h.AuthHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())

	consultations := protected.Group("/consultations")
	{
		consultations.POST("",
			middleware.RequirePermission(auth.OpConsultationCreate), h.ConsultationHandler.Create)
		consultations.GET("",
			middleware.RequirePermission(auth.OpConsultationRead), h.ConsultationHandler.List)
		consultations.GET("/:id",
			middleware.RequirePermission(auth.OpConsultationRead), h.ConsultationHandler.Get)
		consultations.PATCH("/:id/status",
			middleware.RequirePermission(auth.OpConsultationTransition), h.ConsultationHandler.Transition)
		consultations.PATCH("/:id/schedule",
			middleware.RequirePermission(auth.OpConsultationReschedule), h.ConsultationHandler.Reschedule)
		consultations.GET("/:id/note",
			middleware.RequirePermission(auth.OpNoteRead), h.ConsultationHandler.GetNote)

		// Payment-proof sub-flow
		consultations.POST("/:id/payment/proof",
			middleware.RequirePermission(auth.OpPaymentSubmit), h.PaymentHandler.SubmitProof)
		consultations.GET("/:id/payment/proof",
			middleware.RequirePermission(auth.OpPaymentRead), h.PaymentHandler.ProofImage)
		consultations.GET("/:id/payment/receipt",
			middleware.RequirePermission(auth.OpPaymentRead), h.PaymentHandler.GetReceipt)
		consultations.POST("/:id/payment/confirm",
			middleware.RequirePermission(auth.OpPaymentConfirm), h.PaymentHandler.Confirm)
		consultations.POST("/:id/payment/deny",
			middleware.RequirePermission(auth.OpPaymentDeny), h.PaymentHandler.Deny)
	}

	notifications := protected.Group("/notifications")
	notifications.Use(middleware.RequirePermission(auth.OpNotificationsRead))
	{
		notifications.GET("", h.NotificationHandler.List)
		notifications.GET("/unread-count", h.NotificationHandler.UnreadCount)
		notifications.PATCH("/:id/read", h.NotificationHandler.MarkRead)
	}

	protected.GET("/lawyers/:id/availability",
		middleware.RequirePermission(auth.OpAvailabilityRead), h.AvailabilityHandler.Get)
	protected.PUT("/availability",
		middleware.RequirePermission(auth.OpAvailabilityWrite), h.AvailabilityHandler.Upsert)

	affiliations := protected.Group("/affiliations")
	{
		affiliations.POST("",
			middleware.RequirePermission(auth.OpAffiliationRequest), h.AffiliationHandler.Request)
		affiliations.GET("",
			middleware.RequirePermission(auth.OpAffiliationDecide), h.AffiliationHandler.List)
		affiliations.PATCH("/:id",
			middleware.RequirePermission(auth.OpAffiliationDecide), h.AffiliationHandler.Decide)
	}
}
