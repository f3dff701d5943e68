package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"purenote-backend-go/internal/core"
	"purenote-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes. Global middleware (logging,
// recovery, CORS) is expected to be applied to the router before this is
// called, typically in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authService core.AuthService,
	reviewService core.ReviewService,
	planService core.PlanService,
	donationService core.DonationService,
	paymentClient core.PaymentClient,
) {
	authMW := middleware.NewAuthMiddleware(authService)

	authHandler := NewAuthHandler(authService)
	reviewHandler := NewReviewHandler(reviewService)
	planHandler := NewPlanHandler(planService)
	donationHandler := NewDonationHandler(donationService)

	// Health check. Reports whether the payment processor credential is
	// present so the client can hide the donation flow when it is not.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:            "ok",
			PaymentConfigured: paymentClient.Configured(),
			Timestamp:         time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Identity pass-throughs.
	router.POST("/signin", authHandler.SignIn)
	router.POST("/signup", authHandler.SignUp)
	router.GET("/profile", authMW.RequireAuth(), authHandler.Profile)

	// Reviews. Listing is public; create and delete require the author's token.
	router.GET("/reviews", reviewHandler.List)
	router.POST("/reviews", authMW.RequireAuth(), reviewHandler.Create)
	router.DELETE("/reviews/:id", authMW.RequireAuth(), reviewHandler.Delete)

	// Plans. Reads are anonymous-friendly and default to free.
	router.GET("/user-plan", authMW.OptionalAuth(), planHandler.Get)
	router.POST("/update-plan", authMW.RequireAuth(), planHandler.Update)

	// Donations. The webhook endpoint carries no bearer auth: the processor
	// authenticates via its event signature.
	router.POST("/create-checkout", donationHandler.CreateCheckout)
	router.POST("/payment-webhook", donationHandler.Webhook)

	logger.Info("API routes configured successfully.")
}
