package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"purenote-backend-go/internal/api"
	"purenote-backend-go/internal/config"
	"purenote-backend-go/internal/core"
	"purenote-backend-go/internal/db"
	"purenote-backend-go/internal/middleware"
	"purenote-backend-go/internal/payments"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file.")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.",
		zap.Bool("paymentConfigured", appConfig.PaymentConfigured()))

	// Firebase Admin SDK: Firestore (the key-value store) and Auth (the
	// identity provider) share one app initialization.
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase Admin SDK", zap.Error(err))
	}

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil || firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase clients are nil after initialization. Application cannot start.")
	}
	defer firestoreClient.Close()

	// Storage layer: one flat key-value namespace, typed per-record repositories.
	kvStore := db.NewKVStore(firestoreClient)
	reviewRepo := db.NewReviewRepository(kvStore)
	planRepo := db.NewPlanRepository(kvStore)
	donationRepo := db.NewDonationRepository(kvStore)

	// Payment processor client. May be unconfigured; checkout requests then
	// fail individually instead of blocking startup.
	paymentClient := payments.NewClient(appConfig.StripeSecretKey, appConfig.StripeWebhookSecret)

	// Core services.
	authService := core.NewAuthService(firebaseAuthClient, appConfig.FirebaseWebAPIKey, zapLogger)
	reviewService := core.NewReviewService(reviewRepo, zapLogger)
	planService := core.NewPlanService(planRepo, zapLogger)
	donationService := core.NewDonationService(donationRepo, paymentClient, appConfig.DefaultOrigin, zapLogger)
	zapLogger.Info("Core services initialized successfully.")

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// Order matters: log first, recover second, then CORS.
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware(appConfig))

	api.SetupRoutes(
		router,
		zapLogger,
		authService,
		reviewService,
		planService,
		donationService,
		paymentClient,
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Graceful shutdown: give in-flight requests (webhook writes especially)
	// time to finish before the process exits.
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
