package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/domain"
	"stayhub-backend/repositories"
	"stayhub-backend/routes"
	"stayhub-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	gin.SetMode(settings.GinMode)

	db, err := config.ConnectDatabase(settings)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	if settings.SeedOnStart {
		if err := config.SeedDatabase(db, settings); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
		log.Println("✅ Seed data ensured.")
	}

	// Pricing strategy, assembled from settings
	var pricing domain.PricingStrategy = domain.StandardPricing{}
	if settings.LongStayEnabled {
		pricing = domain.LongStayDiscount{
			Base:            pricing,
			ThresholdNights: settings.LongStayNights,
			Rate:            settings.LongStayRate,
		}
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	offerRepo := repositories.NewOfferRepository(db)

	// Services
	tokens := services.NewTokenIssuer(settings)
	authService := services.NewAuthService(userRepo, tokens, settings.BcryptCost)
	userService := services.NewUserService(userRepo, settings.BcryptCost)
	roomService := services.NewRoomService(roomRepo, offerRepo)
	offerService := services.NewOfferService(offerRepo)
	bookingService := services.NewBookingService(db, pricing)
	invoiceService := services.NewInvoiceService(db)
	statsService := services.NewStatisticsService(db)

	// Controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	roomController := controllers.NewRoomController(roomService)
	offerController := controllers.NewOfferController(offerService)
	bookingController := controllers.NewBookingController(bookingService, invoiceService)
	statsController := controllers.NewStatisticsController(statsService)

	router := routes.SetupRouter(
		settings,
		db,
		tokens,
		authController,
		userController,
		roomController,
		offerController,
		bookingController,
		statsController,
	)

	addr := ":" + settings.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
