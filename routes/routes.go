package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/services"
)

// SetupRouter wires the HTTP surface. Role checks sit on the routes,
// not in the handlers, so the access matrix is readable in one place.
func SetupRouter(
	settings config.Settings,
	db *gorm.DB,
	tokens services.TokenIssuer,
	ac *controllers.AuthController,
	uc *controllers.UserController,
	rc *controllers.RoomController,
	oc *controllers.OfferController,
	bc *controllers.BookingController,
	sc *controllers.StatisticsController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := settings.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "stayhub-backend", "status": "ok"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := middleware.RequireAuth(tokens, db)
	staff := middleware.RequireRoles(models.RoleManager, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/me", authed, ac.Me)
		}

		users := api.Group("/users", authed)
		{
			users.GET("", staff, uc.GetUsers)
			users.GET("/:id", uc.GetUserByID)
			users.PUT("/:id", uc.UpdateUser)
			users.DELETE("/:id", adminOnly, uc.DeleteUser)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.GET("/:id/offers", rc.GetRoomOffers)
			rooms.POST("", authed, staff, rc.CreateRoom)
			rooms.PUT("/:id", authed, staff, rc.UpdateRoom)
			rooms.DELETE("/:id", authed, adminOnly, rc.DeleteRoom)
			rooms.POST("/:id/offers/:offerId", authed, staff, rc.AssignOffer)
			rooms.DELETE("/:id/offers/:offerId", authed, staff, rc.UnassignOffer)
		}

		offers := api.Group("/offers")
		{
			offers.GET("", oc.GetOffers)
			offers.GET("/active", oc.GetActiveOffers)
			offers.GET("/global", oc.GetGlobalOffers)
			offers.GET("/:id", oc.GetOfferByID)
			offers.POST("", authed, staff, oc.CreateOffer)
			offers.PUT("/:id", authed, staff, oc.UpdateOffer)
			offers.DELETE("/:id", authed, adminOnly, oc.DeleteOffer)
		}

		bookings := api.Group("/bookings", authed)
		{
			bookings.POST("", bc.CreateBooking)
			bookings.POST("/quote", bc.QuoteBooking)
			bookings.GET("/my", bc.GetMyBookings)
			bookings.GET("", staff, bc.GetBookings)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.POST("/:id/cancel", bc.CancelBooking)
			bookings.POST("/:id/extend", bc.ExtendBooking)
			bookings.DELETE("/:id", staff, bc.DeleteBooking)
			bookings.GET("/:id/invoice", bc.DownloadInvoice)
			bookings.GET("/room/:roomId/booked-dates", bc.GetBookedDates)
		}

		stats := api.Group("/statistics", authed, staff)
		{
			stats.GET("/dashboard", sc.GetDashboard)
			stats.GET("/occupancy", sc.GetOccupancy)
			stats.GET("/financial", sc.GetFinancial)
			stats.GET("/regular-customers", sc.GetRegularCustomers)
		}
	}

	return r
}
