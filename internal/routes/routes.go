package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	"github.com/BruksfildServices01/cat-hotel/internal/config"
	"github.com/BruksfildServices01/cat-hotel/internal/handlers"
	infraRepo "github.com/BruksfildServices01/cat-hotel/internal/infra/repository"
	"github.com/BruksfildServices01/cat-hotel/internal/middleware"
	"github.com/BruksfildServices01/cat-hotel/internal/storage"
	ucBooking "github.com/BruksfildServices01/cat-hotel/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/cat-hotel/internal/usecase/catalog"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *logrus.Logger
	Audit    *audit.Dispatcher
	Uploader *storage.Uploader
	// Redis is optional; nil disables rate limiting.
	Redis *redis.Client
	// UploadDir is served under /uploads when images live on local disk.
	UploadDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	db, cfg := d.DB, d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins...))

	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, d.Audit)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, d.Audit)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, d.Audit)
	recordCatStatusUC := ucBooking.NewRecordCatStatus(bookingRepo, d.Audit)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	listCatStatusesUC := ucBooking.NewListCatStatuses(bookingRepo)
	availableRoomsUC := ucBooking.NewListAvailableRooms(bookingRepo)
	checkRoomUC := ucBooking.NewCheckRoomAvailability(bookingRepo)

	// ======================================================
	// USE CASES: CATALOG
	// ======================================================
	deleteServiceUC := ucCatalog.NewDeleteService(catalogRepo)
	deleteFoodUC := ucCatalog.NewDeleteFood(catalogRepo)
	addRoomImageUC := ucCatalog.NewAddRoomImage(catalogRepo)
	removeRoomImageUC := ucCatalog.NewRemoveRoomImage(catalogRepo)
	setPrimaryImageUC := ucCatalog.NewSetPrimaryImage(catalogRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, d.Audit)
	meHandler := handlers.NewMeHandler(db, d.Audit)
	catHandler := handlers.NewCatHandler(db, d.Audit)

	roomHandler := handlers.NewRoomHandler(db, d.Audit, availableRoomsUC, checkRoomUC)
	roomTypeHandler := handlers.NewRoomTypeHandler(db, d.Audit, d.Uploader)
	roomImageHandler := handlers.NewRoomImageHandler(
		db,
		d.Audit,
		d.Uploader,
		addRoomImageUC,
		removeRoomImageUC,
		setPrimaryImageUC,
	)
	catalogHandler := handlers.NewCatalogHandler(db, d.Audit, d.Uploader, deleteServiceUC, deleteFoodUC)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		getBookingUC,
		listBookingsUC,
	)

	adminHandler := handlers.NewAdminHandler(
		db,
		listBookingsUC,
		updateStatusUC,
		recordCatStatusUC,
		listCatStatusesUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg.HotelTimezone)

	auth := middleware.AuthMiddleware(cfg)
	limiter := middleware.RateLimit(d.Redis, cfg.RateLimitPerMinute, d.Log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		{
			authAPI.POST("/register", limiter, authHandler.Register)
			authAPI.POST("/login", limiter, authHandler.Login)

			authAPI.GET("/profile", auth, meHandler.GetMe)
			authAPI.PUT("/profile", auth, meHandler.UpdateMe)
			authAPI.PUT("/change-password", auth, limiter, meHandler.ChangePassword)
		}

		users := api.Group("/users", auth)
		{
			users.GET("/profile", meHandler.GetMe)
			users.PUT("/profile", meHandler.UpdateMe)
			users.PUT("/change-password", limiter, meHandler.ChangePassword)
		}

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		rooms := api.Group("/rooms")
		{
			rooms.GET("", roomHandler.List)
			rooms.GET("/available", roomHandler.Available)
			rooms.GET("/types", roomTypeHandler.List)
			rooms.GET("/types/:id", roomTypeHandler.Get)
			rooms.GET("/:id", roomHandler.Get)
			rooms.GET("/:id/availability", roomHandler.Availability)
		}

		api.GET("/services", catalogHandler.ListServices)
		api.GET("/services/:id", catalogHandler.GetService)
		api.GET("/foods", catalogHandler.ListFoods)
		api.GET("/foods/:id", catalogHandler.GetFood)

		// ------------------------------
		// CUSTOMER
		// ------------------------------
		cats := api.Group("/cats", auth)
		{
			cats.GET("", catHandler.List)
			cats.POST("", catHandler.Create)
			cats.GET("/:id", catHandler.Get)
			cats.PUT("/:id", catHandler.Update)
			cats.DELETE("/:id", catHandler.Delete)
		}

		bookings := api.Group("/bookings", auth)
		{
			bookings.GET("", bookingHandler.List)
			bookings.POST("", bookingHandler.Create)
			bookings.GET("/:id", bookingHandler.Get)
			bookings.PUT("/:id/cancel", bookingHandler.Cancel)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin", auth, middleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)

			admin.GET("/bookings", adminHandler.ListBookings)
			admin.PUT("/bookings/:id/status", adminHandler.UpdateBookingStatus)
			admin.POST("/bookings/:id/cat-status", adminHandler.RecordCatStatus)
			admin.GET("/bookings/:id/cat-status", adminHandler.ListCatStatuses)

			admin.POST("/rooms", roomHandler.Create)
			admin.PUT("/rooms/:id", roomHandler.Update)
			admin.PUT("/rooms/:id/status", roomHandler.UpdateStatus)
			admin.DELETE("/rooms/:id", roomHandler.Delete)

			admin.POST("/room-types", roomTypeHandler.Create)
			admin.PUT("/room-types/:id", roomTypeHandler.Update)
			admin.DELETE("/room-types/:id", roomTypeHandler.Delete)
			admin.POST("/room-types/:id/images", roomImageHandler.Upload)
			admin.GET("/room-types/:id/images", roomImageHandler.List)

			admin.DELETE("/room-images/:id", roomImageHandler.Delete)
			admin.PUT("/room-images/:id/set-primary", roomImageHandler.SetPrimary)

			admin.POST("/services", catalogHandler.CreateService)
			admin.PUT("/services/:id", catalogHandler.UpdateService)
			admin.DELETE("/services/:id", catalogHandler.DeleteService)

			admin.POST("/foods", catalogHandler.CreateFood)
			admin.PUT("/foods/:id", catalogHandler.UpdateFood)
			admin.POST("/foods/:id/image", catalogHandler.UploadFoodImage)
			admin.DELETE("/foods/:id", catalogHandler.DeleteFood)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
