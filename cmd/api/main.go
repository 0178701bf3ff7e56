package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	"github.com/BruksfildServices01/cat-hotel/internal/config"
	dbpkg "github.com/BruksfildServices01/cat-hotel/internal/db"
	"github.com/BruksfildServices01/cat-hotel/internal/events"
	"github.com/BruksfildServices01/cat-hotel/internal/logging"
	"github.com/BruksfildServices01/cat-hotel/internal/notify"
	"github.com/BruksfildServices01/cat-hotel/internal/routes"
	"github.com/BruksfildServices01/cat-hotel/internal/storage"
	"github.com/BruksfildServices01/cat-hotel/internal/timezone"
	"github.com/BruksfildServices01/cat-hotel/internal/validators"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.Open(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}()

	gin.SetMode(cfg.GinMode)
	if err := validators.RegisterBindings(); err != nil {
		log.WithError(err).Fatal("failed to register validators")
	}

	// ------------------------------
	// Image storage
	// ------------------------------
	var (
		store     storage.ImageStore
		uploadDir string
	)
	if cfg.UsesS3() {
		store, err = storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	} else {
		uploadDir = cfg.UploadDir
		store, err = storage.NewLocalStore(uploadDir, cfg.PublicBaseURL+"/uploads")
	}
	if err != nil {
		log.WithError(err).Fatal("failed to set up image storage")
	}

	// ------------------------------
	// Rate limiter backend
	// ------------------------------
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("invalid REDIS_URL")
		}
		rdb = redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable, rate limiting fails open")
		}
		defer rdb.Close()
	}

	// ------------------------------
	// Event sinks
	// ------------------------------
	sinks := []audit.Sink{audit.New(db)}

	var publisher *events.Publisher
	if cfg.RabbitMQURL != "" {
		publisher = events.NewPublisher(cfg.RabbitMQURL, cfg.BookingEventsQueue)
		sinks = append(sinks, publisher)
	}
	if cfg.SMTPHost != "" {
		sinks = append(sinks, notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom))
	}

	dispatcher := audit.NewDispatcher(log, sinks...)

	// ------------------------------
	// HTTP
	// ------------------------------
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"hotel_time": timezone.NowIn(cfg.HotelTimezone).Format(time.RFC3339),
		})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Log:       log,
		Audit:     dispatcher,
		Uploader:  storage.NewUploader(store, cfg.ImageMaxWidth),
		Redis:     rdb,
		UploadDir: uploadDir,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("server shutdown")
	}

	// drain queued events before the sinks go away
	dispatcher.Close()
	if publisher != nil {
		publisher.Close()
	}

	log.WithFields(logrus.Fields{"addr": cfg.Addr()}).Info("server stopped")
}
