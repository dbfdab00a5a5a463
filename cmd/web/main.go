package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/p-virex/stepik-chapter-4/internal/handler"
	appmiddleware "github.com/p-virex/stepik-chapter-4/internal/middleware"
	"github.com/p-virex/stepik-chapter-4/internal/repository"
	"github.com/p-virex/stepik-chapter-4/internal/service"
	"github.com/p-virex/stepik-chapter-4/pkg/cache"
	"github.com/p-virex/stepik-chapter-4/pkg/config"
	"github.com/p-virex/stepik-chapter-4/pkg/database"
	"github.com/p-virex/stepik-chapter-4/pkg/logger"
	reqidmiddleware "github.com/p-virex/stepik-chapter-4/pkg/middleware/requestid"
	"github.com/p-virex/stepik-chapter-4/pkg/response"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The goals index cache is an optimisation; the site works without it.
		logr.Sugar().Warnw("redis unavailable, goals index served from postgres", "error", err)
		redisClient = nil
	}

	teacherRepo := repository.NewTeacherRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close()

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	catalogSvc := service.NewCatalogService(teacherRepo, goalRepo, cacheRepo, cfg.Catalog.GoalsCacheTTL, metricsSvc, logr)
	bookingSvc := service.NewBookingService(bookingRepo, validate, logr)
	requestSvc := service.NewRequestService(requestRepo, goalRepo, validate, logr)

	pages := handler.NewPageHandler(catalogSvc, cfg.Catalog.SampleSize)
	bookings := handler.NewBookingHandler(bookingSvc)
	requests := handler.NewRequestHandler(requestSvc, catalogSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		response.ServerError(c)
	}))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(appmiddleware.Metrics(metricsSvc))

	r.LoadHTMLGlob(cfg.Catalog.TemplatesGlob)
	r.NoRoute(response.NotFound)

	r.GET("/", pages.Index)
	r.GET("/all/", pages.All)
	r.GET("/goals/:goalID/", pages.Goal)
	r.GET("/profiles/:teacherID/", pages.Profile)
	r.GET("/booking/:teacherID/:weekday/:timeSlot/", pages.BookingForm)

	r.GET("/request/", requests.Form)
	r.GET("/request_done/", requests.Form)
	r.POST("/request_done/", requests.Submit)
	r.GET("/booking_done/", requests.Form)
	r.POST("/booking_done/", bookings.Submit)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
