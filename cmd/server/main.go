package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/eedept/dms-api/api/swagger"
	"github.com/eedept/dms-api/internal/handler"
	"github.com/eedept/dms-api/internal/middleware"
	"github.com/eedept/dms-api/internal/repository"
	"github.com/eedept/dms-api/internal/service"
	"github.com/eedept/dms-api/internal/store"
	"github.com/eedept/dms-api/pkg/cache"
	"github.com/eedept/dms-api/pkg/config"
	"github.com/eedept/dms-api/pkg/database"
	"github.com/eedept/dms-api/pkg/logger"
	corsmiddleware "github.com/eedept/dms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/eedept/dms-api/pkg/middleware/requestid"
)

// @title EE Department Management API
// @version 1.0.0
// @description Backend for the Electrical Engineering department: accounts, levels, sections, timetables, announcements, materials, room bookings and attendance.
// @BasePath /
// @schemes http

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

	mongoClient, mongoDB, err := database.NewMongo(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to mongodb", "error", err)
	}
	defer mongoClient.Disconnect(context.Background()) //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	docStore := store.New(mongoDB, logr)
	docStore.SetQueryObserver(metricsSvc.ObserveDBQuery)

	var cacheRepo *repository.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, list cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(docStore)
	levelRepo := repository.NewLevelRepository(docStore)
	sectionRepo := repository.NewSectionRepository(docStore)
	timetableRepo := repository.NewTimetableRepository(docStore)
	announcementRepo := repository.NewAnnouncementRepository(docStore)
	materialRepo := repository.NewMaterialRepository(docStore)
	bookingRepo := repository.NewBookingRepository(docStore)
	attendanceRepo := repository.NewAttendanceRepository(docStore)

	userSvc := service.NewUserService(userRepo, sectionRepo, validate, logr)
	academicSvc := service.NewAcademicService(levelRepo, sectionRepo, validate, logr)
	timetableSvc := service.NewTimetableService(timetableRepo, sectionRepo, validate, logr)
	announcementSvc := service.NewAnnouncementService(announcementRepo, nil, metricsSvc, cfg.Cache.TTL, validate, logr)
	if cacheRepo != nil {
		announcementSvc = service.NewAnnouncementService(announcementRepo, cacheRepo, metricsSvc, cfg.Cache.TTL, validate, logr)
	}
	materialSvc := service.NewMaterialService(materialRepo, validate, logr)
	bookingSvc := service.NewBookingService(bookingRepo, validate, logr)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, validate, logr)

	userHandler := handler.NewUserHandler(userSvc)
	academicHandler := handler.NewAcademicHandler(academicSvc)
	timetableHandler := handler.NewTimetableHandler(timetableSvc)
	announcementHandler := handler.NewAnnouncementHandler(announcementSvc)
	materialHandler := handler.NewMaterialHandler(materialSvc)
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	schemaHandler := handler.NewSchemaHandler()
	healthHandler := handler.NewHealthHandler(docStore, nil)
	if cacheRepo != nil {
		healthHandler = handler.NewHealthHandler(docStore, cacheRepo)
	}
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/", healthHandler.Root)
	r.GET("/test", healthHandler.Test)
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/schema", schemaHandler.Get)

	r.POST("/auth/register", userHandler.Register)
	r.GET("/users", userHandler.List)
	r.PATCH("/users/:id/approve", userHandler.Approve)
	r.PATCH("/users/:id/section", userHandler.AssignSection)

	r.POST("/levels", academicHandler.CreateLevel)
	r.GET("/levels", academicHandler.ListLevels)
	r.POST("/sections", academicHandler.CreateSection)
	r.GET("/sections", academicHandler.ListSections)

	r.POST("/timetable", timetableHandler.Create)
	r.GET("/timetable", timetableHandler.List)

	r.POST("/announcements", announcementHandler.Create)
	r.GET("/announcements", announcementHandler.List)

	r.POST("/materials", materialHandler.Create)
	r.GET("/materials", materialHandler.List)

	r.POST("/bookings", bookingHandler.Create)
	r.PATCH("/bookings/:id/status", bookingHandler.SetStatus)
	r.GET("/bookings", bookingHandler.List)

	r.POST("/attendance", attendanceHandler.Create)
	r.GET("/attendance", attendanceHandler.List)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
