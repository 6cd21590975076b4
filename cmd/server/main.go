package main

import (
	"log"
	"strings"

	"anoa.com/ramadhanpitstop/internal/bootstrap"
	"anoa.com/ramadhanpitstop/internal/config"
	"anoa.com/ramadhanpitstop/internal/handler"
	"anoa.com/ramadhanpitstop/internal/middleware"
	"anoa.com/ramadhanpitstop/internal/repository"
	"anoa.com/ramadhanpitstop/internal/service"
	"anoa.com/ramadhanpitstop/pkg/database"
	"anoa.com/ramadhanpitstop/pkg/moderation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedAdminUser(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, rate limiting disabled")
	}

	gate := moderation.NewGate()
	liveHub := service.NewLiveHub()

	participantRepo := repository.NewParticipantRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	userRepo := repository.NewUserRepository(db)

	scheduleService := service.NewScheduleService(scheduleRepo)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	registrationService := service.NewRegistrationService(participantRepo, scheduleService, gate)
	registrationHandler := handler.NewRegistrationHandler(registrationService, redisClient, cfg.RateLimitRegister)

	participantService := service.NewParticipantService(participantRepo, gate, liveHub)
	participantHandler := handler.NewParticipantHandler(participantService)

	groupService := service.NewGroupService(groupRepo, participantRepo)
	groupHandler := handler.NewGroupHandler(groupService)

	commentService := service.NewCommentService(commentRepo)
	commentHandler := handler.NewCommentHandler(commentService)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AdminUsername, cfg.SessionTTL)
	authHandler := handler.NewAuthHandler(authService, redisClient, cfg.RateLimitLogin, cfg.AppEnv == "production")

	exportService := service.NewExportService(participantRepo, groupRepo)
	exportHandler := handler.NewExportHandler(exportService)

	liveHandler := handler.NewLiveHandler(liveHub)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.POST("/register", registrationHandler.Register)
		api.GET("/schedule/status", scheduleHandler.Status)
		api.GET("/participants", participantHandler.ListPublic)
		api.GET("/groups", groupHandler.List)
		api.GET("/comments/shuffle", commentHandler.Shuffled)

		auth := api.Group("/auth")
		auth.POST("/login", authHandler.Login)
		auth.DELETE("/logout", authHandler.Logout)
	}

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.GET("/participants", participantHandler.ListAll)
		admin.POST("/participants", participantHandler.CreateWalkIn)
		admin.POST("/participants/clean-duplicates", participantHandler.CleanDuplicates)
		admin.POST("/check-in", participantHandler.CheckIn)

		admin.POST("/groups/generate", groupHandler.Generate)
		admin.POST("/groups/delete", groupHandler.DeleteAll)
		admin.POST("/groups/assign", groupHandler.Assign)

		admin.GET("/schedules", scheduleHandler.List)
		admin.POST("/schedules", scheduleHandler.Create)
		admin.PUT("/schedules/:id", scheduleHandler.Update)
		admin.PATCH("/schedules/:id/status", scheduleHandler.Toggle)
		admin.DELETE("/schedules/:id", scheduleHandler.Delete)

		admin.GET("/export", exportHandler.Participants)
		admin.GET("/live", liveHandler.Stream)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
