package server

import (
	"context"
	"log"
	"strings"
	"time"

	"anoa.com/yayasanalhikmah/internal/config"
	"anoa.com/yayasanalhikmah/internal/handler"
	"anoa.com/yayasanalhikmah/internal/middleware"
	"anoa.com/yayasanalhikmah/internal/repository"
	"anoa.com/yayasanalhikmah/internal/service"
	"anoa.com/yayasanalhikmah/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	imageStorage, err := storage.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		// Photos are optional in development; CRUD still works without them.
		log.Printf("cloudinary storage disabled: %v", err)
		imageStorage = nil
	}

	var meiliClient meilisearch.ServiceManager
	if cfg.MeiliSearchHost != "" {
		meiliClient = meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	}
	searchSvc := service.NewSearchService(meiliClient)

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	graduateRepo := repository.NewGraduateRepository(db)
	ppdbRepo := repository.NewPPDBRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)

	notificationSvc := service.NewNotificationService(notificationRepo, userRepo, redisClient)
	authSvc := service.NewAuthService(userRepo, notificationSvc, cfg.JWTSecret, cfg.JWTTTL)
	userAdminSvc := service.NewUserAdminService(userRepo)
	resetSvc := service.NewPasswordResetService(resetRepo, userRepo, cfg.ResetTokenTTL)

	studentSvc := service.NewStudentService(studentRepo, searchSvc, imageStorage)
	teacherSvc := service.NewTeacherService(teacherRepo, searchSvc, imageStorage)
	graduateSvc := service.NewGraduateService(graduateRepo, searchSvc, imageStorage)

	ppdbSvc := service.NewPPDBService(ppdbRepo, searchSvc, notificationSvc)
	settingsSvc := service.NewSettingsService(settingsRepo)
	messageSvc := service.NewMessageService(messageRepo, settingsSvc, notificationSvc)
	visitorSvc := service.NewVisitorService(visitorRepo, redisClient)
	statSvc := service.NewStatService(studentRepo, teacherRepo, graduateRepo, userRepo, ppdbRepo, visitorSvc)

	if redisClient != nil {
		go visitorSvc.StartSyncWorker(context.Background())
	}

	rateLimits := handler.NewRateLimitConfig(cfg.RateLimitPPDB, cfg.RateLimitMessage)

	authHandler := handler.NewAuthHandler(authSvc, resetSvc)
	userHandler := handler.NewUserHandler(userAdminSvc, resetSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	graduateHandler := handler.NewGraduateHandler(graduateSvc)
	ppdbHandler := handler.NewPPDBHandler(ppdbSvc, redisClient, rateLimits)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	messageHandler := handler.NewMessageHandler(messageSvc, settingsSvc, redisClient, rateLimits)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, redisClient)
	statHandler := handler.NewStatHandler(statSvc, visitorSvc)
	uploadHandler := handler.NewUploadHandler(imageStorage, cfg.CloudinaryUploadFolder)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/password-reset", authHandler.RequestPasswordReset)
		auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
	}

	api.GET("/settings", settingsHandler.GetPublic)
	api.GET("/programs", settingsHandler.ListPrograms)
	api.GET("/students", studentHandler.List)
	api.GET("/teachers", teacherHandler.List)
	api.GET("/graduates", graduateHandler.List)
	api.GET("/ppdb/settings", ppdbHandler.GetSettings)
	api.GET("/ppdb/form-fields", ppdbHandler.GetFormFields)
	api.POST("/ppdb/registrations", ppdbHandler.Submit)
	api.GET("/messages", messageHandler.ListPublished)
	api.POST("/messages", messageHandler.Submit)
	api.POST("/visits", statHandler.RecordVisit)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/notifications", notificationHandler.List)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.Stream)

		admin := protected.Group("/admin")

		users := admin.Group("/users")
		users.Use(authMiddleware.RequirePermission("can_manage_users"))
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.GetAllUsers)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.POST("/:id/approve", userHandler.ApproveUser)
			users.POST("/:id/reject", userHandler.RejectUser)
			users.GET("/:id/permissions", userHandler.GetPermissions)
			users.PUT("/:id/permissions", userHandler.SetPermissions)
		}

		resets := admin.Group("/password-resets")
		resets.Use(authMiddleware.RequirePermission("can_manage_users"))
		{
			resets.GET("", userHandler.ListPasswordResets)
			resets.POST("/:id/approve", userHandler.ApprovePasswordReset)
			resets.POST("/:id/reject", userHandler.RejectPasswordReset)
		}

		students := admin.Group("/students")
		students.Use(authMiddleware.RequirePermission("can_edit_students"))
		{
			students.GET("", studentHandler.List)
			students.GET("/:id", studentHandler.Get)
			students.POST("", studentHandler.Create)
			students.PUT("/:id", studentHandler.Update)
			students.DELETE("/:id", studentHandler.Delete)
		}

		teachers := admin.Group("/teachers")
		teachers.Use(authMiddleware.RequirePermission("can_edit_teachers"))
		{
			teachers.GET("", teacherHandler.List)
			teachers.GET("/:id", teacherHandler.Get)
			teachers.POST("", teacherHandler.Create)
			teachers.PUT("/:id", teacherHandler.Update)
			teachers.DELETE("/:id", teacherHandler.Delete)
		}

		graduates := admin.Group("/graduates")
		graduates.Use(authMiddleware.RequirePermission("can_edit_graduates"))
		{
			graduates.GET("", graduateHandler.List)
			graduates.GET("/:id", graduateHandler.Get)
			graduates.POST("", graduateHandler.Create)
			graduates.PUT("/:id", graduateHandler.Update)
			graduates.DELETE("/:id", graduateHandler.Delete)
		}

		ppdb := admin.Group("/ppdb")
		ppdb.Use(authMiddleware.RequirePermission("can_manage_ppdb"))
		{
			ppdb.PUT("/settings", ppdbHandler.SaveSettings)
			ppdb.GET("/registrations", ppdbHandler.ListRegistrations)
			ppdb.POST("/registrations/:id/approve", ppdbHandler.ApproveRegistration)
			ppdb.POST("/registrations/:id/reject", ppdbHandler.RejectRegistration)
			ppdb.PUT("/form-fields", ppdbHandler.SaveFormFields)
		}

		website := admin.Group("/website")
		website.Use(authMiddleware.RequirePermission("can_edit_website"))
		{
			website.PUT("/settings", settingsHandler.Save)
			website.PUT("/programs/:program", settingsHandler.UpdateProgram)
			website.POST("/uploads/:entity", uploadHandler.UploadPhoto)
		}

		messages := admin.Group("/messages")
		messages.Use(authMiddleware.RequirePermission("can_edit_website"))
		{
			messages.GET("", messageHandler.ListAll)
			messages.PUT("/:id/publish", messageHandler.SetPublished)
			messages.DELETE("/:id", messageHandler.Delete)
			messages.GET("/settings", messageHandler.GetSettings)
			messages.PUT("/settings", messageHandler.SaveSettings)
		}

		stats := admin.Group("/stats")
		stats.Use(authMiddleware.RequirePermission("can_view_analytics"))
		{
			stats.GET("/overview", statHandler.Overview)
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
