package server

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"rokto.app/bloodlink/internal/config"
	"rokto.app/bloodlink/internal/handler"
	"rokto.app/bloodlink/internal/middleware"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/payment"
	"rokto.app/bloodlink/internal/repository"
	"rokto.app/bloodlink/internal/service"
	"rokto.app/bloodlink/pkg/storage"
	"rokto.app/bloodlink/pkg/validator"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	validator.RegisterCustomValidations()

	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	fundingRepo := repository.NewFundingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	var meiliClient meilisearch.ServiceManager
	if cfg.MeiliSearchHost != "" {
		meiliClient = meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	} else {
		log.Println("MEILISEARCH_HOST not set, donor index disabled")
	}
	searchSvc := service.NewSearchService(meiliClient, userRepo)

	var gateway payment.Gateway
	if cfg.StripeSecretKey != "" {
		gateway, err = payment.NewStripeGateway()
		if err != nil {
			log.Fatalf("failed to initialize stripe gateway: %v", err)
		}
	} else {
		log.Println("STRIPE_SECRET_KEY not set, funding intents disabled")
	}

	notificationSvc := service.NewNotificationService(notificationRepo, redisClient)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, redisClient)

	authSvc := service.NewAuthService(userRepo, searchSvc, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handler.NewAuthHandler(authSvc)

	profileSvc := service.NewProfileService(userRepo, imageStorage, searchSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)

	adminSvc := service.NewAdminService(userRepo, searchSvc)
	adminHandler := handler.NewAdminHandler(adminSvc)

	requestSvc := service.NewRequestService(requestRepo, userRepo, notificationSvc)
	requestHandler := handler.NewRequestHandler(requestSvc)

	blogSvc := service.NewBlogService(blogRepo, userRepo)
	blogHandler := handler.NewBlogHandler(blogSvc)

	fundingSvc := service.NewFundingService(fundingRepo, userRepo, gateway)
	fundingHandler := handler.NewFundingHandler(fundingSvc)

	dashboardSvc := service.NewDashboardService(userRepo, requestRepo, blogRepo, fundingRepo, redisClient, cfg.StatsCacheTTL)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)

	donorHandler := handler.NewDonorHandler(searchSvc)
	locationHandler := handler.NewLocationHandler()
	uploadHandler := handler.NewUploadHandler(imageStorage)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/api/notifications/ws"})))

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	api.GET("/requests/pending", requestHandler.GetPendingRequests)
	api.GET("/blogs", blogHandler.GetPublishedBlogs)
	api.GET("/blogs/:id", blogHandler.GetBlog)
	api.GET("/locations/districts", locationHandler.GetDistricts)
	api.GET("/locations/districts/:id/upazilas", locationHandler.GetUpazilas)
	api.GET("/donors/search", donorHandler.SearchDonors)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	protected.Use(middleware.Idempotency(redisClient, cfg.IdempotencyTTL))
	{
		protected.GET("/auth/role", authHandler.GetRole)

		protected.GET("/profile/me", profileHandler.GetCurrentProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		protected.POST("/requests", requestHandler.CreateRequest)
		protected.GET("/requests/me", requestHandler.GetMyRequests)
		protected.GET("/requests/:id", requestHandler.GetRequest)
		protected.POST("/requests/:id/claim", requestHandler.ClaimRequest)
		protected.PUT("/requests/:id", requestHandler.UpdateRequest)
		protected.PATCH("/requests/:id/status", requestHandler.UpdateRequestStatus)
		protected.DELETE("/requests/:id", requestHandler.DeleteRequest)

		protected.POST("/fundings/intent", fundingHandler.CreateIntent)
		protected.POST("/fundings", fundingHandler.RecordFunding)
		protected.GET("/fundings", fundingHandler.GetFundings)

		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)

		protected.GET("/dashboard/donor", dashboardHandler.GetDonorStats)
		protected.GET("/donors/search-token", donorHandler.GetSearchToken)

		// Volunteer and admin routes
		staff := protected.Group("")
		staff.Use(authMiddleware.RequireRole(model.RoleVolunteer, model.RoleAdmin))
		{
			staff.GET("/requests", requestHandler.GetAllRequests)
			staff.GET("/dashboard/volunteer", dashboardHandler.GetVolunteerStats)

			staff.POST("/blogs", blogHandler.CreateBlog)
			staff.GET("/blogs/manage", blogHandler.GetAllBlogs)
			staff.PUT("/blogs/:id", blogHandler.UpdateBlog)
			staff.PATCH("/blogs/:id/publish", blogHandler.PublishBlog)
			staff.PATCH("/blogs/:id/toggle", blogHandler.ToggleBlogStatus)
			staff.POST("/uploads", uploadHandler.UploadThumbnail)
		}

		// Admin routes
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.GET("/users", adminHandler.GetAllUsers)
			adminGroup.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)
			adminGroup.PATCH("/users/:id/role", adminHandler.UpdateUserRole)
		}

		adminOnly := protected.Group("")
		adminOnly.Use(authMiddleware.RequireAdmin())
		{
			adminOnly.GET("/dashboard/admin", dashboardHandler.GetAdminStats)
			adminOnly.DELETE("/blogs/:id", blogHandler.DeleteBlog)
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

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, origins []string) {
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
