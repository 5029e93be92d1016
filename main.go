package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
}

func setupRouter(client *mongo.Client) *gin.Engine {
	router := gin.Default()

	// Repositories share the one connection pool opened in main.
	userRepo := repository.GetUserRepo(client)
	tagRepo := repository.GetTagRepo(client)
	contentRepo := repository.GetContentRepo(client)

	authService := &usecase.AuthService{Users: userRepo}
	contentService := &usecase.ContentService{
		Contents: contentRepo,
		Tags:     tagRepo,
		Users:    userRepo,
	}
	shareService := &usecase.ShareService{
		Users:    userRepo,
		Contents: contentRepo,
		Tags:     tagRepo,
	}

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBodySize))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/v1/health", func(c *gin.Context) {
		handler.HealthHandler(c, client)
	})

	api := router.Group("/api/v1")

	// Public routes
	api.POST("/signup", func(c *gin.Context) {
		handler.SignupHandler(c, authService)
	})
	api.POST("/signin", func(c *gin.Context) {
		handler.SigninHandler(c, authService)
	})
	api.GET("/brain/:shareLink", func(c *gin.Context) {
		handler.SharedContentHandler(c, shareService)
	})

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/signout", handler.SignoutHandler)

		protected.POST("/content", func(c *gin.Context) {
			handler.AddContentHandler(c, contentService)
		})
		protected.GET("/content", func(c *gin.Context) {
			handler.ListContentHandler(c, contentService)
		})
		protected.DELETE("/content", func(c *gin.Context) {
			handler.DeleteContentHandler(c, contentService)
		})

		protected.POST("/addtag", func(c *gin.Context) {
			handler.AddTagHandler(c, contentService)
		})
		protected.GET("/tags", func(c *gin.Context) {
			handler.ListTagsHandler(c, contentService)
		})

		protected.POST("/brain/share", func(c *gin.Context) {
			handler.EnableSharingHandler(c, shareService)
		})
		protected.PUT("/brain/share", func(c *gin.Context) {
			handler.DisableSharingHandler(c, shareService)
		})
	}

	return router
}

func main() {
	ctx := context.Background()

	// A failed initial connection is the one fatal persistence error.
	client, err := utils.ConnectMongo(ctx, os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if err := repository.SetupIndexes(client.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Token blacklist is optional; without Redis signout is a no-op.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		services.TokenBlacklist = blacklist
		defer blacklist.Close()
	}

	router := setupRouter(client)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
