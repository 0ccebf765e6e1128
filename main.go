package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file when present. Every
	// setting has a development default, so a missing file is fine.
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Println("No .env file found, using environment and defaults")
	}

	utils.InitValidator()
}

// setupStores connects to MongoDB and falls back to the in-memory store
// when the connection fails outside of release mode. In release mode a
// store failure aborts startup.
func setupStores(cfg config.Config) (repository.UsersStore, repository.NotesStore) {
	client, err := repository.NewMongoClient(cfg.Database)
	if err != nil {
		if gin.Mode() == gin.ReleaseMode {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		log.Printf("WARNING: %v", err)
		log.Println("WARNING: falling back to non-durable in-memory store (development only)")
		return repository.NewMemoryUsersRepo(), repository.NewMemoryNotesRepo()
	}

	if err := repository.SetupIndexes(client.Database(cfg.Database.DatabaseName)); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	return repository.GetUsersRepo(client, cfg.Database.DatabaseName),
		repository.GetNotesRepo(client, cfg.Database.DatabaseName)
}

func setupRouter(users *usecase.UserService, notesService *usecase.NotesService, maxBodyBytes int64) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxBodyBytes))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/signup", func(c *gin.Context) {
				handler.SignupHandler(c, users)
			})
			auth.POST("/signin", func(c *gin.Context) {
				handler.SigninHandler(c, users)
			})
		}

		public.GET("/health", handler.HealthCheckHandler)
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(users))
	{
		protected.GET("/auth/me", handler.CurrentUserHandler)

		protected.DELETE("/user", func(c *gin.Context) {
			handler.DeleteUserHandler(c, users)
		})

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.GetUserNotesHandler(c, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
		}
	}

	return router
}

func main() {
	cfg := config.Load()

	usersRepo, notesRepo := setupStores(cfg)

	tokens := services.NewTokenManager(cfg.JWTSecret, cfg.TokenLifetime)

	userService := &usecase.UserService{
		UsersRepo: usersRepo,
		NotesRepo: notesRepo,
		Tokens:    tokens,
	}
	notesService := &usecase.NotesService{
		NotesRepo: notesRepo,
	}

	router := setupRouter(userService, notesService, cfg.MaxBodyBytes)

	stopMetrics := make(chan struct{})
	go utils.CollectSystemMetrics(30*time.Second, stopMetrics)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	close(stopMetrics)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server shutdown complete")
}
