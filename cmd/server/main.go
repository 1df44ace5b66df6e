package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"jogging_tracker/internal/config"
	"jogging_tracker/internal/handler"
	"jogging_tracker/internal/middleware"
	"jogging_tracker/internal/repository"
	"jogging_tracker/internal/service"
	"jogging_tracker/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours := int64(1) // tokens live one hour
	if jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS"); jwtExpHoursStr != "" {
		jwtExpHours, err = strconv.ParseInt(jwtExpHoursStr, 10, 64)
		if err != nil || jwtExpHours <= 0 {
			log.Fatalf("Invalid JWT_EXPIRATION_HOURS: %q", jwtExpHoursStr)
		}
	}

	// Hashing cost misconfiguration is a startup failure, never a per-request one
	bcryptCost := bcrypt.DefaultCost
	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		bcryptCost, err = strconv.Atoi(costStr)
		if err != nil || bcryptCost <= 0 {
			log.Fatalf("Invalid BCRYPT_COST: %q", costStr)
		}
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)
	// Process-local: a restart clears the blacklist, so every unexpired token
	// becomes valid again until its natural expiry.
	blacklist := utils.NewTokenBlacklist()

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	joggingRepo := repository.NewJoggingRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil, blacklist, bcryptCost)
	joggingService := service.NewJoggingService(joggingRepo)
	userService := service.NewUserService(userRepo, bcryptCost)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	joggingHandler := handler.NewJoggingHandler(joggingService)
	userHandler := handler.NewUserHandler(userService)

	// --- Setup Gin Router ---
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil, blacklist)
	staffMW := middleware.StaffMiddleware()

	// --- Register Routes ---
	authHandler.RegisterAuthRoutes(router, jwtAuthMW)
	joggingHandler.RegisterJoggingRoutes(router, jwtAuthMW)
	userHandler.RegisterUserRoutes(router, jwtAuthMW, staffMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
