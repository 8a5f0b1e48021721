package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"healthcare-coordination-server/internal/config"
	"healthcare-coordination-server/internal/database"
	"healthcare-coordination-server/internal/handler"
	"healthcare-coordination-server/internal/repository"
	"healthcare-coordination-server/internal/service"
	"healthcare-coordination-server/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize database connection and run migrations
	db := database.Connect(cfg)

	// 3. Initialize repositories
	hospitalRepo := repository.NewHospitalRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	connectionRepo := repository.NewConnectionRepo(db)
	transferRepo := repository.NewTransferRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 4. Initialize services
	hospitalService := service.NewHospitalService(hospitalRepo, connectionRepo, transferRepo, auditRepo)
	doctorService := service.NewDoctorService(doctorRepo, connectionRepo, auditRepo)
	patientService := service.NewPatientService(patientRepo, connectionRepo, auditRepo)
	connectionService := service.NewConnectionService(connectionRepo, patientRepo, doctorRepo, hospitalRepo, auditRepo)
	transferService := service.NewTransferService(transferRepo, hospitalRepo, auditRepo)

	// 5. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 6. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Register handlers
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	patientHandler := handler.NewPatientHandler(patientService)
	connectionHandler := handler.NewConnectionHandler(connectionService)
	transferHandler := handler.NewTransferHandler(transferService)

	// 8. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "healthcare-coordination-server",
		})
	})

	api := r.Group("/api")
	{
		hospitals := api.Group("/hospitals")
		{
			hospitals.POST("/register", hospitalHandler.Register)
			hospitals.POST("/login", hospitalHandler.Login)
			hospitals.GET("", hospitalHandler.List)
			hospitals.GET("/nearby", hospitalHandler.Nearby)
			hospitals.PUT("/:id", hospitalHandler.Update)
			hospitals.DELETE("/:id", hospitalHandler.Delete)
		}

		doctors := api.Group("/doctors")
		{
			doctors.POST("/register", doctorHandler.Register)
			doctors.POST("/login", doctorHandler.Login)
			doctors.GET("", doctorHandler.List)
			doctors.PUT("/:id", doctorHandler.Update)
			doctors.DELETE("/:id", doctorHandler.Delete)
		}

		patients := api.Group("/patients")
		{
			patients.POST("/register", patientHandler.Register)
			patients.POST("/login", patientHandler.Login)
			patients.GET("", patientHandler.List)
			patients.PUT("/:id", patientHandler.Update)
			patients.DELETE("/:id", patientHandler.Delete)
		}

		connections := api.Group("/connections")
		{
			connections.POST("", connectionHandler.Create)
			connections.GET("", connectionHandler.List)
			connections.PUT("/:id", connectionHandler.Update)
			connections.DELETE("/:id", connectionHandler.Delete)
		}

		transfers := api.Group("/equipment-transfers")
		{
			transfers.POST("", transferHandler.Create)
			transfers.GET("", transferHandler.List)
			transfers.PUT("/:id", transferHandler.Update)
			transfers.DELETE("/:id", transferHandler.Delete)
		}
	}

	// 9. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
