package main

import (
	"log"
	"os"

	_ "depo-backend/api/swagger" // swagger docs
	"depo-backend/internal/database"
	"depo-backend/internal/handler"
	"depo-backend/internal/middleware"
	"depo-backend/internal/repository"
	"depo-backend/internal/service"
	"depo-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Depo Yonetim API
// @version         1.0
// @description     Warehouse and asset management backend for hospital logistics.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "depo"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	middleware.InitPermissionMiddleware(db)

	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Repositories
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	logRepo := repository.NewLogRepository(db)
	cariRepo := repository.NewCariRepository(db)
	kategoriRepo := repository.NewKategoriRepository(db)
	malzemeRepo := repository.NewMalzemeRepository(db)
	bolumRepo := repository.NewBolumRepository(db)
	personelRepo := repository.NewPersonelRepository(db)
	faturaRepo := repository.NewFaturaRepository(db)
	zimmetRepo := repository.NewZimmetRepository(db)
	talepRepo := repository.NewTalepRepository(db)

	// Services
	userService := service.NewUserService(userRepo, roleRepo, tokenRepo, logRepo, txManager)
	roleService := service.NewRoleService(roleRepo, logRepo, txManager)
	cariService := service.NewCariService(cariRepo, logRepo, txManager)
	kategoriService := service.NewKategoriService(kategoriRepo, logRepo, txManager)
	malzemeService := service.NewMalzemeService(malzemeRepo, kategoriRepo, logRepo, txManager)
	bolumService := service.NewBolumService(bolumRepo, logRepo, txManager)
	personelService := service.NewPersonelService(personelRepo, bolumRepo, logRepo, txManager)
	faturaService := service.NewFaturaService(faturaRepo, cariRepo, malzemeRepo, logRepo, txManager)
	zimmetService := service.NewZimmetService(zimmetRepo, malzemeRepo, personelRepo, bolumRepo, logRepo, txManager)
	talepService := service.NewTalepService(talepRepo, logRepo, txManager, wsHub)
	logService := service.NewLogService(logRepo)
	dashboardService := service.NewDashboardService(db, logRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	cariHandler := handler.NewCariHandler(cariService)
	kategoriHandler := handler.NewKategoriHandler(kategoriService)
	malzemeHandler := handler.NewMalzemeHandler(malzemeService)
	bolumHandler := handler.NewBolumHandler(bolumService)
	personelHandler := handler.NewPersonelHandler(personelService)
	faturaHandler := handler.NewFaturaHandler(faturaService)
	zimmetHandler := handler.NewZimmetHandler(zimmetService)
	talepHandler := handler.NewTalepHandler(talepService)
	logHandler := handler.NewLogHandler(logService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint for pending talep notifications
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Public auth endpoints
	public := router.Group("/api")
	userHandler.RegisterPublicRoutes(public)

	// Authenticated API
	api := router.Group("/api", middleware.RequireAuth())
	userHandler.RegisterRoutes(api)
	roleHandler.RegisterRoutes(api)
	cariHandler.RegisterRoutes(api)
	kategoriHandler.RegisterRoutes(api)
	malzemeHandler.RegisterRoutes(api)
	bolumHandler.RegisterRoutes(api)
	personelHandler.RegisterRoutes(api)
	faturaHandler.RegisterRoutes(api)
	zimmetHandler.RegisterRoutes(api)
	talepHandler.RegisterRoutes(api)
	logHandler.RegisterRoutes(api)
	dashboardHandler.RegisterRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
