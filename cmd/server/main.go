package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lancerdesk.backend/internal/config"
	"lancerdesk.backend/internal/infrastructure/jobs"
	"lancerdesk.backend/internal/infrastructure/repositories"
	"lancerdesk.backend/internal/interfaces/http/handlers"
	"lancerdesk.backend/internal/interfaces/http/middleware"
	"lancerdesk.backend/internal/usecases"
	"lancerdesk.backend/pkg/jwt"
	"lancerdesk.backend/pkg/logger"
	"lancerdesk.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	portfolioRepo := repositories.NewPortfolioAggregateRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	portfolioUsecase := usecases.NewPortfolioUsecase(portfolioRepo, uow)
	clientUsecase := usecases.NewClientUsecase(clientRepo)
	invoiceUsecase := usecases.NewInvoiceUsecase(invoiceRepo, paymentRepo, uow)
	productivityUsecase := usecases.NewProductivityUsecase(taskRepo, goalRepo, eventRepo)

	// Initialize handlers
	portfolioHandler := handlers.NewPortfolioHandler(portfolioUsecase)
	clientHandler := handlers.NewClientHandler(clientUsecase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUsecase)
	taskHandler := handlers.NewTaskHandler(productivityUsecase)
	goalHandler := handlers.NewGoalHandler(productivityUsecase)
	eventHandler := handlers.NewEventHandler(productivityUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	overdueJob := jobs.NewInvoiceOverdueJob(invoiceRepo, cfg.Jobs.InvoiceOverdueInterval)
	go overdueJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		portfolioHandler: portfolioHandler,
		clientHandler:    clientHandler,
		invoiceHandler:   invoiceHandler,
		taskHandler:      taskHandler,
		goalHandler:      goalHandler,
		eventHandler:     eventHandler,
		authMiddleware:   authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down server...")
		overdueJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("LancerDesk backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
