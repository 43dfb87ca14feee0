package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"biblioteca-api/internal/handlers"
	appjwt "biblioteca-api/internal/jwt"
	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/mailer"
	"biblioteca-api/internal/middlewares"
	"biblioteca-api/internal/repositories"
	"biblioteca-api/internal/scheduler"
	"biblioteca-api/internal/services"

	_ "biblioteca-api/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title biblioteca-api
// @version 1.0.0
// @description Backend for a virtual library: catalog, rentals, fines, and user accounts
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		adminEmail,
		jwtSecret, jwtExpSecond,
		reportIntervalSecond, alertIntervalSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		adminEmail,
		jwtSecret, jwtExpSecond,
		reportIntervalSecond, alertIntervalSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, SMTP, JWT, and scheduler configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom string,
	adminEmail string,
	jwtSecretKey string, jwtExpSecond int,
	reportIntervalSecond, alertIntervalSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "biblioteca")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config, empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "rental-events")

	// SMTP config
	smtpHost = getEnv("SMTP_HOST", "localhost")
	smtpPort = getEnv("SMTP_PORT", "587")
	smtpUser = getEnv("SMTP_USER", "")
	smtpPassword = getEnv("SMTP_PASSWORD", "")
	smtpFrom = getEnv("SMTP_FROM", "no-reply@biblioteca.com")
	adminEmail = getEnv("ADMIN_EMAIL", "admin@biblioteca.com")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Scheduler config, zero disables a job
	if reportIntervalSecond, err = strconv.Atoi(getEnv("REPORT_INTERVAL_SECOND", "86400")); err != nil {
		return
	}
	if alertIntervalSecond, err = strconv.Atoi(getEnv("ALERT_INTERVAL_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, mailer, and HTTP server.
// It wires repositories, services, and handlers, starts the reporting
// scheduler, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom string,
	adminEmail string,
	jwtSecretKey string, jwtExpSecond int,
	reportIntervalSecond, alertIntervalSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for rental lifecycle events
	var events services.EventWriter
	if kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		events = kw
	}

	// JWT service
	tokens := appjwt.New(
		appjwt.WithSecretKey(jwtSecretKey),
		appjwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// SMTP mailer
	smtpMailer := mailer.New(smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom)

	// Repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	authorReadRepo := repositories.NewAuthorReadRepository(db, txGetter)
	authorWriteRepo := repositories.NewAuthorWriteRepository(db, txGetter)
	bookReadRepo := repositories.NewBookReadRepository(db, txGetter)
	bookWriteRepo := repositories.NewBookWriteRepository(db, txGetter)
	rentalReadRepo := repositories.NewRentalReadRepository(db, txGetter)
	rentalWriteRepo := repositories.NewRentalWriteRepository(db, txGetter)
	tokenCacheRepo := repositories.NewTokenCacheRepository(rdb, 24*time.Hour)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, tokenCacheRepo, smtpMailer)
	authorService := services.NewAuthorService(authorReadRepo, authorWriteRepo)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo, authorReadRepo, rentalReadRepo)
	rentalService := services.NewRentalService(bookReadRepo, bookWriteRepo, userReadRepo, rentalReadRepo, rentalWriteRepo, events)
	reportService := services.NewReportService(bookReadRepo, smtpMailer, adminEmail)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	txMiddleware := middlewares.TxMiddleware(db)
	authMiddleware := middlewares.AuthMiddleware(tokens)

	// Public auth routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Post("/validate-email", handlers.NewValidateEmailHandler(authService))
	r.Post("/validate-email/token", handlers.NewEmailTokenHandler(authService))
	r.Post("/recover-password", handlers.NewRecoverPasswordHandler(authService))
	r.Post("/reset-password", handlers.NewResetPasswordHandler(authService))

	// Users
	r.Get("/users", handlers.NewListUsersHandler(authService))
	r.Get("/users/{userID}", handlers.NewGetUserHandler(authService))
	r.Get("/users/{userID}/rentals", handlers.NewListUserRentalsHandler(rentalService))

	// Authors
	r.Group(func(r chi.Router) {
		r.Use(txMiddleware)
		r.Post("/authors", handlers.NewCreateAuthorHandler(authorService))
		r.Put("/authors/{authorID}", handlers.NewUpdateAuthorHandler(authorService))
		r.Delete("/authors/{authorID}", handlers.NewDeleteAuthorHandler(authorService))
	})
	r.Get("/authors", handlers.NewListAuthorsHandler(authorService))
	r.Get("/authors/{authorID}", handlers.NewGetAuthorHandler(authorService))

	// Books, reads guarded by the access token
	r.Group(func(r chi.Router) {
		r.Use(txMiddleware)
		r.Post("/books", handlers.NewCreateBookHandler(bookService))
		r.Put("/books/{bookID}", handlers.NewUpdateBookHandler(bookService))
		r.Delete("/books/{bookID}", handlers.NewDeleteBookHandler(bookService))
	})
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/books", handlers.NewListBooksHandler(bookService))
		r.Get("/books/{bookID}", handlers.NewGetBookHandler(bookService))
	})

	// Rentals
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(txMiddleware)
		r.Post("/rentals", handlers.NewCreateRentalHandler(rentalService))
		r.Post("/books/{bookID}/return", handlers.NewReturnBookHandler(rentalService))
	})
	r.Get("/rentals", handlers.NewListRentalsHandler(rentalService))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	// Reporting scheduler
	sched := scheduler.New()
	sched.Add("admin-report", time.Duration(reportIntervalSecond)*time.Second, reportService.SendAdminReport)
	sched.Add("overdue-alerts", time.Duration(alertIntervalSecond)*time.Second, reportService.SendOverdueAlerts)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go sched.Run(ctxShutdown)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
