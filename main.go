package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-backend/api"
	"portfolio-backend/config"
	"portfolio-backend/database"
	"portfolio-backend/models"
	"portfolio-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		config.GetString(cfg, "SUPABASE_DB_HOST", ""),
		config.GetString(cfg, "SUPABASE_DB_USER", ""),
		config.GetString(cfg, "SUPABASE_DB_PASSWORD", ""),
		config.GetString(cfg, "SUPABASE_DB_NAME", ""),
		config.GetString(cfg, "SUPABASE_DB_PORT", "5432"),
	)
	fmt.Println("Connecting to Supabase database...")

	newLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Project{}, &models.Profile{}); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	if err := ensureAdminProfile(currentDB, cfg); err != nil {
		fmt.Printf("Error seeding admin profile: %v\n", err)
		os.Exit(1)
	}

	// Storage is optional at startup: without it the upload endpoints report
	// the service as unavailable but the rest of the API still runs.
	storage, err := services.NewStorage(context.Background(), cfg)
	if err != nil {
		log.Warn().Err(err).Msg("storage disabled")
		storage = nil
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, storage)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// ensureAdminProfile creates the first admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when no profiles exist yet.
func ensureAdminProfile(db database.Database, cfg map[string]string) error {
	email := strings.ToLower(strings.TrimSpace(config.GetString(cfg, "ADMIN_EMAIL", "")))
	password := config.GetString(cfg, "ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		return nil
	}

	count, err := db.ProfileRepo().Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("Seeding initial admin profile")
	return db.ProfileRepo().Add(&models.Profile{
		Email:        email,
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	})
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
