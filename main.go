package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"district-champions-system/handlers"
	"district-champions-system/models"
	"district-champions-system/services"
	"district-champions-system/utils"
	"district-champions-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{})

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOriginsString,
		AllowMethods:  "GET,POST,OPTIONS,HEAD",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, Cache-Control",
		ExposeHeaders: "Content-Length, Content-Type, Cache-Control",
		MaxAge:        86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.District{},
		&models.TreeContribution{},
		&models.Donation{},
		&models.StateLeaderboardEntry{},
		&models.ContributorProfile{},
		&models.GlobalStats{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	r2Enabled, err := utils.InitR2()
	if err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rankWriter := workers.NewRankWriter(db, 256)
	go rankWriter.Start(ctx)

	leaderboardService := services.NewLeaderboardService(db, rankWriter)
	championService := services.NewChampionService(db)
	contributionService := services.NewContributionService(db)
	statsService := services.NewStatsService(db)

	// In-process fallback for deployments without an external cron trigger.
	if os.Getenv("STATS_SCHEDULE_DISABLED") != "true" {
		statsService.StartSnapshotScheduler(1 * time.Hour)
	}

	handlers.SetupLeaderboardRoutes(app, leaderboardService)
	handlers.SetupContributionRoutes(app, contributionService)
	handlers.SetupChampionRoutes(app, championService)
	handlers.SetupStatsRoutes(app, statsService)
	handlers.SetupPartnerRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Leaderboard rank writer running")
	if r2Enabled {
		log.Println("✅ R2 snapshot publishing enabled")
	} else {
		log.Println("➡️ R2 not configured — snapshot publishing disabled")
	}
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
