package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"footballapi/internal/handlers"
	"footballapi/internal/middleware"
	"footballapi/internal/models"
	"footballapi/internal/repositories"
	"footballapi/internal/services"
	"footballapi/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	jwtSecret := viper.GetString("JWT_SECRET")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	if databaseDSN == "" {
		log.Fatal("DATABASE_DSN is required")
	}
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// --- Database ---
	// TranslateError lets unique-constraint violations surface as
	// gorm.ErrDuplicatedKey instead of driver-specific errors.
	db, err := gorm.Open(postgres.Open(databaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.Team{},
		&models.Tournament{},
		&models.Squad{},
		&models.Match{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Match events are only published and consumed when a broker URL is
	// configured.
	var matchEvents services.EventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		matchEvents = mqClient

		go func() {
			log.Println("Starting RabbitMQ consumer for match events...")
			if consumerErr := mqClient.ConsumeMatchEvents(rabbitmq.HandleMatchEvent); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	playerRepo := repositories.NewGORMPlayerRepository(db)
	teamRepo := repositories.NewGORMTeamRepository(db)
	tournamentRepo := repositories.NewGORMTournamentRepository(db)
	squadRepo := repositories.NewGORMSquadRepository(db)
	matchRepo := repositories.NewGORMMatchRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	playerService := services.NewPlayerService(playerRepo)
	teamService := services.NewTeamService(teamRepo)
	tournamentService := services.NewTournamentService(tournamentRepo)
	squadService := services.NewSquadService(squadRepo, teamRepo, playerRepo, tournamentRepo)
	matchService := services.NewMatchService(matchRepo, teamRepo, tournamentRepo, matchEvents)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	teamHandler := handlers.NewTeamHandler(teamService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	squadHandler := handlers.NewSquadHandler(squadService)
	matchHandler := handlers.NewMatchHandler(matchService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())
	// Token verification is optional here; each route's guard decides whether
	// missing claims are an error.
	app.Use(middleware.TokenDecode(authService))

	authHandler.RegisterRoutes(app)
	playerHandler.RegisterRoutes(app)
	teamHandler.RegisterRoutes(app)
	tournamentHandler.RegisterRoutes(app)
	squadHandler.RegisterRoutes(app)
	matchHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
