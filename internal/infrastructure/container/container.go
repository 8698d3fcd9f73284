package container

import (
	"fmt"

	"github.com/KaiMitchell/ssbackendreg/internal/config"
	"github.com/KaiMitchell/ssbackendreg/internal/delivery/http"
	"github.com/KaiMitchell/ssbackendreg/internal/delivery/http/handler"
	"github.com/KaiMitchell/ssbackendreg/internal/infrastructure/database"
	"github.com/KaiMitchell/ssbackendreg/internal/infrastructure/server"
	"github.com/KaiMitchell/ssbackendreg/internal/repository/postgres"
	"github.com/KaiMitchell/ssbackendreg/internal/usecase/candidates"
	"github.com/KaiMitchell/ssbackendreg/internal/usecase/match"
	"github.com/KaiMitchell/ssbackendreg/internal/usecase/profile"
	"github.com/KaiMitchell/ssbackendreg/internal/usecase/skills"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    *logrus.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log := newLogger(&cfg.Logging)

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.RunMigrations(db.DB, cfg.Database.MigrationsPath, log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Redis backs the skill catalog cache only. A missing Redis degrades
	// to direct database reads instead of failing startup.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, skill catalog cache disabled")
		redisClient = nil
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	skillRepo := postgres.NewSkillRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	relationshipRepo := postgres.NewRelationshipRepository(db)

	// Initialize use cases
	matchUseCase := match.NewUseCase(userRepo, relationshipRepo)
	candidatesUseCase := candidates.NewUseCase(userRepo, candidateRepo, relationshipRepo)
	skillsUseCase := skills.NewUseCase(skillRepo, userRepo, redisClient, log)
	profileUseCase := profile.NewUseCase(userRepo)

	// Initialize handlers
	candidateHandler := handler.NewCandidateHandler(candidatesUseCase, log)
	matchHandler := handler.NewMatchHandler(matchUseCase, log)
	skillHandler := handler.NewSkillHandler(skillsUseCase, log)
	profileHandler := handler.NewProfileHandler(profileUseCase, log)

	// Initialize router
	router := http.NewRouter(
		candidateHandler,
		matchHandler,
		skillHandler,
		profileHandler,
		log,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

func newLogger(cfg *config.LoggingConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.WithError(err).Warn("error closing redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
