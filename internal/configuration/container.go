package configuration

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Toglefritz/Launchpad/internal/db"
	"github.com/Toglefritz/Launchpad/internal/handler"
	"github.com/Toglefritz/Launchpad/internal/model"
	"github.com/Toglefritz/Launchpad/internal/repo"
	"github.com/Toglefritz/Launchpad/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const defaultConfigPath = "config/config.dev.json"

type Container struct {
	UserHandler       handler.UserHandler
	ProjectHandler    handler.ProjectHandler
	CompletionHandler handler.CompletionHandler
	Config            Config
	Logger            *zap.Logger

	// private - for cleanup
	mongoClient *mongo.Database
}

func BuildContainer() (*Container, error) {
	configPath := os.Getenv("LAUNCHPAD_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	con, err := db.OpenConnection(config.Database.Uri, config.Database.Database)
	if err != nil {
		return nil, err
	}

	logger, _ := zap.NewProduction()

	usersRepo := db.NewRepository[model.User](con, config.Database.UsersCollection)
	projectsRepo := db.NewRepository[model.Project](con, config.Database.ProjectsCollection)

	userRepo := repo.NewUserRepository(usersRepo, logger)
	projectRepo := repo.NewProjectRepository(projectsRepo, logger)

	userService := service.NewUserService(userRepo, logger)
	projectService := service.NewProjectService(projectRepo, userRepo, logger)
	completionService := service.NewCompletionService(projectRepo, userRepo, logger)

	return &Container{
		UserHandler:       handler.NewUserHandler(userService),
		ProjectHandler:    handler.NewProjectHandler(projectService),
		CompletionHandler: handler.NewCompletionHandler(completionService),
		Config:            *config,
		Logger:            logger,
		mongoClient:       con,
	}, nil
}

// Close gracefully shuts down all connections
func (c *Container) Close() error {
	// Sync logger
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	// Close MongoDB connection pool
	if c.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.mongoClient.Client().Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to close MongoDB connection: %w", err)
		}
	}

	return nil
}
