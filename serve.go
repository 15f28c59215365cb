package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Dependencies of the serve command
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	artifactCache  i.ArtifactCache
	jwtTokenizer   i.Tokenizer
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
)

func initMongo(ctx context.Context) error {
	clientOptions := options.Client().ApplyURI(config.Envs.MongoURI())
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	appLogger.Info("Connected to MongoDB")
	return nil
}

func initMazeRepo() {
	mazeRepo = repo.NewMazeRepo(mongoClient, config.Envs.DBName, config.Envs.DBCollection)
	appLogger.Info("Maze repository initialized")
}

// initRedis connects the artifact cache. Serving continues without a cache
// when Redis is unreachable.
func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Warn("Redis unavailable, rendering without cache", "addr", config.Envs.RedisAddr, "err", err)
		_ = redisClient.Close()
		redisClient = nil
		return
	}

	var err error
	artifactCache, err = cache.NewRedisArtifactCache(redisClient, config.Envs.ArtifactTTLSeconds)
	if err != nil {
		appLogger.Warn("Creating artifact cache", "err", err)
		return
	}
	appLogger.Info("Artifact cache initialized", "addr", config.Envs.RedisAddr)
}

func initJWTTokenizer() error {
	if config.Envs.JWTSecret == "" {
		return errMissingSecret
	}
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
	return nil
}

func initMazeService(verbose bool) error {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stderr)
	if err != nil {
		return fmt.Errorf("creating maze service logger: %w", err)
	}
	logger.SetVerbose(serviceLogger, verbose)

	svc, err := service.NewMazeService(&service.Config{
		Repo:   mazeRepo,
		Cache:  artifactCache,
		Logger: serviceLogger,
		Opts:   &service.Options{MaxSize: config.Envs.MaxMazeSize},
	})
	if err != nil {
		return fmt.Errorf("creating maze service: %w", err)
	}
	mazeService = svc
	appLogger.Info("Maze service initialized")
	return nil
}

func initMazeController() error {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		return fmt.Errorf("creating maze controller: %w", err)
	}
	appLogger.Info("Maze controller initialized")
	return nil
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the maze HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runServe(cmd.Context(), verbose)
		},
	}
}

func runServe(ctx context.Context, verbose bool) error {
	setupCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	if err := initJWTTokenizer(); err != nil {
		return err
	}

	if err := initMongo(setupCtx); err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initMazeRepo()
	initRedis(setupCtx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	if err := initMazeService(verbose); err != nil {
		return err
	}
	if err := initMazeController(); err != nil {
		return err
	}
	initRouter(jwtTokenizer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
		appLogger.Info("Shutting down")
		return ctx.Err()
	}
}
