package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	mongomigrate "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/go-mongo-shop/config"
	"github.com/oksasatya/go-mongo-shop/internal/container"
	"github.com/oksasatya/go-mongo-shop/internal/infrastructure/mongodb"
	"github.com/oksasatya/go-mongo-shop/internal/infrastructure/payment"
	"github.com/oksasatya/go-mongo-shop/internal/router"
	"github.com/oksasatya/go-mongo-shop/pkg/helpers"
	"github.com/oksasatya/go-mongo-shop/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()
	c := &container.Container{
		Config:   cfg,
		Logger:   logger,
		Payments: payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeAPIURL),
	}

	switch cfg.StoreDriver {
	case "memory":
		logger.Warn("using in-memory store; data is lost on restart")
		c.Repos = container.NewMemoryRepositories()
	default:
		client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
		if err != nil {
			log.Fatalf("failed to connect to mongodb: %v", err)
		}
		c.Mongo = client
		if err := runMigrations(client, cfg.MongoDB, cfg.MigrationsDir, logger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		c.Repos = container.NewMongoRepositories(client.Database(cfg.MongoDB))
	}

	// Redis (rate limiting, product cache)
	if cfg.RedisAddr != "" {
		c.Redis = helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			logger.WithError(err).Warn("redis unreachable; rate limiting fails open")
		}
	}

	// Elasticsearch (product search)
	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(ctx, addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			logger.WithError(err).Warn("elasticsearch disabled")
		} else {
			c.ES = es
		}
	}

	// RabbitMQ (order notifications)
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQOrderQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq disabled; order notifications will not be sent")
		} else {
			c.RabbitPub = pub
		}
	}

	r := router.NewEngine(c)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
	}
	c.Close(ctxShutdown)
	logger.Info("server exited properly")
}

func runMigrations(client *mongo.Client, database, migrationsDir string, logger *logrus.Logger) error {
	driver, err := mongomigrate.WithInstance(client, &mongomigrate.Config{DatabaseName: database})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "mongodb", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
