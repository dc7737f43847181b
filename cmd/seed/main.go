package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-mongo-shop/config"
	"github.com/oksasatya/go-mongo-shop/internal/container"
	"github.com/oksasatya/go-mongo-shop/internal/infrastructure/mongodb"
	"github.com/oksasatya/go-mongo-shop/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI must be set")
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repos := container.NewMongoRepositories(client.Database(cfg.MongoDB))
	stats, err := seed(ctx, repos, cfg.SeedAdminEmail)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"products_created": stats.productsCreated,
		"admin":            cfg.SeedAdminEmail,
	}).Info("seed completed")
}
