package container

import (
	"context"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/oksasatya/go-mongo-shop/config"
	"github.com/oksasatya/go-mongo-shop/internal/application"
	"github.com/oksasatya/go-mongo-shop/internal/domain/repository"
	"github.com/oksasatya/go-mongo-shop/internal/infrastructure/memory"
	"github.com/oksasatya/go-mongo-shop/internal/infrastructure/mongodb"
	"github.com/oksasatya/go-mongo-shop/pkg/helpers"
)

// Repositories groups the store accessors for every record kind.
type Repositories struct {
	Users    repository.UserRepository
	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Reviews  repository.ReviewRepository
	Cards    repository.CardRepository
}

func NewMongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users:    mongodb.NewUserRepository(db),
		Products: mongodb.NewProductRepository(db),
		Orders:   mongodb.NewOrderRepository(db),
		Reviews:  mongodb.NewReviewRepository(db),
		Cards:    mongodb.NewCardRepository(db),
	}
}

func NewMemoryRepositories() Repositories {
	return Repositories{
		Users:    memory.NewUserRepository(),
		Products: memory.NewProductRepository(),
		Orders:   memory.NewOrderRepository(),
		Reviews:  memory.NewReviewRepository(),
		Cards:    memory.NewCardRepository(),
	}
}

// Container holds the components built once at startup and shared by the router modules.
// Optional clients (Mongo in memory mode, Redis, ES, RabbitMQ) are nil when not configured.
type Container struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Repos     Repositories
	Payments  application.PaymentGateway
	Mongo     *mongo.Client
	Redis     *redis.Client
	ES        *elasticsearch.Client
	RabbitPub *helpers.RabbitPublisher
}

// Ping checks the document store. The memory store is always reachable.
func (c *Container) Ping(ctx context.Context) error {
	if c.Mongo == nil {
		return nil
	}
	return c.Mongo.Ping(ctx, readpref.Primary())
}

// Close releases every client the container owns.
func (c *Container) Close(ctx context.Context) {
	c.RabbitPub.Close()
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.Mongo != nil {
		if err := c.Mongo.Disconnect(ctx); err != nil && c.Logger != nil {
			c.Logger.WithError(err).Warn("mongo disconnect failed")
		}
	}
}
