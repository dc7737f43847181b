package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	repo "github.com/oksasatya/go-mongo-shop/internal/domain/repository"
	"github.com/oksasatya/go-mongo-shop/pkg/helpers"
)

const productCacheTTL = 5 * time.Minute

// ProductSearcher is the full-text copy of the catalog. Failures there never fail a request.
type ProductSearcher interface {
	Index(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string, size int) ([]entity.Product, error)
}

type ProductService struct {
	Repo   repo.ProductRepository
	Search ProductSearcher
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewProductService(r repo.ProductRepository, search ProductSearcher, rdb *redis.Client, logger *logrus.Logger) *ProductService {
	return &ProductService{Repo: r, Search: search, Redis: rdb, Logger: logger}
}

func productKey(id string) string { return "product:" + id }

func (s *ProductService) warn(err error, msg, id string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("product_id", id).Warn(msg)
	}
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.Find(ctx, nil)
}

// Get returns the product or nil. Stored products are cached in Redis when configured.
func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	if _, err := entity.ParseID(id); err != nil {
		return nil, err
	}
	if s.Redis != nil {
		var cached entity.Product
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, productKey(id), &cached); err == nil && ok {
			return &cached, nil
		} else if err != nil {
			s.warn(err, "product cache read failed", id)
		}
	}

	p, err := s.Repo.FindByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, productKey(id), p, productCacheTTL); err != nil {
			s.warn(err, "product cache write failed", id)
		}
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if p.Comments == nil {
		p.Comments = []any{}
	}
	stored, err := s.Repo.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	if s.Search != nil {
		if err := s.Search.Index(ctx, stored); err != nil {
			s.warn(err, "product index failed", stored.ID.Hex())
		}
	}
	return stored, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (*repo.DeleteResult, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.Repo.DeleteOne(ctx, repo.ByID(oid))
	if err != nil {
		return nil, err
	}
	if s.Search != nil {
		if err := s.Search.Delete(ctx, id); err != nil {
			s.warn(err, "product unindex failed", id)
		}
	}
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, productKey(id)); err != nil {
			s.warn(err, "product cache evict failed", id)
		}
	}
	return res, nil
}

// SearchProducts queries the search index. Without one, or when the index fails, the result is empty.
func (s *ProductService) SearchProducts(ctx context.Context, q string, size int) ([]entity.Product, error) {
	if s.Search == nil {
		return []entity.Product{}, nil
	}
	found, err := s.Search.Search(ctx, q, size)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("query", q).Warn("product search failed")
		}
		return []entity.Product{}, nil
	}
	return found, nil
}
