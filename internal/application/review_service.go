package application

import (
	"context"

	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	repo "github.com/oksasatya/go-mongo-shop/internal/domain/repository"
)

type ReviewService struct {
	Repo repo.ReviewRepository
}

func NewReviewService(r repo.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: r}
}

func (s *ReviewService) List(ctx context.Context) ([]entity.Review, error) {
	return s.Repo.Find(ctx, nil)
}

func (s *ReviewService) CreateMany(ctx context.Context, reviews []entity.Review) (*repo.InsertManyResult, error) {
	return s.Repo.InsertMany(ctx, reviews)
}
