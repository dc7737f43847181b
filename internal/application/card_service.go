package application

import (
	"context"
	"time"

	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	repo "github.com/oksasatya/go-mongo-shop/internal/domain/repository"
)

type CardService struct {
	Repo repo.CardRepository
	now  func() time.Time
}

func NewCardService(r repo.CardRepository) *CardService {
	return &CardService{Repo: r, now: time.Now}
}

// Create stores c, stamping createdAt when the client did not send one.
func (s *CardService) Create(ctx context.Context, c *entity.Card) (*entity.Card, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now().UTC()
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return s.Repo.InsertOne(ctx, c)
}

func (s *CardService) Get(ctx context.Context, id string) (*entity.Card, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *CardService) List(ctx context.Context) ([]entity.Card, error) {
	return s.Repo.Find(ctx, nil)
}
