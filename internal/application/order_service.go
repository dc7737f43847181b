package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	apperrors "github.com/oksasatya/go-mongo-shop/internal/domain/errors"
	repo "github.com/oksasatya/go-mongo-shop/internal/domain/repository"
	"github.com/oksasatya/go-mongo-shop/pkg/mailer"
	mailtpl "github.com/oksasatya/go-mongo-shop/pkg/mailer/templates"
)

// Publisher puts a JSON message on the notification queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type OrderService struct {
	Repo      repo.OrderRepository
	Publisher Publisher
	AppName   string
	Logger    *logrus.Logger
}

func NewOrderService(r repo.OrderRepository, pub Publisher, appName string, logger *logrus.Logger) *OrderService {
	return &OrderService{Repo: r, Publisher: pub, AppName: appName, Logger: logger}
}

// List returns the orders of email, or every order when email is empty.
func (s *OrderService) List(ctx context.Context, email string) ([]entity.Order, error) {
	if email == "" {
		return s.Repo.Find(ctx, nil)
	}
	return s.Repo.Find(ctx, repo.ByEmail(email))
}

// Place stores o as a new pending order and queues the buyer notification.
// ProductID is a copied value and is stored as given; only ObjectID hex references
// can later be removed through DeleteByProduct.
func (s *OrderService) Place(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	o.Status = entity.OrderPending
	stored, err := s.Repo.InsertOne(ctx, o)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, stored)
	return stored, nil
}

func (s *OrderService) notify(ctx context.Context, o *entity.Order) {
	if s.Publisher == nil || o.Email == "" {
		return
	}
	job := mailer.NewOrderPlacedJob(s.AppName, o.Email, o.ID.Hex(), o.ProductID,
		mailtpl.WithStatus(string(o.Status)), mailtpl.WithTime(time.Now()))
	if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("order_id", o.ID.Hex()).Warn("order notification publish failed")
	}
}

// Ship marks the order shipped, creating it when no order has that id.
func (s *OrderService) Ship(ctx context.Context, id string) (*repo.UpdateResult, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, err
	}
	patch := repo.Patch{Set: map[string]any{"status": string(entity.OrderShipped)}}
	return s.Repo.UpdateOne(ctx, repo.ByID(oid), patch, repo.UpdateOptions{Upsert: true})
}

func (s *OrderService) Delete(ctx context.Context, id string) (*repo.DeleteResult, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.DeleteOne(ctx, repo.ByID(oid))
}

// DeleteByProduct removes every order referencing productID. The reference is
// stored as the product's hex id, so the id is validated but matched as a string.
func (s *OrderService) DeleteByProduct(ctx context.Context, productID string) (*repo.DeleteResult, error) {
	if _, err := entity.ParseID(productID); err != nil {
		return nil, err
	}
	return s.Repo.DeleteMany(ctx, repo.ByProductID(productID))
}

func (s *OrderService) DeleteByEmail(ctx context.Context, email string) (*repo.DeleteResult, error) {
	if email == "" {
		return nil, apperrors.NewValidation("email is required")
	}
	return s.Repo.DeleteMany(ctx, repo.ByEmail(email))
}
