package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	apperrors "github.com/oksasatya/go-mongo-shop/internal/domain/errors"
	repo "github.com/oksasatya/go-mongo-shop/internal/domain/repository"
)

// fields a client may never set through PUT /user
var protectedUserFields = []string{"_id", "role", "isPaidUser"}

type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

// IsAdmin reports whether email belongs to a stored admin. Unknown emails are not admins.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.FindOne(ctx, repo.ByEmail(email))
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// Save upserts the user keyed by body["email"]. Role and payment state are only
// ever initialised here, never overwritten.
func (s *UserService) Save(ctx context.Context, body map[string]any) (*repo.UpdateResult, error) {
	email, _ := body["email"].(string)
	if email == "" {
		return nil, apperrors.NewValidation("email is required")
	}

	set := make(map[string]any, len(body))
	for k, v := range body {
		set[k] = v
	}
	for _, k := range protectedUserFields {
		delete(set, k)
	}

	patch := repo.Patch{
		Set: set,
		SetOnInsert: map[string]any{
			"role":       string(entity.RoleDefault),
			"isPaidUser": false,
		},
	}
	return s.Repo.UpdateOne(ctx, repo.ByEmail(email), patch, repo.UpdateOptions{Upsert: true})
}

// PromoteToAdmin sets target's role to admin when requester is an admin.
func (s *UserService) PromoteToAdmin(ctx context.Context, requester, target string) (*repo.UpdateResult, error) {
	if requester == "" {
		return nil, apperrors.ErrMissingRequester
	}
	admin, err := s.IsAdmin(ctx, requester)
	if err != nil {
		return nil, err
	}
	if !admin {
		if s.Logger != nil {
			s.Logger.WithField("requester", requester).Warn("admin promotion refused")
		}
		return nil, apperrors.ErrUnauthorized
	}
	if target == "" {
		return nil, apperrors.NewValidation("newAdminEmail is required")
	}

	patch := repo.Patch{Set: map[string]any{"role": string(entity.RoleAdmin)}}
	return s.Repo.UpdateOne(ctx, repo.ByEmail(target), patch, repo.UpdateOptions{})
}

// MarkPaid flags an existing user as paid. Unknown emails match nothing.
func (s *UserService) MarkPaid(ctx context.Context, email string) (*repo.UpdateResult, error) {
	if email == "" {
		return nil, apperrors.NewValidation("email is required")
	}
	patch := repo.Patch{Set: map[string]any{"isPaidUser": true}}
	return s.Repo.UpdateOne(ctx, repo.ByEmail(email), patch, repo.UpdateOptions{})
}
