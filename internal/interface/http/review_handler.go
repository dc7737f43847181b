package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-mongo-shop/internal/application"
	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	apperrors "github.com/oksasatya/go-mongo-shop/internal/domain/errors"
	"github.com/oksasatya/go-mongo-shop/pkg/response"
)

type ReviewHandler struct {
	Svc *application.ReviewService
}

func NewReviewHandler(svc *application.ReviewService) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, reviews)
}

// Create handles POST /reviews. The body is an array of reviews or a single review.
func (h *ReviewHandler) Create(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		badRequest(c, err)
		return
	}
	reviews, err := decodeReviews(raw)
	if err != nil {
		badRequest(c, err)
		return
	}
	if len(reviews) == 0 {
		fail(c, apperrors.NewValidation("at least one review is required"))
		return
	}
	res, err := h.Svc.CreateMany(c.Request.Context(), reviews)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, res)
}

func decodeReviews(raw []byte) ([]entity.Review, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty body")
	}
	if raw[0] == '[' {
		var many []entity.Review
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil, err
		}
		return many, nil
	}
	var one entity.Review
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, err
	}
	return []entity.Review{one}, nil
}
