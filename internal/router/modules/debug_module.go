package modules

import (
	"context"
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-mongo-shop/internal/container"
	"github.com/oksasatya/go-mongo-shop/internal/domain/repository"
	"github.com/oksasatya/go-mongo-shop/internal/interface/middleware"
)

// DebugModule exposes process metrics and per-collection document counts.
type DebugModule struct {
	Redis *redis.Client
	Repos container.Repositories
}

func NewDebugModule(rdb *redis.Client, repos container.Repositories) *DebugModule {
	return &DebugModule{Redis: rdb, Repos: repos}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIPAndPath(), nil)
	g := rg.Group("/debug", rl)
	g.GET("/vars", gin.WrapH(expvar.Handler()))
	g.GET("/store", m.storeCounts)
}

type counter interface {
	Count(ctx context.Context, filter repository.Filter) (int64, error)
}

func (m *DebugModule) storeCounts(c *gin.Context) {
	ctx := c.Request.Context()
	collections := []struct {
		name string
		repo counter
	}{
		{repository.UserCollection, m.Repos.Users},
		{repository.ProductCollection, m.Repos.Products},
		{repository.OrderCollection, m.Repos.Orders},
		{repository.ReviewCollection, m.Repos.Reviews},
		{repository.CardCollection, m.Repos.Cards},
	}

	out := make(map[string]int64, len(collections))
	for _, col := range collections {
		n, err := col.repo.Count(ctx, nil)
		if err != nil {
			_ = c.Error(err)
			return
		}
		out[col.name] = n
	}
	c.JSON(http.StatusOK, out)
}
