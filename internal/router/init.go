package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-mongo-shop/internal/application"
	"github.com/oksasatya/go-mongo-shop/internal/container"
	"github.com/oksasatya/go-mongo-shop/internal/infrastructure/search"
	handlers "github.com/oksasatya/go-mongo-shop/internal/interface/http"
	"github.com/oksasatya/go-mongo-shop/internal/interface/middleware"
	"github.com/oksasatya/go-mongo-shop/internal/router/modules"
)

// InitModules builds services and handlers from the container and registers one module per resource.
func InitModules(r *Registry, c *container.Container) {
	cfg := c.Config

	// optional components stay nil interfaces when not configured
	var searcher application.ProductSearcher
	if idx := search.NewProductIndex(c.ES, cfg.ESProductsIndex); idx != nil {
		searcher = idx
	}
	var publisher application.Publisher
	if c.RabbitPub != nil {
		publisher = c.RabbitPub
	}

	users := application.NewUserService(c.Repos.Users, c.Logger)
	products := application.NewProductService(c.Repos.Products, searcher, c.Redis, c.Logger)
	orders := application.NewOrderService(c.Repos.Orders, publisher, cfg.AppName, c.Logger)
	reviews := application.NewReviewService(c.Repos.Reviews)
	cards := application.NewCardService(c.Repos.Cards)
	payments := application.NewPaymentService(c.Payments)

	r.Add(
		modules.NewHomeModule(handlers.NewHomeHandler(c.Ping)),
		modules.NewUserModule(handlers.NewUserHandler(users)),
		modules.NewProductModule(handlers.NewProductHandler(products)),
		modules.NewOrderModule(handlers.NewOrderHandler(orders)),
		modules.NewReviewModule(handlers.NewReviewHandler(reviews)),
		modules.NewCardModule(handlers.NewCardHandler(cards)),
		modules.NewPaymentModule(handlers.NewPaymentHandler(payments)),
	)
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis, c.Repos))
	}
}

// NewEngine assembles the gin engine with the global middleware chain and every module.
func NewEngine(c *container.Container) *gin.Engine {
	cfg := c.Config

	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RealIP())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	} else {
		corsCfg.AllowAllOrigins = true
	}
	e.Use(cors.New(corsCfg))

	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		e.Use(middleware.AccessLog(c.Logger))
	}
	e.Use(middleware.ErrorHandler(c.Logger))

	reg := NewRegistry(e, "/")
	var allow middleware.AllowFunc = middleware.AllowPaths("/healthz")
	if cfg.RateLimitSkipLocal {
		allow = middleware.AnyOf(allow, middleware.AllowPrivateIP())
	}
	reg.Use(middleware.RateLimit(c.Redis, cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIP(), allow))
	InitModules(reg, c)
	reg.RegisterAll()
	return e
}
