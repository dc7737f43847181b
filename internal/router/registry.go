package router

import "github.com/gin-gonic/gin"

// Module registers the routes of one resource.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry mounts modules under one route group sharing the same middleware.
type Registry struct {
	group   *gin.RouterGroup
	mw      []gin.HandlerFunc
	modules []Module
}

// NewRegistry mounts modules under basePath; "" or "/" serves them at the root.
func NewRegistry(engine *gin.Engine, basePath string) *Registry {
	if basePath == "" {
		basePath = "/"
	}
	return &Registry{group: engine.Group(basePath)}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) { r.mw = append(r.mw, mw...) }

func (r *Registry) Add(mods ...Module) { r.modules = append(r.modules, mods...) }

// RegisterAll mounts every pending module. Middleware must be added before the first call.
func (r *Registry) RegisterAll() {
	if len(r.mw) > 0 {
		r.group.Use(r.mw...)
		r.mw = nil
	}
	for _, m := range r.modules {
		m.Register(r.group)
	}
	r.modules = nil
}
