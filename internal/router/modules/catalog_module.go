package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"plantapp/internal/container"
	handlers "plantapp/internal/interface/http"
	"plantapp/internal/interface/middleware"
	"plantapp/pkg/helpers"
)

// CatalogModule wires the Permapeople proxy routes.
// Protected: GET /api/catalog/search, GET /api/catalog/plants/:id
type CatalogModule struct {
	Handler *handlers.CatalogHandler
	JWT     *helpers.JWTManager
}

func NewCatalogModule(h *handlers.CatalogHandler, jwt *helpers.JWTManager) *CatalogModule {
	return &CatalogModule{Handler: h, JWT: jwt}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	// The upstream catalog has its own quota; keep the proxy tight.
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/catalog/search", m.Handler.Search)
		auth.GET("/catalog/plants/:id", m.Handler.GetPlant)
	}
}
