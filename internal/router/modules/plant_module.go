package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"plantapp/internal/container"
	handlers "plantapp/internal/interface/http"
	"plantapp/internal/interface/middleware"
	"plantapp/pkg/helpers"
)

// PlantModule wires the cached plant store routes.
// Protected: GET /api/plants, GET /api/plants/:id, DELETE /api/plants/:id
type PlantModule struct {
	Handler *handlers.PlantHandler
	JWT     *helpers.JWTManager
}

func NewPlantModule(h *handlers.PlantHandler, jwt *helpers.JWTManager) *PlantModule {
	return &PlantModule{Handler: h, JWT: jwt}
}

func (m *PlantModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/plants", m.Handler.List)
		auth.GET("/plants/:id", m.Handler.Get)
		auth.DELETE("/plants/:id", m.Handler.Delete)
	}
}
