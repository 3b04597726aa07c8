package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"plantapp/internal/container"
	handlers "plantapp/internal/interface/http"
	"plantapp/internal/interface/middleware"
	"plantapp/pkg/helpers"
)

// GardenModule wires the garden CRUD and watering routes.
// Protected: GET/POST /api/garden, DELETE /api/garden/:plantId,
// POST /api/garden/water
type GardenModule struct {
	Handler *handlers.GardenHandler
	JWT     *helpers.JWTManager
}

func NewGardenModule(h *handlers.GardenHandler, jwt *helpers.JWTManager) *GardenModule {
	return &GardenModule{Handler: h, JWT: jwt}
}

func (m *GardenModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/garden", m.Handler.List)
		auth.POST("/garden", m.Handler.Add)
		auth.DELETE("/garden/:plantId", m.Handler.Remove)
		auth.POST("/garden/water", m.Handler.Water)
	}
}
