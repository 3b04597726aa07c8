package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"plantapp/internal/container"
	handlers "plantapp/internal/interface/http"
	"plantapp/internal/interface/middleware"
	"plantapp/pkg/helpers"
)

// ReminderModule wires the manual dispatch trigger.
// Protected: POST /api/reminders/send
type ReminderModule struct {
	Handler *handlers.ReminderHandler
	JWT     *helpers.JWTManager
}

func NewReminderModule(h *handlers.ReminderHandler, jwt *helpers.JWTManager) *ReminderModule {
	return &ReminderModule{Handler: h, JWT: jwt}
}

func (m *ReminderModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/reminders/send", m.Handler.Send)
	}
}
