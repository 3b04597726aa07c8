package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"plantapp/internal/application"
	"plantapp/pkg/response"
)

// ReminderHandler triggers a reminder dispatch run on demand, outside the
// daily schedule.
type ReminderHandler struct {
	Svc    *application.ReminderService
	Clock  clockwork.Clock
	Logger *logrus.Logger
}

func NewReminderHandler(svc *application.ReminderService, clock clockwork.Clock, logger *logrus.Logger) *ReminderHandler {
	return &ReminderHandler{Svc: svc, Clock: clock, Logger: logger}
}

func (h *ReminderHandler) Send(c *gin.Context) {
	today := application.DateOf(h.Clock.Now())
	sum, err := h.Svc.RunOnce(c.Request.Context(), today)
	if err != nil {
		h.Logger.WithError(err).Error("manual reminder run failed")
		response.Error[any](c, http.StatusInternalServerError, "reminder run failed", nil)
		return
	}
	response.Success(c, http.StatusOK, sum, "reminders sent", nil)
}
