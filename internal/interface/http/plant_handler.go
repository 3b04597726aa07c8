package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"plantapp/internal/application"
	"plantapp/pkg/response"
)

// PlantHandler exposes the locally cached plant store.
type PlantHandler struct {
	Garden *application.GardenService
	Logger *logrus.Logger
}

func NewPlantHandler(garden *application.GardenService, logger *logrus.Logger) *PlantHandler {
	return &PlantHandler{Garden: garden, Logger: logger}
}

func (h *PlantHandler) List(c *gin.Context) {
	plants, err := h.Garden.ListPlants(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list plants failed")
		response.Error[any](c, http.StatusInternalServerError, "an error occurred while listing plants", nil)
		return
	}
	response.Success(c, http.StatusOK, plants, "plants", gin.H{"count": len(plants)})
}

func (h *PlantHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid plant id", nil)
		return
	}

	plant, err := h.Garden.GetPlant(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrPlantNotFound) {
			response.Error[any](c, http.StatusNotFound, "plant not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get plant failed")
		response.Error[any](c, http.StatusInternalServerError, "an error occurred while retrieving the plant", nil)
		return
	}
	response.Success(c, http.StatusOK, plant, "plant", nil)
}

func (h *PlantHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid plant id", nil)
		return
	}

	if err := h.Garden.DeletePlant(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrPlantNotFound) {
			response.Error[any](c, http.StatusNotFound, "plant not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete plant failed")
		response.Error[any](c, http.StatusInternalServerError, "an error occurred while deleting the plant", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "plant deleted", nil)
}
