package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"plantapp/internal/application"
	"plantapp/internal/interface/middleware"
	"plantapp/pkg/response"
	"plantapp/pkg/validation"
)

// GardenHandler exposes the user's plant collection and the watering action.
type GardenHandler struct {
	Garden   *application.GardenService
	Watering *application.WateringService
	Logger   *logrus.Logger
}

func NewGardenHandler(garden *application.GardenService, watering *application.WateringService, logger *logrus.Logger) *GardenHandler {
	return &GardenHandler{Garden: garden, Watering: watering, Logger: logger}
}

type addPlantRequest struct {
	CatalogID int64 `json:"catalog_id" binding:"required,gt=0"`
}

type waterPlantRequest struct {
	PlantID int64 `json:"plant_id" binding:"required,gt=0"`
}

func (h *GardenHandler) List(c *gin.Context) {
	entries, err := h.Garden.ListGarden(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Logger.WithError(err).Error("list garden failed")
		response.Error[any](c, http.StatusInternalServerError, "an error occurred while retrieving your garden", nil)
		return
	}
	response.Success(c, http.StatusOK, entries, "garden", gin.H{"count": len(entries)})
}

func (h *GardenHandler) Add(c *gin.Context) {
	var req addPlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	plant, err := h.Garden.AddPlant(c.Request.Context(), middleware.UserID(c), req.CatalogID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAlreadyInGarden):
			response.Error[any](c, http.StatusConflict, "you already have this plant in your garden", nil)
		case errors.Is(err, application.ErrPlantNotFound):
			response.Error[any](c, http.StatusNotFound, "plant not found in the catalog", nil)
		default:
			h.Logger.WithError(err).Error("add plant failed")
			response.Error[any](c, http.StatusBadGateway, "an error occurred while adding the plant", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"id":                plant.ID,
		"permapeople_id":    plant.PermapeopleID,
		"name":              plant.Name,
		"image_url":         plant.ImageURL,
		"water_requirement": plant.WaterRequirement,
		"light_requirement": plant.LightRequirement,
	}, "plant added to your garden", nil)
}

func (h *GardenHandler) Remove(c *gin.Context) {
	plantID, err := strconv.ParseInt(c.Param("plantId"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid plant id", nil)
		return
	}

	if err := h.Garden.RemovePlant(c.Request.Context(), middleware.UserID(c), plantID); err != nil {
		if errors.Is(err, application.ErrPlantNotInGarden) {
			response.Error[any](c, http.StatusNotFound, "this plant is not in your garden", nil)
			return
		}
		h.Logger.WithError(err).Error("remove plant failed")
		response.Error[any](c, http.StatusInternalServerError, "an error occurred while removing the plant", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"removed": true}, "plant removed from your garden", nil)
}

func (h *GardenHandler) Water(c *gin.Context) {
	var req waterPlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Watering.WaterPlant(c.Request.Context(), middleware.UserID(c), req.PlantID)
	if err != nil {
		if errors.Is(err, application.ErrPlantNotInGarden) {
			response.Error[any](c, http.StatusNotFound, "plant not found in your garden", nil)
			return
		}
		h.Logger.WithError(err).Error("water plant failed")
		response.Error[any](c, http.StatusInternalServerError, "an error occurred while watering your plant", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "plant watered successfully", nil)
}
