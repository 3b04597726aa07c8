package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"plantapp/internal/infrastructure/catalog"
	"plantapp/pkg/response"
)

// CatalogHandler proxies plant lookups to the Permapeople API.
type CatalogHandler struct {
	Catalog *catalog.Client
	Logger  *logrus.Logger
}

func NewCatalogHandler(cat *catalog.Client, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Logger: logger}
}

func (h *CatalogHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}

	raw, err := h.Catalog.Search(c.Request.Context(), q)
	if err != nil {
		h.Logger.WithError(err).WithField("query", q).Error("catalog search failed")
		response.Error[any](c, http.StatusBadGateway, "catalog search failed", nil)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func (h *CatalogHandler) GetPlant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid plant id", nil)
		return
	}

	plant, err := h.Catalog.GetPlantByID(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).WithField("id", id).Error("catalog lookup failed")
		response.Error[any](c, http.StatusBadGateway, "catalog lookup failed", nil)
		return
	}
	if plant == nil {
		response.Error[any](c, http.StatusNotFound, "plant not found", nil)
		return
	}
	response.Success(c, http.StatusOK, plant, "plant", nil)
}
