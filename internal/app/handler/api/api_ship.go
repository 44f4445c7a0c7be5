package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/catalog"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/ds"
)

type ShipHandler struct {
	Repository interface {
		ListShips(filter ds.ShipFilter) (*ds.ShipPage, error)
		GetShipByIDOrSlug(idOrSlug string) (ds.ShipDocument, error)
		GetShipsByFleetyardsIDs(ids []string) ([]ds.ShipDocument, error)
	}
}

// GetShipsAPI - GET /api/ships - filtered, paginated catalog list

// @Summary List ships
// @Description Filtered, paginated catalog query. Filters combine with AND.
// @Tags ships
// @Produce json
// @Param manufacturer query string false "Manufacturer slug or code"
// @Param size query string false "Size class"
// @Param classification query string false "Classification"
// @Param productionStatus query string false "Production status"
// @Param search query string false "Case-insensitive name substring"
// @Param page query int false "Page, 1-based"
// @Param pageSize query int false "Page size, clamped to the configured max"
// @Param includeStale query bool false "Include stale documents"
// @Success 200 {object} ds.ShipPage
// @Failure 500 {object} object "error: string"
// @Router /api/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))

	filter := ds.ShipFilter{
		Manufacturer:     c.Query("manufacturer"),
		Size:             c.Query("size"),
		Classification:   c.Query("classification"),
		ProductionStatus: c.Query("productionStatus"),
		Search:           c.Query("search"),
		IncludeStale:     c.Query("includeStale") == "true",
		Page:             page,
		PageSize:         pageSize,
	}

	result, err := h.Repository.ListShips(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetShipAPI - GET /api/ships/:idOrSlug - one ship by fleetyards id or slug

// @Summary Get one ship
// @Description Resolve a single ship document by fleetyards id or slug
// @Tags ships
// @Produce json
// @Param idOrSlug path string true "Fleetyards id or slug"
// @Success 200 {object} ds.ShipDocument
// @Failure 404 {object} object "error: string"
// @Router /api/ships/{idOrSlug} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	idOrSlug := c.Param("idOrSlug")

	ship, err := h.Repository.GetShipByIDOrSlug(idOrSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ship not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ship)
}

type batchRequest struct {
	IDs []string `json:"ids"`
}

// BatchShipsAPI - POST /api/ships/batch - resolve a list of ids to documents

// @Summary Batch resolve ships
// @Description Resolve up to 50 fleetyards ids to documents. Unknown ids are simply absent from the result.
// @Tags ships
// @Accept json
// @Produce json
// @Param body body batchRequest true "Ids to resolve"
// @Success 200 {object} object "items: []ds.ShipDocument"
// @Failure 400 {object} object "error: string"
// @Router /api/ships/batch [post]
func (h *ShipHandler) BatchShipsAPI(c *gin.Context) {
	var req batchRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	if len(req.IDs) > catalog.BatchChunkSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "at most 50 ids per request",
		})
		return
	}

	resolved, err := catalog.ResolveShips(c.Request.Context(), h.Repository, req.IDs)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Caller went away; nothing to report.
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	items := make([]ds.ShipDocument, 0, len(resolved))
	for _, ship := range resolved {
		items = append(items, ship)
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
	})
}
