package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/catalog"
)

type CronHandler struct {
	Syncer *catalog.Syncer
	Warmer *catalog.Warmer
}

// SyncCatalogAPI - POST /api/cron/sync - run one ingestion run

// @Summary Run a catalog sync
// @Description Fetch the external catalog, upsert every valid record and flag stale documents. Guarded by the cron bearer secret when configured.
// @Tags cron
// @Produce json
// @Success 200 {object} catalog.SyncResult
// @Failure 409 {object} object "error: string"
// @Failure 502 {object} object "error: string"
// @Router /api/cron/sync [post]
func (h *CronHandler) SyncCatalogAPI(c *gin.Context) {
	result, err := h.Syncer.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrSyncRunning) {
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// WarmImagesAPI - GET /api/cron/warm-images - pre-warm the image cache

// @Summary Warm the image cache
// @Description Request every ship's primary image at the configured widths through the optimize endpoint so the cache is hot after a sync.
// @Tags cron
// @Produce json
// @Success 200 {object} catalog.WarmResult
// @Failure 500 {object} object "error: string"
// @Router /api/cron/warm-images [get]
func (h *CronHandler) WarmImagesAPI(c *gin.Context) {
	result, err := h.Warmer.Warm(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
