package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/catalog"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/handler/api"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/handler/middleware"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/imagecache"
	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/repository"
)

type Handler struct {
	Repository      *repository.Repository
	ShipAPIHandler  *api.ShipHandler
	ImageAPIHandler *api.ImageHandler
	CronAPIHandler  *api.CronHandler
	cronSecret      string
}

func NewHandler(rep *repository.Repository, syncer *catalog.Syncer, warmer *catalog.Warmer, cache *imagecache.Cache, cronSecret string) *Handler {
	return &Handler{
		Repository:      rep,
		ShipAPIHandler:  &api.ShipHandler{Repository: rep},
		ImageAPIHandler: &api.ImageHandler{Cache: cache},
		CronAPIHandler:  &api.CronHandler{Syncer: syncer, Warmer: warmer},
		cronSecret:      cronSecret,
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	{
		// Catalog reads; the catalog is read-only for the application layer.
		apiGroup.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
		apiGroup.POST("/ships/batch", h.ShipAPIHandler.BatchShipsAPI)
		apiGroup.GET("/ships/:idOrSlug", h.ShipAPIHandler.GetShipAPI)

		// Image optimization layer.
		apiGroup.GET("/images/optimize", h.ImageAPIHandler.OptimizeImageAPI)

		// Ingestion triggers, bearer-guarded when a secret is configured.
		cronGroup := apiGroup.Group("/cron", middleware.CronAuthMiddleware(h.cronSecret))
		{
			cronGroup.POST("/sync", h.CronAPIHandler.SyncCatalogAPI)
			cronGroup.GET("/warm-images", h.CronAPIHandler.WarmImagesAPI)
		}
	}
}

func (h *Handler) RegisterStatic(router *gin.Engine) {
	router.Static("/img", "./resources/img")
}
