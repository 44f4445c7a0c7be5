package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DasBluEyedDevil/AltAydoSite-sub004/internal/app/imagecache"
)

type ImageHandler struct {
	Cache *imagecache.Cache
}

// OptimizeImageAPI - GET /api/images/optimize - serve a cached resized image

// @Summary Optimize an image
// @Description Serve the image at the given URL scaled to the requested width, from the cache bucket when already warmed.
// @Tags images
// @Produce octet-stream
// @Param url query string true "Source image URL"
// @Param width query int false "Target width" default(640)
// @Success 200 {file} binary
// @Failure 400 {object} object "error: string"
// @Failure 502 {object} object "error: string"
// @Router /api/images/optimize [get]
func (h *ImageHandler) OptimizeImageAPI(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "url is required",
		})
		return
	}
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid url",
		})
		return
	}

	width, err := strconv.Atoi(c.DefaultQuery("width", "640"))
	if err != nil || width < 1 || width > imagecache.MaxWidth {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid width",
		})
		return
	}

	data, contentType, err := h.Cache.Optimized(c.Request.Context(), rawURL, width)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, contentType, data)
}
