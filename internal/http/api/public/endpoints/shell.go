package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hymuslim/hymuslim-server/internal/cache"
)

// RegisterShellRoutes serves the PWA shell through the generational cache:
// cache-first, origin on miss, cached shell root when offline.
func RegisterShellRoutes(r gin.IRoutes, layer *cache.Layer) {
	r.GET("/shell/*path", func(ctx *gin.Context) {
		path := ctx.Param("path")
		if path == "" {
			path = "/"
		}

		body, err := layer.Fetch(ctx.Request.Context(), path)
		if err != nil {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "shell unavailable"})
			return
		}
		ctx.Data(http.StatusOK, http.DetectContentType(body), body)
	})
}
