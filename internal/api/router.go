package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/catalog", h.GetCatalog)
		v1.POST("/numerals", h.RenderNumeral)

		v1.POST("/contracts/preview", h.PreviewContract)
		v1.POST("/contracts", h.SubmitContract)
		v1.GET("/contracts/:id", h.GetContract)

		v1.POST("/expenses/recompute", h.RecomputeExpense)
		v1.POST("/expenses", h.SubmitExpense)
		v1.GET("/expenses/:id", h.GetExpense)
	}

	return router
}
