package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellecon/internal/api/handlers"
	"wellecon/internal/api/middleware"
	"wellecon/internal/config"
	"wellecon/internal/data"
	"wellecon/internal/economics"
)

// NewRouter wires every route. cache may be nil to disable run retrieval.
func NewRouter(s *config.Settings, cache *data.RunCache) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(s.Server.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	defaults := economics.DefaultOptions()
	defaults.ComputeIRR = s.Engine.ComputeIRR
	defaults.TerminalDecline = s.Engine.TerminalDecline

	presets := handlers.NewTypeCurveHandler(s.Server.PresetDir)
	econHandler := handlers.NewEconomicsHandler(presets, cache, defaults)
	sensHandler := handlers.NewSensitivityHandler(presets, cache, defaults, s.Engine.Workers)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/economics/calculate", econHandler.Calculate)
		v1.POST("/economics/aggregate", econHandler.Aggregate)
		v1.GET("/economics/:id", econHandler.GetRun)
		v1.GET("/economics/:id/ledger", econHandler.GetLedger)

		v1.POST("/sensitivity/matrix", sensHandler.Matrix)
		v1.GET("/sensitivity/variables", sensHandler.ListVariables)

		v1.GET("/typecurves", presets.ListTypeCurves)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Not found",
			},
		})
	})

	return router
}
