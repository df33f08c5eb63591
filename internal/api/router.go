package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/vitalsense/internal/checker"
)

const maxBodyBytes = 1 << 20

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Deps wires the router. DB may be nil when persistence is in memory.
type Deps struct {
	Service *checker.Service
	DB      HealthChecker
	Logger  *zap.Logger
	Metrics *Metrics
}

func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Metrics == nil {
		d.Metrics = NewMetrics()
	}
	h := &handler{
		svc:     d.Service,
		logger:  d.Logger,
		metrics: d.Metrics,
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(d.Logger, d.Metrics),
		limitBodySize(maxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if d.DB == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := d.DB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     fmt.Sprintf("unhealthy: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
	})

	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	api := router.Group("/api")
	api.GET("/symptoms", h.listSymptoms)
	api.GET("/conditions/:name", h.getCondition)
	api.POST("/symptoms/analyze", h.analyze)

	subjects := api.Group("/subjects/:id")
	subjects.POST("/checks", h.createCheck)
	subjects.GET("/history", h.listHistory)
	subjects.GET("/insights", h.insights)

	return router
}
