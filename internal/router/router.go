package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/twinkal0201/cardio-70-AI/internal/handler"
	"github.com/twinkal0201/cardio-70-AI/internal/middleware"
	"github.com/twinkal0201/cardio-70-AI/pkg/metrics"
)

// Handler registers a group of routes under the API prefix.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine     *gin.Engine
	predictH   Handler
	reportH    Handler
	dashboardH Handler
	h          *handler.Handler
	registry   prometheus.Gatherer
}

type Config struct {
	RateLimit  float64
	RateBurst  int
	CORSConfig middleware.CORSConfig
}

func NewRouter(
	predictH Handler,
	reportH Handler,
	dashboardH Handler,
	h *handler.Handler,
	m *metrics.Metrics,
	registry prometheus.Gatherer,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:     engine,
		predictH:   predictH,
		reportH:    reportH,
		dashboardH: dashboardH,
		h:          h,
		registry:   registry,
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		middleware.Metrics(m),
		middleware.Session(),
	)
	engine.Use(middleware.CORS(config.CORSConfig))

	rateLimiter := middleware.NewRateLimiter(config.RateLimit, config.RateBurst)
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/health/live", r.h.LivenessCheck)
	r.engine.GET("/health/ready", r.h.ReadinessCheck)
	r.engine.GET("/metrics", handler.MetricsHandler(r.registry))

	api := r.engine.Group("/api/v1")
	r.predictH.RegisterRoutes(api)
	r.reportH.RegisterRoutes(api)
	r.dashboardH.RegisterRoutes(api)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
