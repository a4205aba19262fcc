package handler

import (
	"sovtoken-payments/internal/adapter/http/middleware"
	redisStore "sovtoken-payments/internal/adapter/storage/redis"
	"sovtoken-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Methods        *MethodHandler
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        prometheus.Gatherer // nil = no metrics route
	MetricsPath    string
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	h := deps.Methods
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	v1 := r.Group("/api/v1", jwtAuth, middleware.CommandHandle())
	v1.GET("/methods", h.ListMethods)

	method := v1.Group("/methods/:method")
	{
		method.POST("/addresses", rl("addresses"), h.CreatePaymentAddress)
		method.GET("/addresses", rl("addresses"), h.ListPaymentAddresses)
	}

	requests := method.Group("/requests", rl("requests"))
	{
		requests.POST("/payment", h.BuildPaymentRequest)
		requests.POST("/mint", h.BuildMintRequest)
		requests.POST("/set-fees", h.BuildSetFeesRequest)
		requests.POST("/get-fees", h.BuildGetFeesRequest)
		requests.POST("/get-utxo", h.BuildGetUTXORequest)
	}

	responses := method.Group("/responses", rl("responses"))
	{
		responses.POST("/payment", h.ParsePaymentResponse)
		responses.POST("/get-utxo", h.ParseGetUTXOResponse)
		responses.POST("/get-fees", h.ParseGetFeesResponse)
	}

	return r
}
