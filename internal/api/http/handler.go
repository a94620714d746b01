package apiHttp

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hotel-booking/backend/docs"
	"github.com/hotel-booking/backend/pkg/auth"
	"github.com/hotel-booking/backend/pkg/limiter"
	"github.com/hotel-booking/backend/pkg/logger"
	"github.com/hotel-booking/backend/pkg/validator"

	internalV1 "github.com/hotel-booking/backend/internal/api/http/internal/v1"
	"github.com/hotel-booking/backend/internal/config"
	"github.com/hotel-booking/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandlers(
	services *service.Services,
	tokenManager auth.TokenManager,
	cfg *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       cfg,
	}
}

func (h *Handler) Init() *gin.Engine {
	if h.config.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(h.config.Limiter.RPS, h.config.Limiter.Burst, h.config.Limiter.TTL),
		corsMiddleware(h.config.HttpServer.AllowedOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if h.config.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.tokenManager, h.config)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}
