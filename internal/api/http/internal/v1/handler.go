package v1

import (
	"github.com/hotel-booking/backend/internal/config"
	"github.com/hotel-booking/backend/internal/service"
	"github.com/hotel-booking/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Hotel Booking API
// @version 1.0
// @description Hotel booking site and admin dashboard backend

// @BasePath /api/v1

// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initAuthRoutes(v1)
	h.initUsersRoutes(v1)
	h.initHotelsRoutes(v1)
	h.initReservationsRoutes(v1)
	h.initReviewsRoutes(v1)
	h.initAdminRoutes(v1)
}
