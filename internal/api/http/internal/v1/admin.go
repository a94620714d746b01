package v1

import (
	"net/http"

	"github.com/hotel-booking/backend/internal/stats"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.userIdentityMiddleware, h.adminOnlyMiddleware)
	admin.GET("/stats", h.getAdminStats)
}

type adminStatsResponse struct {
	Success      bool                          `json:"success"`
	Reviews      stats.ReviewMetrics           `json:"reviews"`
	Reservations stats.ReservationStatusCounts `json:"reservations"`
}

// @Summary Dashboard stats
// @Tags Admin
// @Description Review metrics and reservation counts by status
// @ModuleID getAdminStats
// @Produce  json
// @Success 200 {object} adminStatsResponse
// @Failure 401 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security AdminAuth
// @Router /admin/stats [get]
func (h *Handler) getAdminStats(c *gin.Context) {
	ctx := c.Request.Context()

	reviews, err := h.services.Reviews.Metrics(ctx, nil)
	if err != nil {
		errorResponse(c, err)
		return
	}

	reservations, err := h.services.Reservations.StatusCounts(ctx)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, adminStatsResponse{
		Success:      true,
		Reviews:      reviews,
		Reservations: reservations,
	})
}
