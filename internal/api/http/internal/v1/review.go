package v1

import (
	"net/http"

	"github.com/hotel-booking/backend/internal/domain"
	"github.com/hotel-booking/backend/internal/service"
	"github.com/hotel-booking/backend/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initReviewsRoutes(api *gin.RouterGroup) {
	reviews := api.Group("/reviews")
	{
		reviews.POST("/validate-booking", h.validateBooking)
		reviews.GET("", h.getReviewsList)
		reviews.GET("/metrics", h.getReviewMetrics)
		reviews.POST("", h.optionalUserIdentityMiddleware, h.createReview)

		admin := reviews.Group("", h.userIdentityMiddleware, h.adminOnlyMiddleware)
		admin.PUT("/:id", h.updateReview)
		admin.DELETE("/:id", h.deleteReview)
	}
}

type validateBookingRequest struct {
	BookingNumber string `json:"booking_number" binding:"required"`
	Pin           string `json:"pin" binding:"required"`
}

type validateBookingResponse struct {
	Success bool   `json:"success"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type createReviewRequest struct {
	HotelID       string `json:"hotel_id" binding:"required,uuid"`
	Name          string `json:"name" binding:"required,max=100"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment" binding:"required,max=2000"`
	BookingNumber string `json:"booking_number"`
	Pin           string `json:"pin"`
}

type updateReviewRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

type reviewResponse struct {
	Success bool           `json:"success"`
	Review  *domain.Review `json:"review"`
}

type reviewsListResponse struct {
	Success bool            `json:"success"`
	Reviews []domain.Review `json:"reviews"`
}

type reviewMetricsResponse struct {
	Success bool                `json:"success"`
	Metrics stats.ReviewMetrics `json:"metrics"`
}

// hotelIDQuery reads the optional hotel_id filter. ok is false when the response was already written.
func hotelIDQuery(c *gin.Context) (hotelID *uuid.UUID, ok bool) {
	raw := c.Query("hotel_id")
	if raw == "" {
		return nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "invalid hotel_id")
		return nil, false
	}
	return &id, true
}

// @Summary Validate booking
// @Tags Reviews
// @Description Check a booking number (guest name) and pin (phone) against reservations
// @ModuleID validateBooking
// @Accept  json
// @Produce  json
// @Param input body validateBookingRequest true "booking"
// @Success 200 {object} validateBookingResponse
// @Failure 400 {object} ErrorStruct
// @Router /reviews/validate-booking [post]
func (h *Handler) validateBooking(c *gin.Context) {
	var req validateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	check, err := h.services.Reservations.ValidateBooking(c.Request.Context(), req.BookingNumber, req.Pin)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, validateBookingResponse{Success: true, Valid: check.Valid, Message: check.Message})
}

// @Summary Reviews list
// @Tags Reviews
// @ModuleID getReviewsList
// @Produce  json
// @Param hotel_id query string false "hotel id"
// @Success 200 {object} reviewsListResponse
// @Failure 400 {object} ErrorStruct
// @Router /reviews [get]
func (h *Handler) getReviewsList(c *gin.Context) {
	hotelID, ok := hotelIDQuery(c)
	if !ok {
		return
	}

	reviews, err := h.services.Reviews.GetAll(c.Request.Context(), hotelID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	c.JSON(http.StatusOK, reviewsListResponse{Success: true, Reviews: reviews})
}

// @Summary Review metrics
// @Tags Reviews
// @Description Count, average and rating distribution
// @ModuleID getReviewMetrics
// @Produce  json
// @Param hotel_id query string false "hotel id"
// @Success 200 {object} reviewMetricsResponse
// @Failure 400 {object} ErrorStruct
// @Router /reviews/metrics [get]
func (h *Handler) getReviewMetrics(c *gin.Context) {
	hotelID, ok := hotelIDQuery(c)
	if !ok {
		return
	}

	metrics, err := h.services.Reviews.Metrics(c.Request.Context(), hotelID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, reviewMetricsResponse{Success: true, Metrics: metrics})
}

// @Summary Create review
// @Tags Reviews
// @Description Guests send booking_number and pin from their reservation. Admins may omit them.
// @ModuleID createReview
// @Accept  json
// @Produce  json
// @Param input body createReviewRequest true "review"
// @Success 201 {object} reviewResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /reviews [post]
func (h *Handler) createReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	input := service.ReviewInput{
		HotelID: uuid.MustParse(req.HotelID),
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	var (
		review *domain.Review
		err    error
	)
	if isAdmin(c) && req.BookingNumber == "" {
		review, err = h.services.Reviews.Create(c.Request.Context(), input)
	} else {
		review, err = h.services.Reviews.Submit(c.Request.Context(), service.BookingCredentials{
			BookingNumber: req.BookingNumber,
			Pin:           req.Pin,
		}, input)
	}
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, reviewResponse{Success: true, Review: review})
}

// @Summary Update review
// @Tags Reviews
// @ModuleID updateReview
// @Accept  json
// @Produce  json
// @Param id path string true "review id"
// @Param input body updateReviewRequest true "patch"
// @Success 200 {object} reviewResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security AdminAuth
// @Router /reviews/{id} [put]
func (h *Handler) updateReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	review, err := h.services.Reviews.Update(c.Request.Context(), id, domain.ReviewPatch{
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, reviewResponse{Success: true, Review: review})
}

// @Summary Delete review
// @Tags Reviews
// @ModuleID deleteReview
// @Produce  json
// @Param id path string true "review id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorStruct
// @Security AdminAuth
// @Router /reviews/{id} [delete]
func (h *Handler) deleteReview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Reviews.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}

	messageResponse(c, "review deleted")
}
