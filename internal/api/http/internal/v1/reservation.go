package v1

import (
	"fmt"
	"net/http"

	"github.com/hotel-booking/backend/internal/domain"
	"github.com/hotel-booking/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initReservationsRoutes(api *gin.RouterGroup) {
	reservations := api.Group("/reservations")
	{
		reservations.POST("", h.createReservation)

		admin := reservations.Group("", h.userIdentityMiddleware, h.adminOnlyMiddleware)
		admin.GET("", h.getReservationsList)
		admin.GET("/:id", h.getReservationByID)
		admin.GET("/:id/voucher", h.getReservationVoucher)
		admin.PUT("/:id", h.updateReservation)
		admin.PATCH("/:id/status", h.updateReservationStatus)
		admin.DELETE("/:id", h.deleteReservation)
	}
}

type createReservationRequest struct {
	HotelName string  `json:"hotel_name" binding:"required,max=255"`
	Name      string  `json:"name" binding:"required,max=255"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"phone" binding:"required,phonenumber"`
	CheckIn   *date   `json:"check_in" binding:"required"`
	CheckOut  *date   `json:"check_out" binding:"required"`
	RoomType  string  `json:"room_type" binding:"required,max=100"`
	RoomCount int     `json:"room_count" binding:"omitempty,min=1"`
	RoomPrice float64 `json:"room_price" binding:"required,gt=0"`
	Message   string  `json:"message" binding:"max=500"`
}

type updateReservationRequest struct {
	HotelName *string  `json:"hotel_name" binding:"omitempty,min=1,max=255"`
	Name      *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Email     *string  `json:"email" binding:"omitempty,email"`
	Phone     *string  `json:"phone" binding:"omitempty,phonenumber"`
	CheckIn   *date    `json:"check_in"`
	CheckOut  *date    `json:"check_out"`
	RoomType  *string  `json:"room_type" binding:"omitempty,min=1,max=100"`
	RoomCount *int     `json:"room_count" binding:"omitempty,min=1"`
	RoomPrice *float64 `json:"room_price" binding:"omitempty,gt=0"`
	Message   *string  `json:"message" binding:"omitempty,max=500"`
	Status    *string  `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

func (r updateReservationRequest) patch() domain.ReservationPatch {
	p := domain.ReservationPatch{
		HotelName: r.HotelName,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		CheckIn:   r.CheckIn.timePtr(),
		CheckOut:  r.CheckOut.timePtr(),
		RoomType:  r.RoomType,
		RoomCount: r.RoomCount,
		RoomPrice: r.RoomPrice,
		Message:   r.Message,
	}
	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		p.Status = &status
	}
	return p
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type reservationResponse struct {
	Success     bool                `json:"success"`
	Reservation *domain.Reservation `json:"reservation"`
}

type reservationsListResponse struct {
	Success      bool                 `json:"success"`
	Reservations []domain.Reservation `json:"reservations"`
}

// @Summary Create reservation
// @Tags Reservations
// @Description Book a room. The reservation starts as pending.
// @ModuleID createReservation
// @Accept  json
// @Produce  json
// @Param input body createReservationRequest true "reservation"
// @Success 201 {object} reservationResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /reservations [post]
func (h *Handler) createReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	reservation, err := h.services.Reservations.Create(c.Request.Context(), service.ReservationInput{
		HotelName: req.HotelName,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CheckIn:   req.CheckIn.Time(),
		CheckOut:  req.CheckOut.Time(),
		RoomType:  req.RoomType,
		RoomCount: req.RoomCount,
		RoomPrice: req.RoomPrice,
		Message:   req.Message,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservationResponse{Success: true, Reservation: reservation})
}

// @Summary Reservations list
// @Tags Reservations
// @Description All reservations, newest first
// @ModuleID getReservationsList
// @Produce  json
// @Success 200 {object} reservationsListResponse
// @Failure 401 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Security AdminAuth
// @Router /reservations [get]
func (h *Handler) getReservationsList(c *gin.Context) {
	reservations, err := h.services.Reservations.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}

	c.JSON(http.StatusOK, reservationsListResponse{Success: true, Reservations: reservations})
}

// @Summary Reservation
// @Tags Reservations
// @ModuleID getReservationByID
// @Produce  json
// @Param id path string true "reservation id"
// @Success 200 {object} reservationResponse
// @Failure 404 {object} ErrorStruct
// @Security AdminAuth
// @Router /reservations/{id} [get]
func (h *Handler) getReservationByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := h.services.Reservations.GetOneByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, reservationResponse{Success: true, Reservation: reservation})
}

// @Summary Reservation voucher
// @Tags Reservations
// @Description Booking confirmation as PDF
// @ModuleID getReservationVoucher
// @Produce  application/pdf
// @Param id path string true "reservation id"
// @Success 200
// @Failure 404 {object} ErrorStruct
// @Security AdminAuth
// @Router /reservations/{id}/voucher [get]
func (h *Handler) getReservationVoucher(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	doc, err := h.services.Reservations.Voucher(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="reservation-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// @Summary Update reservation
// @Tags Reservations
// @Description Change reservation fields. Dates are checked against the stored ones.
// @ModuleID updateReservation
// @Accept  json
// @Produce  json
// @Param id path string true "reservation id"
// @Param input body updateReservationRequest true "patch"
// @Success 200 {object} reservationResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security AdminAuth
// @Router /reservations/{id} [put]
func (h *Handler) updateReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	reservation, err := h.services.Reservations.Update(c.Request.Context(), id, req.patch())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, reservationResponse{Success: true, Reservation: reservation})
}

// @Summary Update reservation status
// @Tags Reservations
// @ModuleID updateReservationStatus
// @Accept  json
// @Produce  json
// @Param id path string true "reservation id"
// @Param input body updateStatusRequest true "status"
// @Success 200 {object} reservationResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security AdminAuth
// @Router /reservations/{id}/status [patch]
func (h *Handler) updateReservationStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	reservation, err := h.services.Reservations.UpdateStatus(c.Request.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, reservationResponse{Success: true, Reservation: reservation})
}

// @Summary Delete reservation
// @Tags Reservations
// @ModuleID deleteReservation
// @Produce  json
// @Param id path string true "reservation id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorStruct
// @Security AdminAuth
// @Router /reservations/{id} [delete]
func (h *Handler) deleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Reservations.Delete(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}

	messageResponse(c, "reservation deleted")
}
